package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/bitvec"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel  string
	logFormat string
	jsonOut   bool
)

var rootCmd = &cobra.Command{
	Use:   "bitvec",
	Short: "Exercise and inspect packed bit vectors",
	Long: `bitvec is a diagnostics tool for the bitvec package. It runs randomized
push/read-back verification, renders the word layout of a bit string, and
reports how the host and build treat the bit layout.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the logger selected by the global flags.
func newLogger() (*bitvec.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}

	switch strings.ToLower(logFormat) {
	case "text":
		return bitvec.NewTextLogger(level), nil
	case "json":
		return bitvec.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", logFormat)
	}
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
