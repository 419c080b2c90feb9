package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/hupe1980/bitvec"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report the bit layout and build mode",
		Long: `The info command reports the storage word size, the host byte order and
whether unchecked accessors were built with debug assertions (-tags bitvec_debug).

The bit layout is defined on 64-bit word values, so it is the same on every
host; the byte order only matters to code that reinterprets Words() as bytes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout())
		},
	}
	return cmd
}

type infoReport struct {
	WordBits        int    `json:"word_bits"`
	BitOrder        string `json:"bit_order"`
	ByteOrder       string `json:"byte_order"`
	GOARCH          string `json:"goarch"`
	DebugAssertions bool   `json:"debug_assertions"`
}

func collectInfo() infoReport {
	byteOrder := "little-endian"
	if cpu.IsBigEndian {
		byteOrder = "big-endian"
	}
	return infoReport{
		WordBits:        64,
		BitOrder:        "lsb-first (position p = word p/64, bit p%64)",
		ByteOrder:       byteOrder,
		GOARCH:          runtime.GOARCH,
		DebugAssertions: bitvec.DebugAssertions(),
	}
}

func runInfo(w io.Writer) error {
	info := collectInfo()
	if jsonOut {
		return printJSON(w, info)
	}
	_, err := fmt.Fprintf(w, "word bits:        %d\nbit order:        %s\nbyte order:       %s\ngoarch:           %s\ndebug assertions: %v\n",
		info.WordBits, info.BitOrder, info.ByteOrder, info.GOARCH, info.DebugAssertions)
	return err
}
