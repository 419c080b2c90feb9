package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/bitvec"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLayoutCmd())
}

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout <bits>",
		Short: "Show how a bit string is packed into 64-bit words",
		Long: `The layout command builds a vector from a string of 0 and 1 characters,
first character at position 0, and prints every storage word. Position p is
bit p%64 of word p/64, counting from the least significant bit. Underscores
and spaces are ignored.

Example:
  bitvec layout 1011
  bitvec layout 1111_0000_1010 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

// parseBits builds a vector from a '0'/'1' string in position order.
func parseBits(s string) (*bitvec.BitVector, error) {
	bv := bitvec.New(bitvec.WithCapacity(uint64(len(s))))
	for i, c := range s {
		switch c {
		case '0':
			bv.PushBack(false)
		case '1':
			bv.PushBack(true)
		case '_', ' ':
		default:
			return nil, fmt.Errorf("invalid character %q at offset %d: want 0 or 1", c, i)
		}
	}
	return bv, nil
}

type layoutWord struct {
	Index  int    `json:"index"`
	Hex    string `json:"hex"`
	Binary string `json:"binary"`
	First  uint64 `json:"first_pos"`
}

type layoutReport struct {
	Len   uint64       `json:"len"`
	Bits  string       `json:"bits"`
	Words []layoutWord `json:"words"`
}

func runLayout(w io.Writer, s string) error {
	bv, err := parseBits(s)
	if err != nil {
		return err
	}

	report := layoutReport{Len: bv.Len(), Bits: bv.String()}
	for i, word := range bv.Words() {
		report.Words = append(report.Words, layoutWord{
			Index:  i,
			Hex:    fmt.Sprintf("0x%016x", word),
			Binary: fmt.Sprintf("%064b", word),
			First:  uint64(i) * 64,
		})
	}

	if jsonOut {
		return printJSON(w, report)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "len:  %d\n", report.Len)
	fmt.Fprintf(&sb, "bits: %s\n", report.Bits)
	for _, lw := range report.Words {
		fmt.Fprintf(&sb, "word %d (positions %d..%d): %s %s\n",
			lw.Index, lw.First, lw.First+63, lw.Hex, lw.Binary)
	}
	_, err = io.WriteString(w, sb.String())
	return err
}
