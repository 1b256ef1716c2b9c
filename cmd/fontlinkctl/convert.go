package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/multisz"
)

func init() {
	rootCmd.AddCommand(newConvertCmd())
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Convert between hex(7): data and plain text",
		Long: `The convert command reads lines from stdin until a blank line or EOF.
Input containing a hex(7): tag is decoded and its entries printed one per
line; anything else is treated as a list of strings and encoded in the
wrapped hex(7): layout.

Example:
  echo "Arial" | fontlinkctl convert
  fontlinkctl convert < value.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConvert(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("no input provided")
	}

	input := strings.Join(lines, "\n")
	if multisz.IsEncodedForm(input) {
		entries, err := multisz.Decode(input)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		for i, e := range entries {
			fmt.Fprintf(out, "%d. %s\n", i+1, e)
		}
		return nil
	}

	entries := make([]string, 0, len(lines))
	for _, l := range lines {
		if s := strings.TrimSpace(l); s != "" {
			entries = append(entries, s)
		}
	}
	encoded, err := multisz.Encode(entries, multisz.StyleWrapped)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	fmt.Fprintln(out, encoded)
	return nil
}
