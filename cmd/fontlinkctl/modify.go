package main

import (
	"github.com/spf13/cobra"

	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/fontlink"
	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/regtext"
)

var (
	modifyEncoding string
	modifyBOM      bool
)

func init() {
	cmd := newModifyCmd()
	cmd.Flags().StringVar(&modifyEncoding, "encoding", "utf16le", "Output encoding (utf8, utf16le)")
	cmd.Flags().BoolVar(&modifyBOM, "with-bom", true, "Include byte-order mark")
	rootCmd.AddCommand(cmd)
}

func newModifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modify [output.reg]",
		Short: "Write a .reg script with the Planschrift entries inserted",
		Long: `The modify command reads every target font value and writes a .reg
script with the Planschrift font entries inserted, appended or prepended
per font policy. Absent values are created holding just the new entries.
Run backup first; the generated script is applied with regedit.

Example:
  fontlinkctl modify
  fontlinkctl modify fontlink_modified.reg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			out := defaultName("fontlink_modified", args)
			printVerbose("Writing modified configuration to %s\n", out)
			return runScriptCommand(out, modifyEncoding, modifyBOM,
				func(m *fontlink.Manager, sw *regtext.ScriptWriter) error {
					return m.CreateModified(sw)
				})
		},
	}
}
