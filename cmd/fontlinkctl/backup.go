package main

import (
	"github.com/spf13/cobra"

	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/fontlink"
	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/regtext"
)

var (
	backupEncoding string
	backupBOM      bool
)

func init() {
	cmd := newBackupCmd()
	cmd.Flags().StringVar(&backupEncoding, "encoding", "utf16le", "Output encoding (utf8, utf16le)")
	cmd.Flags().BoolVar(&backupBOM, "with-bom", true, "Include byte-order mark")
	rootCmd.AddCommand(cmd)
}

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output.reg]",
		Short: "Back up the current FontLink configuration to a .reg script",
		Long: `The backup command reads every target font value and writes a .reg
script that restores today's state. Values that do not exist are written as
deletion markers so importing the backup removes anything added later.

Example:
  fontlinkctl backup
  fontlinkctl backup fontlink_backup.reg --encoding utf8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			out := defaultName("fontlink_backup", args)
			printVerbose("Backing up to %s\n", out)
			return runScriptCommand(out, backupEncoding, backupBOM,
				func(m *fontlink.Manager, sw *regtext.ScriptWriter) error {
					return m.Backup(sw)
				})
		},
	}
}
