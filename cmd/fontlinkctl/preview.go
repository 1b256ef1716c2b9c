package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/fontlink"
	"github.com/Fitzgerald-Porthmouth-Koenigsegg/Planschrift-Project/internal/winreg"
)

func init() {
	rootCmd.AddCommand(newPreviewCmd())
}

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show the current FontLink configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m := fontlink.NewManager(fontlink.DefaultConfig(), winreg.SystemReader{}, cliLogger{})
			m.Preview(os.Stdout)
			return nil
		},
	}
}
