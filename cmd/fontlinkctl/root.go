package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "fontlinkctl",
	Short: "Back up and modify Windows FontLink SystemLink configuration",
	Long: `fontlinkctl reads FontLink SystemLink multi-string values from the
Windows registry and generates regedit scripts: a backup capturing the
current state and a modified version with the Planschrift font entries
inserted. It also converts between hex(7): data and plain text.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// cliLogger routes fontlink manager output through the CLI printers.
type cliLogger struct{}

func (cliLogger) Infof(format string, args ...any) {
	printVerbose(format+"\n", args...)
}

func (cliLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
