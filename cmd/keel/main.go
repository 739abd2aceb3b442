package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"keel/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "keel",
	Short: "Keel type database and checker toolchain",
	Long:  `Keel manages the type database of compiled programs: builtins, snapshots and diagnostics tooling`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(builtinsCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(snapshotCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is an interactive terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color persistent flag against the actual
// output device.
func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
