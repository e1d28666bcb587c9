package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	rootCmd = &cobra.Command{
		Use:   "cursorlock",
		Short: "cursorlock - keep the mouse pointer on one monitor",
		Long: `cursorlock confines the mouse pointer to a single monitor.
A global toggle key (F9 by default) releases and restores the lock, the lock is
reapplied whenever another window comes to the foreground, and it is always
released on exit.

Settings are read from CURSORLOCK_* environment variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLock,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	// Add commands
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(versionCmd)
}
