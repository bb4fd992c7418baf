package util

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// IsTTY returns true if stdout is a terminal.
func IsTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// InitColor configures color output based on flags and terminal detection.
func InitColor(noColor bool) {
	if noColor || !IsTTY() {
		color.NoColor = true
	}
}

// ShouldUseTUI reports whether the command should launch the interactive
// storefront instead of printing plain output: stdout is a TTY and the user
// has not passed --no-interactive.
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !IsTTY() {
		return false
	}
	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	return !noInteractive
}
