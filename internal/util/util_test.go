package util_test

import (
	"testing"

	"github.com/blackwell-systems/storefront/internal/util"
	"github.com/spf13/cobra"
)

func TestShouldUseTUI_NoInteractiveFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("no-interactive", false, "")
	if err := cmd.Flags().Set("no-interactive", "true"); err != nil {
		t.Fatal(err)
	}
	if util.ShouldUseTUI(cmd) {
		t.Error("ShouldUseTUI = true with --no-interactive set")
	}
}

func TestShouldUseTUI_NonTTY(t *testing.T) {
	// Test binaries run with stdout piped, so IsTTY is false here and the
	// TUI must stay disabled even without the flag.
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("no-interactive", false, "")
	if util.ShouldUseTUI(cmd) {
		t.Error("ShouldUseTUI = true without a TTY")
	}
}
