package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/storefront/internal/theme"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect or change the persisted theme",
	}

	cmd.AddCommand(
		newThemeGetCmd(),
		newThemeSetCmd(),
		newThemeListCmd(),
	)
	return cmd
}

func newThemeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore()
			t := store.Current()
			fmt.Printf("%s  (%s)\n", t, t.DisplayName())
			return nil
		},
	}
}

func newThemeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <theme>",
		Short: "Set and persist the theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.ToLower(strings.TrimSpace(args[0]))
			t := theme.Parse(raw)
			if raw != string(t) {
				warn("Unknown theme %q, using %s", args[0], t)
			}

			store := openStore()
			if err := store.Set(t); err != nil {
				return fmt.Errorf("persisting theme: %w", err)
			}
			ok("Theme set to %s (%s)", t, t.DisplayName())
			return nil
		},
	}
}

func newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			active := openStore().Current()
			for _, t := range theme.All() {
				mark := " "
				if t == active {
					mark = color.GreenString("*")
				}
				fmt.Printf("%s %-8s %s\n", mark, t, t.DisplayName())
			}
			return nil
		},
	}
}
