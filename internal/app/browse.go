package app

import (
	"fmt"

	"github.com/blackwell-systems/storefront/internal/catalog"
	"github.com/blackwell-systems/storefront/internal/tui"
	"github.com/blackwell-systems/storefront/internal/util"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "browse",
		Aliases: []string{"shop"},
		Short:   "Open the interactive storefront",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !util.ShouldUseTUI(cmd) {
				return fmt.Errorf("browse needs a terminal (or drop --no-interactive); try 'storefront products' for plain output")
			}
			return runStorefront()
		},
	}
}

// runStorefront wires the store and catalog client into the TUI and blocks
// until the user quits.
func runStorefront() error {
	return tui.Run(tui.Options{
		Store:  openStore(),
		Client: catalog.New(cfg.API.BaseURL, cfg.API.ProductsPath),
		Logger: logger,
	})
}
