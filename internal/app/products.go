package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/storefront/internal/cache"
	"github.com/blackwell-systems/storefront/internal/catalog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newProductsCmd() *cobra.Command {
	var (
		category string
		search   string
	)

	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"ls"},
		Short:   "List the product catalog as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := catalog.New(cfg.API.BaseURL, cfg.API.ProductsPath)
			snapshots := cache.New(cache.DefaultDir())

			products, err := client.Fetch(cmd.Context())
			if err != nil {
				cached, fetchedAt, cacheErr := snapshots.Load()
				if cacheErr != nil {
					return fmt.Errorf("fetching products from %s: %w", client.URL(), err)
				}
				warn("Could not reach %s: %v", client.URL(), err)
				warn("Showing cached catalog from %s", fetchedAt.Local().Format("2006-01-02 15:04"))
				products = cached
			} else if err := snapshots.Store(client.URL(), products); err != nil {
				logger.Warn("storing catalog snapshot", "err", err)
			}

			matched := filterProducts(products, category, search)
			if len(matched) == 0 {
				fmt.Println("No products found.")
				return nil
			}

			header("── products  (%d of %d)", len(matched), len(products))
			for _, p := range matched {
				fmt.Printf("  %-4d %-44s %10s  %s  %s\n",
					p.ID,
					clip(p.Title, 44),
					color.GreenString(catalog.FormatPrice(p.Price)),
					color.YellowString(catalog.FormatRating(p.Rating)),
					color.CyanString("["+p.Category+"]"),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only show products in this category")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive title search")
	return cmd
}

func filterProducts(products []catalog.Product, category, search string) []catalog.Product {
	if category == "" && search == "" {
		return products
	}
	matched := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(search)) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
