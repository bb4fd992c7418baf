package tui

import "github.com/blackwell-systems/storefront/internal/catalog"

// productsMsg delivers the one-shot catalog fetch result to the home page.
type productsMsg struct {
	products []catalog.Product
}

// productsErrMsg delivers a fetch failure. Failure is terminal for the
// session; there is no retry.
type productsErrMsg struct {
	err error
}
