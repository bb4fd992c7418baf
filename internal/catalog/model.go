package catalog

import "fmt"

// Product is one record returned by the product source. Field tags mirror
// the wire format; the rest of the program treats a decoded product as
// immutable.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating holds the aggregate review score for a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// FormatPrice renders a price with the currency symbol and two decimals.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// FormatRating renders a rating value with the star glyph and review count.
func FormatRating(r Rating) string {
	return fmt.Sprintf("★ %.1f (%d)", r.Rate, r.Count)
}
