package tui

import (
	"strings"

	"github.com/blackwell-systems/storefront/internal/catalog"
	"github.com/blackwell-systems/storefront/internal/theme"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// ctaLabel is the decorative call-to-action on every product card. The
// control does nothing; the storefront is display-only.
const ctaLabel = "Add to Cart"

// skeletonCTA is the placeholder standing in for the call-to-action on a
// skeleton card. Chosen to appear exactly once per skeleton and nowhere else.
const skeletonCTA = "▄▄▄▄▄▄▄▄"

const minCardInner = 16

// renderCard renders one product at the given outer width, chrome per the
// active theme. Title is clamped to two display lines, description to three.
func renderCard(t theme.Theme, p catalog.Product, width int) string {
	chrome := theme.Card(t)
	inner := width - chrome.Frame.GetHorizontalFrameSize()
	if inner < minCardInner {
		inner = minCardInner
	}

	image := chrome.Image.Render(xansi.Truncate("⛶ "+p.Image, inner, "…"))
	title := chrome.Title.Render(clampLines(p.Title, inner, 2))
	category := chrome.Category.Render(xansi.Truncate(p.Category, inner, "…"))
	priceLine := xansi.Truncate(
		chrome.Price.Render(catalog.FormatPrice(p.Price))+" "+chrome.Rating.Render(catalog.FormatRating(p.Rating)),
		inner, "…")
	desc := chrome.Description.Render(clampLines(p.Description, inner, 3))
	button := theme.Button(t).Render(ctaLabel)

	content := lipgloss.JoinVertical(lipgloss.Left,
		image,
		title,
		category,
		priceLine,
		desc,
		button,
	)
	return chrome.Frame.Width(inner + chrome.Frame.GetHorizontalPadding()).Render(content)
}

// renderSkeleton renders a chrome-only placeholder matching the card layout,
// shown while the catalog is loading.
func renderSkeleton(t theme.Theme, width int) string {
	chrome := theme.Card(t)
	inner := width - chrome.Frame.GetHorizontalFrameSize()
	if inner < minCardInner {
		inner = minCardInner
	}

	bar := func(n int) string {
		if n > inner {
			n = inner
		}
		if n < 1 {
			n = 1
		}
		return chrome.Image.Render(strings.Repeat("░", n))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		bar(inner),   // image
		bar(inner-2), // title
		bar(inner/2), // category
		bar(10),      // price and rating
		bar(inner),   // description
		bar(inner-4),
		chrome.Image.Render(skeletonCTA),
	)
	return chrome.Frame.Width(inner + chrome.Frame.GetHorizontalPadding()).Render(content)
}

// clampLines word-wraps s to width and keeps at most max display lines,
// ellipsizing the cut.
func clampLines(s string, width, max int) string {
	wrapped := xansi.Wordwrap(s, width, " ")
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= max {
		return wrapped
	}
	lines = lines[:max]
	lines[max-1] = xansi.Truncate(lines[max-1], width-1, "") + "…"
	return strings.Join(lines, "\n")
}

// renderGrid lays cells out in the themed grid for the given content width.
func renderGrid(t theme.Theme, width int, cells []string) string {
	if len(cells) == 0 {
		return ""
	}
	rule := theme.Grid(t)
	cols := rule.Columns(width)
	if cols < 1 {
		cols = 1
	}

	gap := strings.Repeat(" ", rule.Gap)
	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := start + cols
		if end > len(cells) {
			end = len(cells)
		}
		row := make([]string, 0, 2*cols)
		for i, cell := range cells[start:end] {
			if i > 0 {
				row = append(row, gap)
			}
			row = append(row, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// cardWidth splits the content width evenly across the themed column count.
func cardWidth(t theme.Theme, width int) int {
	rule := theme.Grid(t)
	cols := rule.Columns(width)
	if cols < 1 {
		cols = 1
	}
	w := (width - (cols-1)*rule.Gap) / cols
	if w < minCardInner {
		w = minCardInner
	}
	return w
}
