package tui

import (
	"strings"

	"github.com/blackwell-systems/storefront/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

const brandMark = "◈ storefront"

// activeMark prefixes the nav link matching the current route. A textual
// marker, not just color, so the active page stays visible on low-color
// terminals.
const activeMark = "• "

// renderHeader renders the brand mark, the three navigation links with the
// active one marked, and the theme selector. All chrome comes from the
// mapper.
func renderHeader(t theme.Theme, active Route, width int) string {
	chrome := theme.Header(t)
	logo := theme.Logo(t).Render(brandMark)

	links := make([]string, 0, len(routes()))
	for _, r := range routes() {
		label := r.Title()
		if r == active {
			label = activeMark + label
		}
		links = append(links, theme.NavLink(t, r == active).Render(label))
	}
	nav := strings.Join(links, "  ")

	left := logo + "   " + nav
	selector := renderThemeSelector(t)

	pad := width - chrome.Bar.GetHorizontalFrameSize() - lipgloss.Width(left) - lipgloss.Width(selector)
	if pad < 1 {
		pad = 1
	}

	bar := chrome.Bar.Width(width).Render(left + strings.Repeat(" ", pad) + selector)
	rule := chrome.Rule.Render(strings.Repeat("─", maxInt(width, 1)))
	return bar + "\n" + rule
}

// renderThemeSelector shows the three theme slots with the active tag
// bracketed.
func renderThemeSelector(t theme.Theme) string {
	slots := make([]string, 0, 3)
	for i, tag := range theme.All() {
		label := string(rune('1' + i))
		if tag == t {
			label = "[" + label + "]"
		}
		slots = append(slots, theme.NavLink(t, tag == t).Render(label))
	}
	return "theme " + strings.Join(slots, " ")
}

// renderFooter renders the key hint line.
func renderFooter(t theme.Theme) string {
	hints := "h/a/c pages · tab next · 1/2/3 themes · t cycle · / filter · q quit"
	return theme.Body(t).Faint(true).Render(hints)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
