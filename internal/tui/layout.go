package tui

import (
	"strings"

	"github.com/blackwell-systems/storefront/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// panelHeading titles the navigation side panel. The panel is a structural
// element that exists only under the sidebar layout shape.
const panelHeading = "Browse"

// renderLayout wraps the page body in the structural shape the mapper picked
// for t. The sidebar shape joins a navigation panel next to the content; the
// other two shapes render a single region.
func renderLayout(t theme.Theme, active Route, body string, width int) string {
	d := theme.Layout(t)
	switch d.Shape {
	case theme.ShapeSidebar:
		content := d.Content.Width(maxInt(width-d.SidebarWidth, 20)).Render(body)
		panel := renderSidePanel(t, active, d, lipgloss.Height(content))
		return lipgloss.JoinHorizontal(lipgloss.Top, panel, content)

	case theme.ShapeFull:
		return d.Content.Width(maxInt(width, 20)).Render(body)

	default: // centered
		w := width
		if d.MaxWidth > 0 && w > d.MaxWidth {
			w = d.MaxWidth
		}
		content := d.Content.Width(maxInt(w, 20)).Render(body)
		return lipgloss.PlaceHorizontal(maxInt(width, 20), lipgloss.Center, content)
	}
}

// renderSidePanel renders the fixed navigation panel for the sidebar shape.
func renderSidePanel(t theme.Theme, active Route, d theme.LayoutDecision, height int) string {
	lines := []string{theme.Logo(t).Render(panelHeading), ""}
	for _, r := range routes() {
		label := "  " + r.Title()
		if r == active {
			label = "▸ " + r.Title()
		}
		lines = append(lines, theme.NavLink(t, r == active).Render(label))
	}
	content := strings.Join(lines, "\n")

	panel := d.Panel.Width(d.SidebarWidth - d.Panel.GetHorizontalBorderSize())
	if height > 0 {
		panel = panel.Height(height - d.Panel.GetVerticalBorderSize())
	}
	return panel.Render(content)
}

// contentWidth returns the width a page body may fill under t, accounting
// for the structural shape and its padding.
func contentWidth(t theme.Theme, width int) int {
	d := theme.Layout(t)
	w := width
	switch d.Shape {
	case theme.ShapeSidebar:
		w = width - d.SidebarWidth
	case theme.ShapeCentered:
		if d.MaxWidth > 0 && w > d.MaxWidth {
			w = d.MaxWidth
		}
	}
	w -= d.Content.GetHorizontalFrameSize()
	if w < 20 {
		w = 20
	}
	return w
}
