package tui

import (
	"github.com/blackwell-systems/storefront/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

const aboutCopy = "Storefront is a small demo shop that exists to show off its own " +
	"wardrobe: the same catalog, the same pages, three very different outfits. " +
	"Switch the theme and watch the whole store change its posture, not just " +
	"its colors."

// aboutMood is the one sentence of the About page that follows the active
// theme.
func aboutMood(t theme.Theme) string {
	switch t {
	case theme.Theme2:
		return "Right now we keep the lights low and the navigation close at hand."
	case theme.Theme3:
		return "Right now we believe shopping should feel like confetti."
	default:
		return "Right now we keep things quiet and let the products speak."
	}
}

// renderAbout renders the About page body.
func renderAbout(t theme.Theme, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title(t).Render("About Us"),
		"",
		theme.Body(t).Width(width).Render(aboutCopy),
		"",
		theme.Body(t).Italic(true).Width(width).Render(aboutMood(t)),
	)
}
