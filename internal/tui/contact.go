package tui

import (
	"github.com/blackwell-systems/storefront/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// renderContact renders the Contact page: static organization details inside
// one themed card.
func renderContact(t theme.Theme, width int) string {
	chrome := theme.Card(t)

	inner := width - chrome.Frame.GetHorizontalFrameSize()
	if inner < minCardInner {
		inner = minCardInner
	}
	if inner > 48 {
		inner = 48
	}

	details := lipgloss.JoinVertical(lipgloss.Left,
		chrome.Title.Render("Storefront HQ"),
		"",
		chrome.Description.Render("123 Market Street"),
		chrome.Description.Render("Springfield, ST 00000"),
		"",
		chrome.Category.Render("hello@storefront.example"),
		chrome.Category.Render("+1 (555) 010-0000"),
		"",
		chrome.Rating.Render("Mon-Fri, 9:00-17:00"),
	)
	card := chrome.Frame.Width(inner + chrome.Frame.GetHorizontalPadding()).Render(details)

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title(t).Render("Contact"),
		"",
		card,
	)
}
