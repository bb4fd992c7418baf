package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines keyboard shortcuts for the storefront.
type keyMap struct {
	Home       key.Binding
	About      key.Binding
	Contact    key.Binding
	NextPage   key.Binding
	Theme1     key.Binding
	Theme2     key.Binding
	Theme3     key.Binding
	CycleTheme key.Binding
	Filter     key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "about"),
		),
		Contact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "contact"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		Theme1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "minimal theme"),
		),
		Theme2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "dark theme"),
		),
		Theme3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "colorful theme"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
