package tui

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/storefront/internal/catalog"
	"github.com/blackwell-systems/storefront/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Options wire the storefront program to its collaborators. Store and
// Client are required; the root command constructs both exactly once.
type Options struct {
	Store  *theme.Store
	Client *catalog.Client
	Logger *log.Logger
}

// Model is the root orchestrator: it owns the active route, applies theme
// selection through the store, and forwards loader messages to the home
// page regardless of which page is on screen.
type Model struct {
	store  *theme.Store
	logger *log.Logger
	keys   keyMap

	route  Route
	width  int
	height int

	home homeModel
}

// NewModel builds the root model. It panics if Store or Client is missing;
// that is a wiring bug at the application root, not a runtime condition.
func NewModel(opts Options) Model {
	if opts.Store == nil || opts.Client == nil {
		panic("tui: Options.Store and Options.Client are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		store:  opts.Store,
		logger: logger,
		keys:   newKeyMap(),
		route:  RouteHome,
		width:  80,
		height: 24,
		home:   newHomeModel(opts.Client, logger),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.home.init(), tea.SetWindowTitle(m.store.Marker()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// While the filter input is focused, keys belong to it.
		if m.route == RouteHome && m.home.filtering {
			var cmd tea.Cmd
			m.home, cmd = m.home.update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Home):
			m.route = RouteHome
		case key.Matches(msg, m.keys.About):
			m.route = RouteAbout
		case key.Matches(msg, m.keys.Contact):
			m.route = RouteContact
		case key.Matches(msg, m.keys.NextPage):
			m.route = m.route.next()
		case key.Matches(msg, m.keys.Theme1):
			return m.selectTheme(theme.Theme1)
		case key.Matches(msg, m.keys.Theme2):
			return m.selectTheme(theme.Theme2)
		case key.Matches(msg, m.keys.Theme3):
			return m.selectTheme(theme.Theme3)
		case key.Matches(msg, m.keys.CycleTheme):
			return m.selectTheme(m.store.Current().Next())
		case key.Matches(msg, m.keys.Filter):
			if m.route == RouteHome {
				var cmd tea.Cmd
				m.home, cmd = m.home.startFilter()
				return m, cmd
			}
		}
		return m, nil

	default:
		// Loader and spinner messages are owned by the home page for the
		// whole program lifetime; navigating away must not lose the result.
		var cmd tea.Cmd
		m.home, cmd = m.home.update(msg)
		return m, cmd
	}
}

// selectTheme persists the selection and refreshes the root scope marker.
// A persistence failure degrades to a session-only selection.
func (m Model) selectTheme(t theme.Theme) (tea.Model, tea.Cmd) {
	if err := m.store.Set(t); err != nil {
		m.logger.Warn("persisting theme selection", "err", err)
	}
	return m, tea.SetWindowTitle(m.store.Marker())
}

func (m Model) View() string {
	t := m.store.Current()

	var body string
	switch m.route {
	case RouteAbout:
		body = renderAbout(t, contentWidth(t, m.width))
	case RouteContact:
		body = renderContact(t, contentWidth(t, m.width))
	default:
		body = m.home.view(t, contentWidth(t, m.width))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(t, m.route, m.width),
		renderLayout(t, m.route, body, m.width),
		renderFooter(t),
	)
}

// Run launches the interactive storefront and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running storefront: %w", err)
	}
	return nil
}
