package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/storefront/internal/catalog"
	"github.com/blackwell-systems/storefront/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := theme.Open(filepath.Join(t.TempDir(), "theme.yml"))
	client := catalog.New("http://127.0.0.1:0", "")
	return NewModel(Options{Store: store, Client: client})
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.Msg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// --- navigation ---

func TestModel_StartsAtHome(t *testing.T) {
	m := newTestModel(t)
	if m.route != RouteHome {
		t.Fatalf("initial route = %v, want home", m.route)
	}
}

func TestModel_RouteKeys(t *testing.T) {
	cases := []struct {
		name string
		keys []string
		want Route
	}{
		{name: "about", keys: []string{"a"}, want: RouteAbout},
		{name: "contact", keys: []string{"c"}, want: RouteContact},
		{name: "back-home", keys: []string{"a", "h"}, want: RouteHome},
		{name: "tab-cycles", keys: []string{"tab"}, want: RouteAbout},
		{name: "tab-wraps", keys: []string{"tab", "tab", "tab"}, want: RouteHome},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := press(newTestModel(t), tc.keys...)
			if m.route != tc.want {
				t.Errorf("route = %v, want %v", m.route, tc.want)
			}
		})
	}
}

func TestModel_UnknownKeyIsNoOp(t *testing.T) {
	m := newTestModel(t)
	before := m.route
	m = press(m, "z")
	if m.route != before {
		t.Error("unknown key changed the route")
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit key produced %T, want tea.QuitMsg", cmd())
	}
}

// --- theme selection ---

func TestModel_ThemeKeysPersistSelection(t *testing.T) {
	store := theme.Open(filepath.Join(t.TempDir(), "theme.yml"))
	m := NewModel(Options{Store: store, Client: catalog.New("http://127.0.0.1:0", "")})

	m = press(m, "2")
	if got := store.Current(); got != theme.Theme2 {
		t.Fatalf("store.Current() = %q after pressing 2", got)
	}
	// The selection must survive a reload from disk.
	if got := theme.Open(store.Path()).Current(); got != theme.Theme2 {
		t.Errorf("persisted theme = %q, want theme2", got)
	}

	m = press(m, "3")
	if got := store.Current(); got != theme.Theme3 {
		t.Errorf("store.Current() = %q after pressing 3", got)
	}
	_ = m
}

func TestModel_CycleThemeKey(t *testing.T) {
	store := theme.Open(filepath.Join(t.TempDir(), "theme.yml"))
	m := NewModel(Options{Store: store, Client: catalog.New("http://127.0.0.1:0", "")})

	m = press(m, "t")
	if got := store.Current(); got != theme.Theme2 {
		t.Errorf("first cycle = %q, want theme2", got)
	}
	m = press(m, "t", "t")
	if got := store.Current(); got != theme.Theme1 {
		t.Errorf("full cycle = %q, want theme1", got)
	}
}

func TestNewModel_RequiresStoreAndClient(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewModel accepted missing collaborators")
		}
	}()
	NewModel(Options{})
}

// --- header ---

func TestHeader_MarksExactlyOneActiveLink(t *testing.T) {
	for _, r := range routes() {
		header := renderHeader(theme.Theme1, r, 100)
		if got := strings.Count(header, activeMark); got != 1 {
			t.Errorf("route %s: %d active markers, want 1", r.Title(), got)
		}
		if !strings.Contains(header, activeMark+r.Title()) {
			t.Errorf("route %s: active marker not on the matching link", r.Title())
		}
	}
}

func TestHeader_ShowsThemeSelector(t *testing.T) {
	header := renderHeader(theme.Theme2, RouteHome, 100)
	if !strings.Contains(header, "[2]") {
		t.Error("selector does not bracket the active theme slot")
	}
	if strings.Contains(header, "[1]") || strings.Contains(header, "[3]") {
		t.Error("selector brackets an inactive theme slot")
	}
}

// --- layout structure ---

func TestLayout_Theme2IsStructurallyDifferent(t *testing.T) {
	body := "page body"

	sidebar := renderLayout(theme.Theme2, RouteHome, body, 100)
	if !strings.Contains(sidebar, panelHeading) {
		t.Fatal("theme2 layout is missing the side panel")
	}
	if !strings.Contains(sidebar, "▸ Home") {
		t.Error("side panel does not mark the active route")
	}

	for _, tag := range []theme.Theme{theme.Theme1, theme.Theme3} {
		if out := renderLayout(tag, RouteHome, body, 100); strings.Contains(out, panelHeading) {
			t.Errorf("%s layout unexpectedly contains the side panel", tag)
		}
	}
}

func TestLayout_SwitchingThemesSwitchesShape(t *testing.T) {
	store := theme.Open(filepath.Join(t.TempDir(), "theme.yml"))
	m := NewModel(Options{Store: store, Client: catalog.New("http://127.0.0.1:0", "")})
	m.width = 100

	if strings.Contains(m.View(), panelHeading) {
		t.Fatal("theme1 view already shows the side panel")
	}
	m = press(m, "2")
	if !strings.Contains(m.View(), panelHeading) {
		t.Fatal("switching to theme2 did not introduce the side panel")
	}
	m = press(m, "1")
	if strings.Contains(m.View(), panelHeading) {
		t.Fatal("switching back to theme1 did not remove the side panel")
	}
}

// --- route views ---

func TestView_AboutSentenceFollowsTheme(t *testing.T) {
	if aboutMood(theme.Theme1) == aboutMood(theme.Theme2) {
		t.Error("theme1 and theme2 share the About sentence")
	}
	if aboutMood(theme.Theme("bogus")) != aboutMood(theme.Theme1) {
		t.Error("unknown theme should fall back to the theme1 sentence")
	}
	view := renderAbout(theme.Theme3, 80)
	if !strings.Contains(view, "confetti") {
		t.Error("theme3 About page is missing its themed sentence")
	}
}

func TestView_ContactRendersOneCard(t *testing.T) {
	view := renderContact(theme.Theme2, 80)
	if !strings.Contains(view, "Storefront HQ") {
		t.Error("contact card is missing the organization name")
	}
	if !strings.Contains(view, "hello@storefront.example") {
		t.Error("contact card is missing the email address")
	}
}

func TestView_FilterKeysReachHomeInput(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(productsMsg{products: makeProducts(2)})
	m = next.(Model)

	m = press(m, "/")
	if !m.home.filtering {
		t.Fatal("/ did not focus the filter")
	}
	// While filtering, route keys must type into the input instead of
	// navigating.
	m = press(m, "a")
	if m.route != RouteHome {
		t.Error("typing into the filter changed routes")
	}
	m = press(m, "esc")
	if m.home.filtering {
		t.Error("esc did not leave the filter")
	}
}
