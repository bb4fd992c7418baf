package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// preference is the on-disk shape of the saved selection.
type preference struct {
	Theme string `yaml:"theme"`
}

// Store owns the active theme selection. It is constructed exactly once at
// the application root and handed to consumers explicitly; there is no
// package-level current theme.
type Store struct {
	mu      sync.Mutex
	path    string
	current Theme
	subs    []func(Theme)
}

// Open loads the persisted selection from path. A missing or unreadable file
// and an unrecognized tag both yield Default; Open never fails.
func Open(path string) *Store {
	s := &Store{path: path, current: Default}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var p preference
	if yaml.Unmarshal(data, &p) != nil {
		return s
	}
	s.current = Parse(p.Theme)
	return s
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set activates t (clamped to a valid tag), persists it, and notifies
// subscribers. The returned error reports a persistence failure only; the
// in-memory selection and the notifications always take effect so a
// read-only disk degrades to a session-scoped preference.
func (s *Store) Set(t Theme) error {
	if !t.Valid() {
		t = Default
	}

	s.mu.Lock()
	s.current = t
	subs := make([]func(Theme), len(s.subs))
	copy(subs, s.subs)
	err := s.persistLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
	return err
}

// Subscribe registers fn to be called after every selection change.
func (s *Store) Subscribe(fn func(Theme)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Marker returns the root style-scope marker for the active theme. The TUI
// applies it as the terminal window title so anything keyed off the scope
// (terminal multiplexer styling, session labels) tracks the selection.
func (s *Store) Marker() string {
	return "storefront--" + string(s.Current())
}

// Path returns the preference file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating preference dir: %w", err)
	}
	data, err := yaml.Marshal(preference{Theme: string(s.current)})
	if err != nil {
		return fmt.Errorf("encoding preference: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing preference: %w", err)
	}
	return nil
}
