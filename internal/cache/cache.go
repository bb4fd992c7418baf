// Package cache persists the last successful catalog fetch so the plain
// product listing still works when the remote API is unreachable.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blackwell-systems/storefront/internal/catalog"
)

const snapshotName = "products.json"

// snapshot is the on-disk envelope around a cached product list.
type snapshot struct {
	FetchedAt time.Time         `json:"fetched_at"`
	Source    string            `json:"source"`
	Products  []catalog.Product `json:"products"`
}

// Manager handles the local snapshot cache.
type Manager struct {
	baseDir string
}

// New creates a cache Manager rooted at baseDir.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// DefaultDir returns the cache directory under the user cache dir, or ""
// when the platform has none.
func DefaultDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "storefront")
}

// Path returns the full path of the snapshot file.
func (m *Manager) Path() string {
	return filepath.Join(m.baseDir, snapshotName)
}

// Exists reports whether a snapshot is present.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.Path())
	return err == nil
}

// Store writes products as the current snapshot. The write goes through a
// temp file and rename so a crash cannot leave a half-written snapshot.
func (m *Manager) Store(source string, products []catalog.Product) error {
	if err := os.MkdirAll(m.baseDir, 0750); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.MarshalIndent(snapshot{
		FetchedAt: time.Now().UTC(),
		Source:    source,
		Products:  products,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmpPath := m.Path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, m.Path()); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Load reads the current snapshot. Returns the products, when they were
// fetched, and an error if no usable snapshot exists.
func (m *Manager) Load() ([]catalog.Product, time.Time, error) {
	data, err := os.ReadFile(m.Path())
	if err != nil {
		return nil, time.Time{}, err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Products == nil {
		snap.Products = []catalog.Product{}
	}
	return snap.Products, snap.FetchedAt, nil
}

// Remove deletes the snapshot if it exists.
func (m *Manager) Remove() error {
	err := os.Remove(m.Path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
