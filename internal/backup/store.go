// Package backup persists local copies of artwork, keyed by
// (library, title, slot).
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmunix/healarr/internal/artwork"
)

// ErrNotFound is returned when no backup exists for a key.
var ErrNotFound = errors.New("backup not found")

// Store is a filesystem-backed artwork archive. At most one record exists
// per (library, title, slot); a newer save overwrites the older bytes.
// Records are never deleted here; removal is a manual operation.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Path returns the deterministic backup path for a key:
// <base>/<library>/<sanitized title>/<slot>.jpg
func (s *Store) Path(library, title string, slot artwork.Slot) string {
	return filepath.Join(s.baseDir, library, SanitizeTitle(title), slot.FileName())
}

// Exists reports whether a backup record is present.
func (s *Store) Exists(library, title string, slot artwork.Slot) bool {
	_, err := os.Stat(s.Path(library, title, slot))
	return err == nil
}

// Save writes artwork bytes, creating parent directories as needed and
// overwriting any prior record.
func (s *Store) Save(library, title string, slot artwork.Slot, data []byte) error {
	path := s.Path(library, title, slot)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// Load returns the stored bytes, or ErrNotFound when no record exists.
func (s *Store) Load(library, title string, slot artwork.Slot) ([]byte, error) {
	data, err := os.ReadFile(s.Path(library, title, slot))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return data, nil
}
