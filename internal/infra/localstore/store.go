// Package localstore provides durable local implementations of the
// persistence adapter ports. Each entity collection is held in memory
// and snapshotted wholesale to a JSON file after every mutation.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// slot manages one durable JSON snapshot file for a record collection.
type slot[T any] struct {
	path string
	seed []byte // Bundled default dataset, used when the file is absent
}

// load reads the snapshot file, or the seed data when no snapshot
// exists yet.
func (s *slot[T]) load() ([]T, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			content = s.seed
		} else {
			return nil, fmt.Errorf("read store file: %w", err)
		}
	}
	if len(content) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(content, &items); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return items, nil
}

// write replaces the snapshot with the full collection.
// Writes go to a temp file first, then rename for atomicity.
func (s *slot[T]) write(items []T) error {
	if items == nil {
		items = []T{}
	}
	content, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
