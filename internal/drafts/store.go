// Package drafts persists saved reply drafts as a JSON array on disk.
package drafts

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/fmuoria/resume-screener/internal/models"
)

// DefaultFile is the drafts file used when none is configured.
const DefaultFile = "resume_reply_drafts.json"

// Store is an append-only draft store backed by a single JSON array file.
// Every append reads the whole array, appends the new draft and rewrites the
// file, so writes are serialized by a mutex.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all saved drafts. A missing or unreadable file is treated as an
// empty store: the read path never fails.
func (s *Store) Load() []models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() []models.Draft {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Draft{}
	}
	var drafts []models.Draft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return []models.Draft{}
	}
	return drafts
}

// Append adds a draft to the store and rewrites the backing file.
func (s *Store) Append(d models.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drafts := append(s.load(), d)
	data, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal drafts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write drafts file: %w", err)
	}
	return nil
}
