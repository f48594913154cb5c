// Package store persists the session history file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docdyhr/pigame/internal/model"
)

// ErrCorrupt reports an unreadable or malformed history file.
var ErrCorrupt = errors.New("stats file corrupt")

// Repository is the session history used by the practice flow.
type Repository interface {
	Load() ([]model.SessionRecord, error)
	Append(model.SessionRecord) error
}

// FileStore owns a JSON history file of session records.
type FileStore struct {
	path string
}

// NewFileStore builds a store over the given stats file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads all records. A missing file yields an empty history. A
// malformed file yields an empty history and an ErrCorrupt-wrapped error so
// the caller can warn without aborting.
func (s *FileStore) Load() ([]model.SessionRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	var records []model.SessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return records, nil
}

// Append adds one record and rewrites the file atomically, so a failed write
// never leaves a truncated history behind. A corrupt existing file is
// replaced by a fresh history holding the new record.
func (s *FileStore) Append(rec model.SessionRecord) error {
	records, err := s.Load()
	if err != nil {
		records = nil
	}
	records = append(records, rec)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(s.path), "stats-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp stats file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()
	if _, err := tmpFile.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close stats file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}
