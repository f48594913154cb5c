package store

import "github.com/docdyhr/pigame/internal/model"

// MemStore is an in-memory Repository used in tests.
type MemStore struct {
	Records []model.SessionRecord
}

// Load returns the stored records.
func (s *MemStore) Load() ([]model.SessionRecord, error) {
	out := make([]model.SessionRecord, len(s.Records))
	copy(out, s.Records)
	return out, nil
}

// Append adds a record.
func (s *MemStore) Append(rec model.SessionRecord) error {
	s.Records = append(s.Records, rec)
	return nil
}
