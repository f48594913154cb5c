package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docdyhr/pigame/internal/model"
)

func testRecord(digits int, success bool) model.SessionRecord {
	return model.SessionRecord{
		Timestamp:      time.Date(2025, 4, 30, 12, 34, 56, 0, time.UTC),
		Mode:           model.ModeStandard,
		Digits:         digits,
		ElapsedSeconds: 30,
		Errors:         1,
		Success:        success,
	}
}

func TestLoadMissingFileIsEmptyHistory(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "stats.json"))
	records, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty history, got %d records", len(records))
	}
}

func TestAppendLoadRoundTrip(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "pigame", "stats.json"))
	if err := st.Append(testRecord(12, false)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := st.Append(testRecord(20, true)); err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Digits != 12 || records[1].Digits != 20 {
		t.Fatalf("unexpected records: %+v", records)
	}
	if !records[1].Success || records[0].Success {
		t.Fatalf("success flags not preserved: %+v", records)
	}
	if !records[0].Timestamp.Equal(testRecord(12, false).Timestamp) {
		t.Fatalf("timestamp not preserved: %v", records[0].Timestamp)
	}

	// Re-reading an unchanged store yields the same history.
	again, err := st.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(again) != len(records) {
		t.Fatalf("reload changed record count: %d != %d", len(again), len(records))
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte("{{{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	st := NewFileStore(path)
	records, err := st.Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("corrupt history must read as empty, got %d records", len(records))
	}
}

func TestAppendOverCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	st := NewFileStore(path)
	if err := st.Append(testRecord(7, false)); err != nil {
		t.Fatalf("append: %v", err)
	}
	records, err := st.Load()
	if err != nil {
		t.Fatalf("load after append: %v", err)
	}
	if len(records) != 1 || records[0].Digits != 7 {
		t.Fatalf("expected fresh single-record history, got %+v", records)
	}
}

func TestStatsFileFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	st := NewFileStore(path)
	if err := st.Append(testRecord(12, true)); err != nil {
		t.Fatalf("append: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, key := range []string{`"timestamp"`, `"mode"`, `"digits"`, `"elapsed_seconds"`, `"errors"`, `"success"`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("stats file missing key %s: %s", key, data)
		}
	}
}
