// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// Mode selects the practice session strategy.
type Mode string

// Supported practice modes.
const (
	ModeStandard Mode = "standard"
	ModeTimed    Mode = "timed"
	ModeChunk    Mode = "chunk"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStandard, ModeTimed, ModeChunk:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown practice mode %q (expected standard, timed, or chunk)", s)
}

// PracticeConfig defines the settings for one practice run.
type PracticeConfig struct {
	Mode             Mode
	MinDigits        int
	MaxDigits        int
	ChunkSize        int
	TimeLimitSeconds float64
	VisualAid        bool
}

// Validate checks the config invariants.
func (c PracticeConfig) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.MinDigits < 1 {
		return fmt.Errorf("min digits must be >= 1, got %d", c.MinDigits)
	}
	if c.MaxDigits < c.MinDigits {
		return fmt.Errorf("max digits (%d) must be >= min digits (%d)", c.MaxDigits, c.MinDigits)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be > 0, got %d", c.ChunkSize)
	}
	if c.TimeLimitSeconds <= 0 {
		return fmt.Errorf("time limit must be > 0, got %g", c.TimeLimitSeconds)
	}
	return nil
}

// SessionRecord captures one finished practice session.
type SessionRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	Mode           Mode      `json:"mode"`
	Digits         int       `json:"digits"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	Errors         int       `json:"errors"`
	Success        bool      `json:"success"`
}

// StatsAggregate summarizes the session history.
type StatsAggregate struct {
	SessionCount int
	BestDigits   int
	BestSpeed    float64 // digits per minute
}
