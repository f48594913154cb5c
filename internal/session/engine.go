// Package session implements the practice session state machine.
package session

import (
	"time"

	"github.com/docdyhr/pigame/internal/diff"
	"github.com/docdyhr/pigame/internal/model"
)

// State is the engine's position in its lifecycle.
type State int

// Engine states.
const (
	StateIdle State = iota
	StateAwaitingDigit
	StateChunkCheckpoint
	StateEnded
)

// EventKind classifies the outcome of one keystroke.
type EventKind int

// Keystroke outcomes.
const (
	EventIgnored EventKind = iota
	EventMatch
	EventMismatch
	EventChunkCheckpoint
	EventCompleted
)

// Event describes the outcome of one keystroke.
type Event struct {
	Kind     EventKind
	Expected rune
	Actual   rune
	Position int // 0-indexed digit position the keystroke applied to
}

// Engine drives a single practice session over a reference digit sequence.
// It is pure: the caller supplies timestamps and performs all I/O.
type Engine struct {
	mode      model.Mode
	cmp       *diff.StreamComparer
	goal      int
	maxDigits int
	chunkSize int

	state     State
	achieved  int
	startedAt time.Time
	endedAt   time.Time
	success   bool
}

// New builds an engine over the reference decimals. goal is the starting
// target from the difficulty controller; the session caps at len(reference).
func New(reference string, goal, chunkSize int, mode model.Mode) *Engine {
	return &Engine{
		mode:      mode,
		cmp:       diff.NewStreamComparer(reference),
		goal:      goal,
		maxDigits: len([]rune(reference)),
		chunkSize: chunkSize,
		state:     StateIdle,
	}
}

// Start begins accepting digits.
func (e *Engine) Start(now time.Time) {
	if e.state != StateIdle {
		return
	}
	e.startedAt = now
	e.state = StateAwaitingDigit
}

// Press feeds one keystroke. Non-digit runes are ignored.
func (e *Engine) Press(r rune, now time.Time) Event {
	if e.state != StateAwaitingDigit && e.state != StateChunkCheckpoint {
		return Event{Kind: EventIgnored}
	}
	if r < '0' || r > '9' {
		return Event{Kind: EventIgnored}
	}
	e.state = StateAwaitingDigit
	pos := e.achieved
	ok, expected := e.cmp.Next(r)
	if !ok {
		e.finish(now, false)
		return Event{Kind: EventMismatch, Expected: expected, Actual: r, Position: pos}
	}
	e.achieved++
	if e.achieved == e.maxDigits {
		e.finish(now, true)
		return Event{Kind: EventCompleted, Expected: expected, Actual: r, Position: pos}
	}
	if e.mode == model.ModeChunk && e.chunkSize > 0 && e.achieved%e.chunkSize == 0 {
		e.state = StateChunkCheckpoint
		return Event{Kind: EventChunkCheckpoint, Expected: expected, Actual: r, Position: pos}
	}
	return Event{Kind: EventMatch, Expected: expected, Actual: r, Position: pos}
}

// Resume returns from a chunk checkpoint to digit entry.
func (e *Engine) Resume() {
	if e.state == StateChunkCheckpoint {
		e.state = StateAwaitingDigit
	}
}

// Expire ends a timed session whose countdown ran out.
func (e *Engine) Expire(now time.Time) {
	e.finish(now, false)
}

// Cancel ends the session on an explicit interrupt, keeping the digits
// accumulated so far.
func (e *Engine) Cancel(now time.Time) {
	e.finish(now, false)
}

func (e *Engine) finish(now time.Time, success bool) {
	if e.state == StateEnded {
		return
	}
	if e.startedAt.IsZero() {
		e.startedAt = now
	}
	e.state = StateEnded
	e.endedAt = now
	e.success = success
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Achieved returns the count of consecutive correct digits so far.
func (e *Engine) Achieved() int { return e.achieved }

// Goal returns the session's starting digit target.
func (e *Engine) Goal() int { return e.goal }

// MaxDigits returns the session cap.
func (e *Engine) MaxDigits() int { return e.maxDigits }

// Errors returns the mismatch count.
func (e *Engine) Errors() int { return e.cmp.Errors() }

// Ended reports whether the session reached its terminal state.
func (e *Engine) Ended() bool { return e.state == StateEnded }

// Record emits the terminal session record. It is only meaningful once the
// session ended, and always yields the same record for one engine.
func (e *Engine) Record() model.SessionRecord {
	return model.SessionRecord{
		Timestamp:      e.endedAt,
		Mode:           e.mode,
		Digits:         e.achieved,
		ElapsedSeconds: e.endedAt.Sub(e.startedAt).Seconds(),
		Errors:         e.cmp.Errors(),
		Success:        e.success,
	}
}
