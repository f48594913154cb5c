package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/docdyhr/pigame/internal/model"
	"github.com/docdyhr/pigame/internal/session"
	"github.com/docdyhr/pigame/internal/store"
)

// ErrNotTerminal reports that a practice session was requested without an
// interactive terminal.
var ErrNotTerminal = errors.New("practice mode needs an interactive terminal")

// Run executes one interactive practice session over the reference decimals
// and returns its record. The terminal's raw mode is scoped to the Bubble
// Tea program, which restores it on every exit path.
func Run(cfg model.PracticeConfig, repo store.Repository, reference string, goal int) (model.SessionRecord, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return model.SessionRecord{}, fmt.Errorf("%w: stdin is not a terminal", ErrNotTerminal)
	}

	engine := session.New(reference, goal, cfg.ChunkSize, cfg.Mode)
	m := NewModel(cfg, repo, engine)
	program := tea.NewProgram(m, tea.WithAltScreen())
	out, err := program.Run()
	if err != nil {
		return model.SessionRecord{}, fmt.Errorf("failed to run practice UI: %w", err)
	}

	final, ok := out.(*Model)
	if !ok {
		final = m
	}
	rec, done := final.Record()
	if !done {
		// The program was torn down around the model (e.g. killed); still
		// settle on one terminal record.
		engine.Cancel(time.Now())
		rec = engine.Record()
		if aerr := repo.Append(rec); aerr != nil {
			logErrf("failed to save session: %v\n", aerr)
		}
	}
	if serr := final.SaveErr(); serr != nil {
		logErrf("failed to save session: %v\n", serr)
	}
	return rec, nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
