package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docdyhr/pigame/internal/model"
	"github.com/docdyhr/pigame/internal/session"
	"github.com/docdyhr/pigame/internal/store"
)

const countdownInterval = 100 * time.Millisecond

var (
	typedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	wrongAidStyle = lipgloss.NewStyle().Underline(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Underline(true)
	goalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	resultStyle   = lipgloss.NewStyle().Bold(true)
)

// Model runs one interactive practice session.
type Model struct {
	cfg    model.PracticeConfig
	repo   store.Repository
	engine *session.Engine

	countdown timer.Model
	prog      progress.Model

	width  int
	height int

	typed    []rune // correct digits entered so far
	wrong    *mismatch
	progPct  float64
	record   model.SessionRecord
	saveErr  error
	timedOut bool
	done     bool
}

type mismatch struct {
	expected rune
	actual   rune
}

// NewModel constructs the practice model around a fresh engine.
func NewModel(cfg model.PracticeConfig, repo store.Repository, engine *session.Engine) *Model {
	m := &Model{
		cfg:    cfg,
		repo:   repo,
		engine: engine,
		prog:   progress.New(progress.WithDefaultGradient()),
	}
	if cfg.Mode == model.ModeTimed {
		limit := time.Duration(cfg.TimeLimitSeconds * float64(time.Second))
		m.countdown = timer.NewWithInterval(limit, countdownInterval)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.engine.Start(time.Now())
	if m.cfg.Mode == model.ModeTimed {
		return m.countdown.Init()
	}
	return nil
}

// Update implements tea.Model. Keystrokes and countdown ticks arrive through
// the same loop, so a pending keystroke is always processed before an expiry
// that follows it.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width / 2; w > 10 {
			m.prog.Width = w
		}
		return m, nil
	case timer.TickMsg:
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		return m, cmd
	case timer.TimeoutMsg:
		if m.done {
			return m, nil
		}
		m.timedOut = true
		m.engine.Expire(time.Now())
		return m.finish()
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.done {
				return m, tea.Quit
			}
			m.engine.Cancel(time.Now())
			return m.finish()
		case tea.KeyRunes:
			return m.handleRunes(msg.Runes)
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) handleRunes(runes []rune) (tea.Model, tea.Cmd) {
	for _, r := range runes {
		ev := m.engine.Press(r, time.Now())
		switch ev.Kind {
		case session.EventMatch:
			m.typed = append(m.typed, r)
			if m.cfg.Mode != model.ModeChunk {
				m.refreshProgress()
			}
		case session.EventChunkCheckpoint:
			m.typed = append(m.typed, r)
			m.refreshProgress()
			m.engine.Resume()
		case session.EventCompleted:
			m.typed = append(m.typed, r)
			m.refreshProgress()
			return m.finish()
		case session.EventMismatch:
			m.wrong = &mismatch{expected: ev.Expected, actual: ev.Actual}
			return m.finish()
		case session.EventIgnored:
			// Non-digit keystrokes fall through.
		}
	}
	return m, nil
}

func (m *Model) refreshProgress() {
	max := m.engine.MaxDigits()
	if max <= 0 {
		return
	}
	m.progPct = float64(m.engine.Achieved()) / float64(max)
}

// finish persists the single terminal record and quits. Every exit path
// funnels through here exactly once.
func (m *Model) finish() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	m.done = true
	m.record = m.engine.Record()
	if err := m.repo.Append(m.record); err != nil {
		m.saveErr = err
	}
	return m, tea.Quit
}

// Record returns the terminal session record once the session ended.
func (m *Model) Record() (model.SessionRecord, bool) {
	return m.record, m.done
}

// SaveErr returns the error from persisting the record, if any.
func (m *Model) SaveErr() error { return m.saveErr }

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderDigits())
	b.WriteString("\n\n")
	b.WriteString(m.prog.ViewAs(m.progPct))
	b.WriteString("\n")
	if m.done {
		b.WriteString("\n")
		b.WriteString(m.renderResult())
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(footerStyle.Render("type the next digit of π · esc or ctrl+c to stop"))
		b.WriteString("\n")
	}
	content := b.String()
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderHeader() string {
	parts := []string{
		fmt.Sprintf("Practice · %s", m.cfg.Mode),
		goalStyle.Render(fmt.Sprintf("goal %d", m.engine.Goal())),
		fmt.Sprintf("max %d", m.engine.MaxDigits()),
	}
	if m.cfg.Mode == model.ModeTimed && !m.done {
		parts = append(parts, fmt.Sprintf("time left %.1fs", m.countdown.Timeout.Seconds()))
	}
	if m.cfg.Mode == model.ModeChunk {
		parts = append(parts, fmt.Sprintf("chunks of %d", m.cfg.ChunkSize))
	}
	return footerStyle.Render(strings.Join(parts, "  ·  "))
}

func (m *Model) renderDigits() string {
	// Wrap the plain text first; styling would confuse width measurement.
	plain := "3." + groupDigits(string(m.typed))
	width := m.width
	if width > 20 {
		width = int(float64(width) * 0.70)
	}
	lines := wrapLine(plain, width)
	for i, line := range lines {
		lines[i] = typedStyle.Render(line)
	}
	suffix := ""
	if m.wrong != nil {
		style := wrongStyle
		if m.cfg.VisualAid {
			style = wrongAidStyle
		}
		suffix = style.Render(string(m.wrong.actual))
	} else if !m.done {
		suffix = cursorStyle.Render("_")
	}
	lines[len(lines)-1] += suffix
	return strings.Join(lines, "\n")
}

func (m *Model) renderResult() string {
	rec := m.record
	switch {
	case rec.Success:
		return resultStyle.Render(fmt.Sprintf("Perfect! All %d digits recalled.", rec.Digits))
	case m.timedOut:
		return resultStyle.Render(fmt.Sprintf("Time's up at %d digits.", rec.Digits))
	case m.wrong != nil:
		return resultStyle.Render(fmt.Sprintf("Wrong digit at position %d: expected %c, got %c.",
			rec.Digits+1, m.wrong.expected, m.wrong.actual))
	default:
		return resultStyle.Render(fmt.Sprintf("Stopped at %d digits.", rec.Digits))
	}
}
