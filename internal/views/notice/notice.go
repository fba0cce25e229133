// Package notice renders the transient status message area. A notice
// lives for a fixed duration and is superseded immediately when a new
// one is shown; only the timer belonging to the current notice may
// clear it.
package notice

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mergington/activities-tui/internal/theme"
)

// Duration is how long a notice stays visible.
const Duration = 5 * time.Second

// Kind classifies a notice for styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// ExpireMsg is emitted when a notice's timer fires. Seq identifies the
// notice the timer was armed for; a stale Seq is ignored.
type ExpireMsg struct {
	Seq int
}

// Model holds the notice state.
type Model struct {
	Width int

	text string
	kind Kind
	seq  int
}

// New creates an empty notice model.
func New() Model {
	return Model{}
}

// Show replaces the current notice and arms its expiry timer. The
// returned command must be dispatched for the notice to auto-hide.
func (m *Model) Show(text string, kind Kind) tea.Cmd {
	m.text = text
	m.kind = kind
	m.seq++

	seq := m.seq
	return tea.Tick(Duration, func(time.Time) tea.Msg {
		return ExpireMsg{Seq: seq}
	})
}

// Update clears the notice when its own timer expires. Timers armed for
// superseded notices are dropped.
func (m *Model) Update(msg ExpireMsg) {
	if msg.Seq == m.seq {
		m.text = ""
	}
}

// Visible reports whether a notice is currently shown.
func (m Model) Visible() bool {
	return m.text != ""
}

// Text returns the current notice text, empty when hidden.
func (m Model) Text() string {
	return m.text
}

// View renders the notice line, or an empty string when hidden.
func (m Model) View() string {
	if m.text == "" {
		return ""
	}

	var glyph string
	switch m.kind {
	case KindSuccess:
		glyph = "✓"
	case KindError:
		glyph = "✗"
	default:
		glyph = "·"
	}

	style := lipgloss.NewStyle().
		Foreground(theme.NoticeColor(string(m.kind))).
		Padding(0, 1)
	if m.Width > 0 {
		style = style.Width(m.Width)
	}
	return style.Render(glyph + " " + m.text)
}
