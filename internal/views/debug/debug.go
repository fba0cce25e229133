// Package debug provides the event log overlay: a rolling record of
// backend traffic, auth changes, and failures. The most recent failure
// stays pinned under the title even after it scrolls out of the ring,
// and per-kind totals survive eviction.
package debug

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mergington/activities-tui/internal/theme"
)

const maxEntries = 200

// Kind classifies an event log entry.
type Kind int

const (
	KindHTTP Kind = iota
	KindAuth
	KindNav
	KindErr
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindAuth:
		return "auth"
	case KindNav:
		return "nav"
	case KindErr:
		return "err"
	}
	return "?"
}

func (k Kind) color() lipgloss.Color {
	switch k {
	case KindHTTP:
		return theme.ColorInfo
	case KindAuth:
		return theme.ColorTeacher
	case KindNav:
		return theme.ColorAccent
	case KindErr:
		return theme.ColorDanger
	}
	return theme.ColorDimmed
}

// Entry is a single event log line. Elapsed is the request round trip
// for timed entries, zero otherwise.
type Entry struct {
	At      time.Time
	Kind    Kind
	Message string
	Elapsed time.Duration
}

// Model holds event log state. The viewport follows the newest entry
// until the user scrolls back, then holds position so a burst of
// refresh traffic doesn't move the view out from under them.
type Model struct {
	entries []Entry
	counts  [kindCount]int
	lastErr *Entry

	// fromEnd is the number of entries hidden below the viewport.
	fromEnd int
	follow  bool
}

// New creates an empty event log pinned to the tail.
func New() Model {
	return Model{follow: true}
}

// Add records an untimed entry.
func (m *Model) Add(kind Kind, message string) {
	m.AddTimed(kind, message, 0)
}

// AddTimed records an entry with its request round trip.
func (m *Model) AddTimed(kind Kind, message string, elapsed time.Duration) {
	e := Entry{At: time.Now(), Kind: kind, Message: message, Elapsed: elapsed}
	m.entries = append(m.entries, e)
	m.counts[kind]++
	if kind == KindErr {
		m.lastErr = &e
	}
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}
	if !m.follow {
		// Keep the scrolled-back view anchored on the same entries.
		m.fromEnd++
		if m.fromEnd > len(m.entries)-1 {
			m.fromEnd = len(m.entries) - 1
		}
	}
}

// Len reports how many entries are currently in the ring.
func (m Model) Len() int {
	return len(m.entries)
}

// Count reports how many entries of the kind were ever recorded,
// including ones the ring has since evicted.
func (m Model) Count(kind Kind) int {
	return m.counts[kind]
}

// LastError returns the most recent failure entry, if any.
func (m Model) LastError() (Entry, bool) {
	if m.lastErr == nil {
		return Entry{}, false
	}
	return *m.lastErr, true
}

// ScrollUp moves the viewport toward older entries and disengages
// tail-following.
func (m *Model) ScrollUp(n int) {
	m.follow = false
	m.fromEnd += n
	if max := len(m.entries) - 1; m.fromEnd > max {
		m.fromEnd = max
	}
	if m.fromEnd < 0 {
		m.fromEnd = 0
	}
}

// ScrollDown moves the viewport toward newer entries; reaching the tail
// re-engages following.
func (m *Model) ScrollDown(n int) {
	m.fromEnd -= n
	if m.fromEnd <= 0 {
		m.fromEnd = 0
		m.follow = true
	}
}

// View renders the event log as an overlay panel: a counts header, the
// pinned last failure, then the visible slice of the ring.
func (m Model) View(width, height int) string {
	innerW := width - 4
	if innerW < 24 {
		innerW = 24
	}
	rows := height - 8
	if rows < 3 {
		rows = 3
	}

	header := theme.StyleHeader.Render(" EVENT LOG ") + "  " + m.countsLine()

	var pinned string
	if m.lastErr != nil {
		pinned = lipgloss.NewStyle().Foreground(theme.ColorDanger).
			Render("last failure " + m.lastErr.At.Format("15:04:05") + "  " + m.lastErr.Message)
	} else {
		pinned = theme.StyleDimmed.Render("no failures")
	}

	body := theme.StyleDimmed.Render("  No events recorded yet.")
	if len(m.entries) > 0 {
		end := len(m.entries) - m.fromEnd
		start := end - rows
		if start < 0 {
			start = 0
		}
		lines := make([]string, 0, end-start)
		for _, e := range m.entries[start:end] {
			lines = append(lines, m.renderEntry(e, innerW))
		}
		body = strings.Join(lines, "\n")
	}

	position := theme.StyleDimmed.Render("j/k:scroll  esc:close")
	if m.fromEnd > 0 {
		position = theme.StyleDimmed.Render(fmt.Sprintf("↓ %d newer  j/k:scroll  esc:close", m.fromEnd))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, pinned, "", body, "", position)
	return lipgloss.NewStyle().
		Width(innerW).
		Padding(1, 2).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}

// countsLine summarizes lifetime totals per kind, skipping unused kinds.
func (m Model) countsLine() string {
	parts := make([]string, 0, int(kindCount))
	for k := Kind(0); k < kindCount; k++ {
		if m.counts[k] == 0 {
			continue
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(k.color()).
			Render(fmt.Sprintf("%s %d", k, m.counts[k])))
	}
	if len(parts) == 0 {
		return theme.StyleDimmed.Render("empty")
	}
	return strings.Join(parts, theme.StyleDimmed.Render(" / "))
}

func (m Model) renderEntry(e Entry, innerW int) string {
	kind := lipgloss.NewStyle().Foreground(e.Kind.color()).Width(5).Render(e.Kind.String())
	msg := e.Message
	if e.Elapsed > 0 {
		msg = fmt.Sprintf("%s in %s", msg, e.Elapsed.Round(time.Millisecond))
	}
	budget := innerW - 16
	if budget > 3 && len(msg) > budget {
		msg = msg[:budget-3] + "..."
	}
	ts := theme.StyleDimmed.Render(e.At.Format("15:04:05"))
	return fmt.Sprintf("%s %s %s", ts, kind, msg)
}
