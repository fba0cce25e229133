// Package roster renders the activity list: one card per activity with
// schedule, capacity, and the participant roster. Teacher-only removal
// markers appear next to participants when the session is authorized.
// The view is a pure projection of the last snapshot and session; every
// frame is rebuilt wholesale, so no per-row state survives a render.
package roster

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mergington/activities-tui/internal/client"
	"github.com/mergington/activities-tui/internal/session"
	"github.com/mergington/activities-tui/internal/theme"
)

// Model holds the roster state.
type Model struct {
	Width  int
	Height int

	list   client.ActivityList
	sess   session.Session
	loaded bool

	// fetchErr marks the card area as failed. The previously loaded
	// name list is kept so selection survives a bad fetch.
	fetchErr error

	activityIdx    int
	participantIdx int
}

// New creates an empty roster model.
func New() Model {
	return Model{}
}

// SetSnapshot replaces the rendered snapshot. Cursors are clamped into
// the new snapshot rather than reset, so a refresh doesn't yank the
// selection away.
func (m *Model) SetSnapshot(list client.ActivityList, sess session.Session) {
	m.list = list
	m.sess = sess
	m.loaded = true
	m.fetchErr = nil
	m.clampCursors()
}

// SetSession updates the session without touching the snapshot.
func (m *Model) SetSession(sess session.Session) {
	m.sess = sess
}

// SetError records a fetch failure. The prior snapshot's name list (and
// the current selection) is left untouched.
func (m *Model) SetError(err error) {
	m.fetchErr = err
}

// MoveActivity moves the activity cursor by delta, wrapping.
func (m *Model) MoveActivity(delta int) {
	if n := m.list.Len(); n > 0 {
		m.activityIdx = (m.activityIdx + delta + n) % n
		m.participantIdx = 0
	}
}

// MoveParticipant moves the participant cursor within the selected
// activity by delta, wrapping.
func (m *Model) MoveParticipant(delta int) {
	a, ok := m.selectedActivity()
	if !ok {
		return
	}
	if n := len(a.Participants); n > 0 {
		m.participantIdx = (m.participantIdx + delta + n) % n
	}
}

// Selected returns the selected activity name.
func (m Model) Selected() (string, bool) {
	if m.activityIdx >= m.list.Len() {
		return "", false
	}
	return m.list.Names[m.activityIdx], true
}

// SelectedParticipant returns the activity name and email under the
// participant cursor.
func (m Model) SelectedParticipant() (activity, email string, ok bool) {
	name, ok := m.Selected()
	if !ok {
		return "", "", false
	}
	a, _ := m.list.Get(name)
	if m.participantIdx >= len(a.Participants) {
		return "", "", false
	}
	return name, a.Participants[m.participantIdx], true
}

func (m Model) selectedActivity() (client.Activity, bool) {
	name, ok := m.Selected()
	if !ok {
		return client.Activity{}, false
	}
	return m.list.ByName[name], true
}

func (m *Model) clampCursors() {
	if m.activityIdx >= m.list.Len() {
		m.activityIdx = 0
	}
	if a, ok := m.selectedActivity(); ok && m.participantIdx >= len(a.Participants) {
		m.participantIdx = 0
	}
}

// View renders the roster area.
func (m Model) View() string {
	width := m.Width
	if width < 40 {
		width = 40
	}

	if m.fetchErr != nil {
		return m.renderFailure(width)
	}
	if !m.loaded {
		return theme.StyleDimmed.Render("  Loading activities...")
	}
	if m.list.Len() == 0 {
		return theme.StyleDimmed.Render("  No activities available")
	}

	cards := make([]string, 0, m.list.Len())
	for i, name := range m.list.Names {
		cards = append(cards, m.renderCard(name, m.list.ByName[name], i == m.activityIdx, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderFailure shows a static failure notice where the cards would be,
// followed by the prior name list so the selection remains usable.
func (m Model) renderFailure(width int) string {
	notice := lipgloss.NewStyle().
		Foreground(theme.ColorDanger).
		Padding(0, 1).
		Render("Failed to load activities. Please try again later.")

	if m.list.Len() == 0 {
		return notice
	}

	lines := []string{notice, ""}
	for i, name := range m.list.Names {
		prefix := "  "
		if i == m.activityIdx {
			prefix = "▸ "
		}
		lines = append(lines, theme.StyleDimmed.Render(prefix+name))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderCard(name string, a client.Activity, selected bool, width int) string {
	borderColor := theme.ColorBorder
	titlePrefix := "  "
	if selected {
		borderColor = theme.ColorAccent
		titlePrefix = "▸ "
	}

	title := theme.StyleHeader.Render(titlePrefix + name)

	spots := a.SpotsLeft()
	spotsStr := lipgloss.NewStyle().
		Foreground(theme.SpotsColor(spots)).
		Render(fmt.Sprintf("%d spots left", spots))

	meta := []string{
		theme.StyleDimmed.Render(a.Description),
		theme.StyleDimmed.Render("Schedule: ") + a.Schedule,
		theme.StyleDimmed.Render("Availability: ") + spotsStr,
	}

	lines := append([]string{title}, meta...)
	lines = append(lines, m.renderParticipants(a, selected)...)

	return lipgloss.NewStyle().
		Width(width-2).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderParticipants(a client.Activity, selected bool) []string {
	if len(a.Participants) == 0 {
		return []string{theme.StyleDimmed.Italic(true).Render("No participants yet")}
	}

	lines := []string{theme.StyleDimmed.Render("Participants:")}
	for i, email := range a.Participants {
		cursor := "  "
		if selected && m.sess.Authorized() && i == m.participantIdx {
			cursor = "> "
		}

		row := cursor + email
		if m.sess.Authorized() {
			row += " " + lipgloss.NewStyle().Foreground(theme.ColorDanger).Render("✗")
		}

		style := lipgloss.NewStyle().Foreground(theme.ColorDefault)
		if selected && m.sess.Authorized() && i == m.participantIdx {
			style = theme.StyleSelected
		}
		lines = append(lines, style.Render(row))
	}
	return lines
}
