// Package signup provides the registration overlay: an activity selector
// fed by the backend-ordered name list plus a student email field.
package signup

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mergington/activities-tui/internal/theme"
)

// SubmitMsg carries a registration request to the parent app.
type SubmitMsg struct {
	Activity string
	Email    string
}

// Model is the signup overlay model.
type Model struct {
	email textinput.Model

	// names is the selection list in backend order.
	names       []string
	activityIdx int

	errText string
	busy    bool
}

// New creates the signup form.
func New() Model {
	email := textinput.New()
	email.Placeholder = "student@mergington.edu"
	email.Prompt = "> "
	email.CharLimit = 128
	email.Focus()

	return Model{email: email}
}

// SetNames replaces the activity selection list, preserving the current
// pick when it still exists.
func (m *Model) SetNames(names []string) {
	current := m.Selected()
	m.names = names
	m.activityIdx = 0
	for i, n := range names {
		if n == current {
			m.activityIdx = i
			break
		}
	}
}

// Select moves the picker to the named activity when it exists.
func (m *Model) Select(name string) {
	for i, n := range m.names {
		if n == name {
			m.activityIdx = i
			return
		}
	}
}

// Selected returns the currently picked activity name.
func (m Model) Selected() string {
	if m.activityIdx >= len(m.names) {
		return ""
	}
	return m.names[m.activityIdx]
}

// Reset clears the email field and error line.
func (m *Model) Reset() {
	m.email.SetValue("")
	m.errText = ""
	m.busy = false
}

// SetError shows a form-local error line and re-enables the form.
func (m *Model) SetError(text string) {
	m.errText = text
	m.busy = false
}

// SetBusy marks a signup request as in flight.
func (m *Model) SetBusy(busy bool) {
	m.busy = busy
}

// Focus returns the command that starts the cursor blinking.
func (m Model) Focus() tea.Cmd {
	return textinput.Blink
}

// Update handles key input for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "shift+tab":
			m.errText = ""
			if n := len(m.names); n > 0 {
				m.activityIdx = (m.activityIdx - 1 + n) % n
			}
			return m, nil

		case "tab":
			m.errText = ""
			if n := len(m.names); n > 0 {
				m.activityIdx = (m.activityIdx + 1) % n
			}
			return m, nil

		case "enter":
			if m.busy {
				return m, nil
			}
			activity := m.Selected()
			email := strings.TrimSpace(m.email.Value())
			if activity == "" {
				m.errText = "No activity selected."
				return m, nil
			}
			if email == "" {
				m.errText = "Enter a student email."
				return m, nil
			}
			m.busy = true
			return m, func() tea.Msg {
				return SubmitMsg{Activity: activity, Email: email}
			}
		}
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

// View renders the signup panel.
func (m Model) View() string {
	title := theme.StyleHeader.Render(" REGISTER STUDENT ")

	activity := m.Selected()
	if activity == "" {
		activity = "(no activities)"
	}
	selector := theme.StyleDimmed.Render("◀ ") +
		theme.StyleSelected.Render(activity) +
		theme.StyleDimmed.Render(" ▶")

	lines := []string{
		title,
		"",
		theme.StyleDimmed.Render("Activity"),
		selector,
		theme.StyleDimmed.Render("Student email"),
		m.email.View(),
	}

	if m.busy {
		lines = append(lines, "", theme.StyleDimmed.Render("Submitting..."))
	} else if m.errText != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.ColorError).Render(m.errText))
	}

	lines = append(lines, "", theme.StyleDimmed.Render("tab:activity  enter:register  esc:close"))

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorAccent).
		Render(strings.Join(lines, "\n"))
}
