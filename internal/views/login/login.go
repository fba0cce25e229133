// Package login provides the teacher login overlay: a two-field
// credential form with a form-local error line. Login failures stay in
// the form (matching the modal behavior of the original interface)
// instead of going through the shared notice area.
package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mergington/activities-tui/internal/theme"
)

// SubmitMsg carries the entered credentials to the parent app.
type SubmitMsg struct {
	Username string
	Password string
}

// Model is the login overlay model.
type Model struct {
	username textinput.Model
	password textinput.Model

	focusIdx int
	errText  string
	busy     bool
}

// New creates the login form with the username field focused.
func New() Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.Prompt = "> "
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "> "
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	return Model{username: username, password: password}
}

// Reset clears both fields and the error line, refocusing the username.
func (m *Model) Reset() {
	m.username.SetValue("")
	m.password.SetValue("")
	m.errText = ""
	m.busy = false
	m.focusIdx = 0
	m.username.Focus()
	m.password.Blur()
}

// SetError shows a form-local error line (server detail or a generic
// fallback) and re-enables the form.
func (m *Model) SetError(text string) {
	m.errText = text
	m.busy = false
}

// SetBusy marks a login request as in flight; submissions are dropped
// until the result arrives.
func (m *Model) SetBusy(busy bool) {
	m.busy = busy
}

// Focus returns the command that starts the cursor blinking.
func (m Model) Focus() tea.Cmd {
	return textinput.Blink
}

// Update handles key input for the form. Escape is the parent's business.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab", "down", "up":
			m.errText = ""
			m.focusIdx = 1 - m.focusIdx
			if m.focusIdx == 0 {
				m.password.Blur()
				return m, m.username.Focus()
			}
			m.username.Blur()
			return m, m.password.Focus()

		case "enter":
			if m.busy {
				return m, nil
			}
			username := strings.TrimSpace(m.username.Value())
			password := m.password.Value()
			if username == "" || password == "" {
				m.errText = "Enter a username and password."
				return m, nil
			}
			m.busy = true
			return m, func() tea.Msg {
				return SubmitMsg{Username: username, Password: password}
			}
		}
	}

	var cmd tea.Cmd
	if m.focusIdx == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// View renders the login panel.
func (m Model) View() string {
	title := theme.StyleHeader.Render(" TEACHER LOGIN ")

	lines := []string{
		title,
		"",
		theme.StyleDimmed.Render("Username"),
		m.username.View(),
		theme.StyleDimmed.Render("Password"),
		m.password.View(),
	}

	if m.busy {
		lines = append(lines, "", theme.StyleDimmed.Render("Logging in..."))
	} else if m.errText != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.ColorError).Render(m.errText))
	}

	lines = append(lines, "", theme.StyleDimmed.Render("tab:switch field  enter:login  esc:close"))

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorTeacher).
		Render(strings.Join(lines, "\n"))
}
