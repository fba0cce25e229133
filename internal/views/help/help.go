// Package help renders the keybinding reference overlay from markdown.
package help

import (
	"github.com/charmbracelet/glamour"

	"github.com/mergington/activities-tui/internal/theme"
)

const helpMarkdown = `# Mergington Activities

Browse the extracurricular roster and, as a teacher, manage student
registrations.

## Keys

| Key | Action |
|-----|--------|
| j/k | select activity |
| J/K | select participant (teachers) |
| s   | register a student (teachers) |
| x   | unregister selected participant (teachers) |
| l   | log in / log out |
| r   | refresh the roster |
| d   | event log |
| ?   | this help |
| esc | close overlay |
| q   | quit |

Students can browse; signing up and removing participants require a
teacher login.
`

// Model caches the rendered help text per width.
type Model struct {
	width    int
	rendered string
}

// New creates the help model.
func New() Model {
	return Model{}
}

// SetWidth re-renders the markdown when the width changes.
func (m *Model) SetWidth(width int) {
	if width == m.width && m.rendered != "" {
		return
	}
	m.width = width

	wrap := width - 6
	if wrap < 30 {
		wrap = 30
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.rendered = helpMarkdown
		return
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		m.rendered = helpMarkdown
		return
	}
	m.rendered = out
}

// View renders the help overlay panel.
func (m Model) View() string {
	body := m.rendered
	if body == "" {
		body = helpMarkdown
	}
	return theme.StyleBorder.Padding(0, 1).Render(body)
}
