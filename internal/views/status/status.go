package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mergington/activities-tui/internal/theme"
)

// Model holds the status bar state.
type Model struct {
	Authorized    bool
	Username      string
	ActivityCount int
	Fetching      bool
	Width         int
}

// New creates a status bar model.
func New() Model {
	return Model{}
}

// View renders the status bar.
func (m Model) View() string {
	width := m.Width
	if width < 40 {
		width = 40
	}

	var roleStr string
	if m.Authorized {
		label := "● Teacher"
		if m.Username != "" {
			label = "● Teacher: " + m.Username
		}
		roleStr = lipgloss.NewStyle().Foreground(theme.ColorTeacher).Render(label)
	} else {
		roleStr = lipgloss.NewStyle().Foreground(theme.ColorStudent).Render("○ Student")
	}

	counts := fmt.Sprintf("%d activities", m.ActivityCount)

	sep := lipgloss.NewStyle().Foreground(theme.ColorBorder).Render(" | ")
	content := roleStr + sep + counts
	if m.Fetching {
		content += sep + lipgloss.NewStyle().Foreground(theme.ColorWarning).Render("refreshing…")
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}
