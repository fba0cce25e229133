// Package theme provides the Lip Gloss color palette and reusable styles
// for the activities TUI. It is a leaf package with no internal imports
// to avoid import cycles.
package theme

import "github.com/charmbracelet/lipgloss"

// Notice colors.
var (
	ColorSuccess = lipgloss.Color("#16a34a")
	ColorError   = lipgloss.Color("#dc2626")
	ColorInfo    = lipgloss.Color("#2563eb")
)

// Capacity thresholds for the spots-left label.
var (
	ColorSpotsOpen = lipgloss.Color("#22c55e") // plenty of room
	ColorSpotsLow  = lipgloss.Color("#d97706") // 3 or fewer left
	ColorSpotsFull = lipgloss.Color("#dc2626") // full or over-allocated
)

// Role colors.
var (
	ColorTeacher = lipgloss.Color("#a855f7")
	ColorStudent = lipgloss.Color("#6b7280")
)

// UI chrome colors.
var (
	ColorBorder  = lipgloss.Color("#4b5563")
	ColorDimmed  = lipgloss.Color("#6b7280")
	ColorBright  = lipgloss.Color("#f9fafb")
	ColorAccent  = lipgloss.Color("#3b82f6")
	ColorWarning = lipgloss.Color("#d97706")
	ColorDanger  = lipgloss.Color("#dc2626")
	ColorDefault = lipgloss.Color("#9ca3af")
)

// NoticeColor returns the color for a notice kind string.
func NoticeColor(kind string) lipgloss.Color {
	switch kind {
	case "success":
		return ColorSuccess
	case "error":
		return ColorError
	case "info":
		return ColorInfo
	default:
		return ColorDefault
	}
}

// SpotsColor returns the color for a spots-left count. Negative counts mean
// the server over-allocated; they get the same treatment as a full roster.
func SpotsColor(spotsLeft int) lipgloss.Color {
	switch {
	case spotsLeft <= 0:
		return ColorSpotsFull
	case spotsLeft <= 3:
		return ColorSpotsLow
	default:
		return ColorSpotsOpen
	}
}

// Reusable styles.
var (
	StyleBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleDimmed = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)
)
