package signup

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSetNamesKeepsCurrentPick(t *testing.T) {
	m := New()
	m.SetNames([]string{"Chess Club", "Art Studio", "Drama Club"})
	m.Select("Art Studio")

	// A refresh reorders the list; the pick survives.
	m.SetNames([]string{"Drama Club", "Art Studio", "Chess Club"})
	if got := m.Selected(); got != "Art Studio" {
		t.Errorf("Selected() = %q, want pick preserved across SetNames", got)
	}
}

func TestSetNamesDropsVanishedPick(t *testing.T) {
	m := New()
	m.SetNames([]string{"Chess Club", "Art Studio"})
	m.Select("Art Studio")

	m.SetNames([]string{"Chess Club"})
	if got := m.Selected(); got != "Chess Club" {
		t.Errorf("Selected() = %q, want first entry after pick vanished", got)
	}
}

func TestTabCyclesActivities(t *testing.T) {
	m := New()
	m.SetNames([]string{"Chess Club", "Art Studio"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Selected(); got != "Art Studio" {
		t.Errorf("Selected() after tab = %q", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Selected(); got != "Chess Club" {
		t.Errorf("Selected() should wrap, got %q", got)
	}
}

func TestSubmitRequiresEmail(t *testing.T) {
	m := New()
	m.SetNames([]string{"Chess Club"})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("submit without an email should not emit a command")
	}
	if !strings.Contains(m.View(), "Enter a student email") {
		t.Error("form should show the validation error")
	}
}

func TestSubmitEmitsActivityAndEmail(t *testing.T) {
	m := New()
	m.SetNames([]string{"Chess Club"})
	for _, r := range "kid@mergington.edu" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit should emit a command")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("command produced %T, want SubmitMsg", cmd())
	}
	if msg.Activity != "Chess Club" || msg.Email != "kid@mergington.edu" {
		t.Errorf("SubmitMsg = %+v", msg)
	}
}
