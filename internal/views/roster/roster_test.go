package roster

import (
	"errors"
	"strings"
	"testing"

	"github.com/mergington/activities-tui/internal/client"
	"github.com/mergington/activities-tui/internal/session"
)

func chessSnapshot() client.ActivityList {
	return client.ActivityList{
		Names: []string{"Chess Club"},
		ByName: map[string]client.Activity{
			"Chess Club": {
				Description:     "Strategy games",
				Schedule:        "Fri 15:30",
				MaxParticipants: 10,
				Participants:    []string{"a@x.com", "b@x.com"},
			},
		},
	}
}

func TestSpotsLeftRendered(t *testing.T) {
	m := New()
	m.SetSnapshot(chessSnapshot(), session.Session{})

	v := m.View()
	if !strings.Contains(v, "8 spots left") {
		t.Errorf("view should show 8 spots left:\n%s", v)
	}
}

func TestAnonymousSessionHidesRemovalMarkers(t *testing.T) {
	m := New()
	m.SetSnapshot(chessSnapshot(), session.Session{})

	if v := m.View(); strings.Contains(v, "✗") {
		t.Error("removal markers must not render for an anonymous session")
	}
}

func TestTeacherSessionShowsRemovalMarkers(t *testing.T) {
	m := New()
	m.SetSnapshot(chessSnapshot(), session.Session{Token: "tok"})

	v := m.View()
	if got := strings.Count(v, "✗"); got != 2 {
		t.Errorf("removal marker count = %d, want one per participant (2)", got)
	}
}

func TestOverAllocatedSpotsNotClamped(t *testing.T) {
	participants := make([]string, 12)
	for i := range participants {
		participants[i] = "p@x.com"
	}
	list := client.ActivityList{
		Names: []string{"Drama Club"},
		ByName: map[string]client.Activity{
			"Drama Club": {MaxParticipants: 10, Participants: participants},
		},
	}

	m := New()
	m.SetSnapshot(list, session.Session{})

	if v := m.View(); !strings.Contains(v, "-2 spots left") {
		t.Errorf("over-allocated activity should render -2 verbatim:\n%s", v)
	}
}

func TestEmptyRoster(t *testing.T) {
	list := client.ActivityList{
		Names:  []string{"New Club"},
		ByName: map[string]client.Activity{"New Club": {MaxParticipants: 5}},
	}

	m := New()
	m.SetSnapshot(list, session.Session{})

	if v := m.View(); !strings.Contains(v, "No participants yet") {
		t.Errorf("empty roster should say so:\n%s", v)
	}
}

func TestFetchFailureKeepsSelectionList(t *testing.T) {
	list := client.ActivityList{
		Names: []string{"Chess Club", "Art Studio"},
		ByName: map[string]client.Activity{
			"Chess Club": {MaxParticipants: 10},
			"Art Studio": {MaxParticipants: 15},
		},
	}

	m := New()
	m.SetSnapshot(list, session.Session{})
	m.MoveActivity(1)
	m.SetError(errors.New("connection refused"))

	v := m.View()
	if !strings.Contains(v, "Failed to load activities") {
		t.Errorf("failure notice missing:\n%s", v)
	}
	// Prior names survive for selection.
	if !strings.Contains(v, "Chess Club") || !strings.Contains(v, "Art Studio") {
		t.Errorf("prior name list should remain:\n%s", v)
	}
	if name, _ := m.Selected(); name != "Art Studio" {
		t.Errorf("selection moved on error: %q", name)
	}
}

func TestSelectionOrderFollowsSnapshot(t *testing.T) {
	list := client.ActivityList{
		Names: []string{"Zeta", "Alpha"},
		ByName: map[string]client.Activity{
			"Zeta":  {MaxParticipants: 1},
			"Alpha": {MaxParticipants: 1},
		},
	}

	m := New()
	m.SetSnapshot(list, session.Session{})

	if name, _ := m.Selected(); name != "Zeta" {
		t.Errorf("first selection = %q, want wire order, not alphabetical", name)
	}
	m.MoveActivity(1)
	if name, _ := m.Selected(); name != "Alpha" {
		t.Errorf("second selection = %q", name)
	}
	m.MoveActivity(1) // wraps
	if name, _ := m.Selected(); name != "Zeta" {
		t.Errorf("wrapped selection = %q", name)
	}
}

func TestSelectedParticipant(t *testing.T) {
	m := New()
	m.SetSnapshot(chessSnapshot(), session.Session{Token: "tok"})

	activity, email, ok := m.SelectedParticipant()
	if !ok || activity != "Chess Club" || email != "a@x.com" {
		t.Errorf("SelectedParticipant() = %q %q %v", activity, email, ok)
	}

	m.MoveParticipant(1)
	if _, email, _ := m.SelectedParticipant(); email != "b@x.com" {
		t.Errorf("after move, email = %q", email)
	}
}

func TestCursorsClampAfterShrinkingSnapshot(t *testing.T) {
	m := New()
	m.SetSnapshot(chessSnapshot(), session.Session{Token: "tok"})
	m.MoveParticipant(1)

	// Refresh with one participant removed.
	shrunk := client.ActivityList{
		Names: []string{"Chess Club"},
		ByName: map[string]client.Activity{
			"Chess Club": {MaxParticipants: 10, Participants: []string{"a@x.com"}},
		},
	}
	m.SetSnapshot(shrunk, session.Session{Token: "tok"})

	_, email, ok := m.SelectedParticipant()
	if !ok || email != "a@x.com" {
		t.Errorf("cursor should clamp into the new roster, got %q %v", email, ok)
	}
}
