// Package client provides the HTTP client for the activities sign-up backend.
// Types mirror the backend wire format without importing backend packages.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Activity is one registrable event as served by GET /activities.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns capacity minus the current roster size. The value is
// not clamped: a server that over-allocated yields a negative count and
// the caller renders it verbatim.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// ActivityList is the GET /activities response: a JSON object keyed by
// activity name. The backend's key order is meaningful (it drives the
// selection list), and Go maps don't preserve it, so the list keeps the
// names in wire order alongside the lookup map.
type ActivityList struct {
	Names  []string
	ByName map[string]Activity
}

// Get returns the activity for a name.
func (l ActivityList) Get(name string) (Activity, bool) {
	a, ok := l.ByName[name]
	return a, ok
}

// Len returns the number of activities.
func (l ActivityList) Len() int {
	return len(l.Names)
}

// UnmarshalJSON decodes the activities object one key at a time so that
// Names ends up in the exact order the backend emitted.
func (l *ActivityList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("activities: expected object, got %v", tok)
	}

	l.Names = nil
	l.ByName = make(map[string]Activity)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("activities: expected key, got %v", tok)
		}

		var a Activity
		if err := dec.Decode(&a); err != nil {
			return fmt.Errorf("activities: decode %q: %w", name, err)
		}

		if _, dup := l.ByName[name]; !dup {
			l.Names = append(l.Names, name)
		}
		l.ByName[name] = a
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// LoginResponse is the POST /login success body.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// actionResponse is the success body of signup and unregister calls.
type actionResponse struct {
	Message string `json:"message"`
}

// errorResponse is the backend's non-2xx body shape.
type errorResponse struct {
	Detail string `json:"detail"`
}

// APIError is a non-2xx backend response. Detail carries the server's
// `detail` field when the body had one; it may be empty.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}
