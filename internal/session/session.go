// Package session owns the client-side authentication state and its
// on-disk persistence. The session is a single value with one writer
// (the Store); every other component receives a copy per call.
package session

import (
	"os"
	"path/filepath"
	"strings"
)

// Session is the client's view of its authentication state. Authorization
// is derived from the token, so the two can never disagree.
type Session struct {
	Token string
}

// Authorized reports whether the session holds a token. The token is
// never verified with the backend after restore; holding one is trusted
// until the server rejects it.
func (s Session) Authorized() bool {
	return s.Token != ""
}

// Store owns the session singleton and persists the raw token to a file.
type Store struct {
	path    string
	current Session
}

// NewStore creates a store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the standard token file location under the user
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mergington-activities", "auth_token"), nil
}

// Restore reads the persisted token, if any, and adopts it as the current
// session. A missing or empty file leaves the session anonymous. No
// backend call is made; a stored token is trusted as-is.
func (s *Store) Restore() Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.current = Session{}
		return s.current
	}
	s.current = Session{Token: strings.TrimSpace(string(data))}
	return s.current
}

// Set transitions to an authorized session and persists the token.
func (s *Store) Set(token string) error {
	s.current = Session{Token: token}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear transitions to an anonymous session and removes the persisted
// token. A file that is already gone is not an error.
func (s *Store) Clear() error {
	s.current = Session{}
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Current returns a copy of the session.
func (s *Store) Current() Session {
	return s.current
}
