// Package dispatch mediates the teacher actions against the backend:
// credential exchange, token invalidation, and roster mutations. Every
// mutation checks the authorization precondition before touching the
// network.
package dispatch

import (
	"errors"
	"fmt"
	"log"

	"github.com/mergington/activities-tui/internal/client"
	"github.com/mergington/activities-tui/internal/session"
)

// ErrNotTeacher is returned when a mutation is attempted without an
// authorized session. No request is sent in that case.
var ErrNotTeacher = errors.New("only teachers can manage registrations")

// Dispatcher performs backend actions on behalf of the UI.
type Dispatcher struct {
	api      *client.Client
	sessions *session.Store
}

// New creates a dispatcher.
func New(api *client.Client, sessions *session.Store) *Dispatcher {
	return &Dispatcher{api: api, sessions: sessions}
}

// Login exchanges credentials for a token, persists it, and returns the
// welcome message. On failure the session is left untouched.
func (d *Dispatcher) Login(username, password string) (string, error) {
	resp, err := d.api.Login(username, password)
	if err != nil {
		return "", err
	}
	if err := d.sessions.Set(resp.Token); err != nil {
		// The backend accepted the login; a persistence failure only
		// costs the next restart its session.
		log.Printf("session persist failed: %v", err)
	}
	return fmt.Sprintf("Welcome, %s! You are now logged in as a teacher.", resp.Username), nil
}

// Logout invalidates the token server-side on a best-effort basis and
// always clears the local session. It cannot fail from the caller's
// perspective.
func (d *Dispatcher) Logout() string {
	sess := d.sessions.Current()
	if sess.Authorized() {
		if err := d.api.Logout(sess.Token); err != nil {
			log.Printf("logout request failed: %v", err)
		}
	}
	if err := d.sessions.Clear(); err != nil {
		log.Printf("session clear failed: %v", err)
	}
	return "You have been logged out."
}

// Signup registers a student email for an activity. It fails fast with
// ErrNotTeacher when the session is not authorized.
func (d *Dispatcher) Signup(sess session.Session, activity, email string) (string, error) {
	if !sess.Authorized() {
		return "", ErrNotTeacher
	}
	return d.api.Signup(activity, email, sess.Token)
}

// Unregister removes a student email from an activity. Same precondition
// and contract as Signup.
func (d *Dispatcher) Unregister(sess session.Session, activity, email string) (string, error) {
	if !sess.Authorized() {
		return "", ErrNotTeacher
	}
	return d.api.Unregister(activity, email, sess.Token)
}
