// Package app wires the activities TUI together: key handling, overlay
// management, backend commands, and the re-fetch that follows every
// successful mutation. All state transitions happen in Update on the
// single Bubble Tea goroutine; network and timer I/O is suspended into
// commands.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mergington/activities-tui/internal/client"
	"github.com/mergington/activities-tui/internal/dispatch"
	"github.com/mergington/activities-tui/internal/session"
	"github.com/mergington/activities-tui/internal/theme"
	"github.com/mergington/activities-tui/internal/views/debug"
	"github.com/mergington/activities-tui/internal/views/help"
	"github.com/mergington/activities-tui/internal/views/login"
	"github.com/mergington/activities-tui/internal/views/notice"
	"github.com/mergington/activities-tui/internal/views/roster"
	"github.com/mergington/activities-tui/internal/views/signup"
	"github.com/mergington/activities-tui/internal/views/status"
)

// Overlay identifies which modal is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayLogin
	OverlaySignup
	OverlayHelp
	OverlayDebug
)

// Model is the root Bubble Tea model.
type Model struct {
	api      *client.Client
	actions  *dispatch.Dispatcher
	sessions *session.Store

	keys   KeyMap
	width  int
	height int

	overlay Overlay

	// Sub-views.
	roster     roster.Model
	statusBar  status.Model
	notices    notice.Model
	loginForm  login.Model
	signupForm signup.Model
	helpView   help.Model
	events     debug.Model

	// In-flight guards, one per action kind. A second submission while
	// one is pending is dropped, not queued.
	fetching   bool
	actionBusy bool
	authBusy   bool

	refreshEvery time.Duration
	username     string
}

// --- messages ---

// activitiesMsg delivers a fresh roster snapshot or the fetch failure,
// along with the request round trip for the event log.
type activitiesMsg struct {
	list    client.ActivityList
	err     error
	elapsed time.Duration
}

// loginResultMsg delivers the outcome of a credential exchange.
type loginResultMsg struct {
	message string
	err     error
}

// logoutMsg confirms a local logout. It carries no error: logout always
// succeeds locally.
type logoutMsg struct {
	message string
}

// actionResultMsg delivers the outcome of a signup or unregister call.
type actionResultMsg struct {
	op      string // "signup" or "unregister"
	message string
	err     error
}

// refreshTickMsg drives the optional periodic roster refresh.
type refreshTickMsg time.Time

// New creates the root model. The restored session (if any) is already
// held by the store.
func New(api *client.Client, actions *dispatch.Dispatcher, sessions *session.Store, refreshEvery time.Duration) Model {
	m := Model{
		api:          api,
		actions:      actions,
		sessions:     sessions,
		keys:         DefaultKeyMap(),
		roster:       roster.New(),
		statusBar:    status.New(),
		notices:      notice.New(),
		loginForm:    login.New(),
		signupForm:   signup.New(),
		helpView:     help.New(),
		events:       debug.New(),
		refreshEvery: refreshEvery,
	}
	m.statusBar.Authorized = sessions.Current().Authorized()
	m.roster.SetSession(sessions.Current())
	return m
}

// Init fetches the initial snapshot and arms the refresh timer.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchActivities()}
	if m.refreshEvery > 0 {
		cmds = append(cmds, m.scheduleRefresh())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.Width = msg.Width
		m.notices.Width = msg.Width
		m.roster.Width = msg.Width
		m.roster.Height = msg.Height
		m.helpView.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case notice.ExpireMsg:
		m.notices.Update(msg)
		return m, nil

	case activitiesMsg:
		m.fetching = false
		m.statusBar.Fetching = false
		if msg.err != nil {
			m.events.Add(debug.KindErr, "fetch failed: "+msg.err.Error())
			m.roster.SetError(msg.err)
			return m, nil
		}
		m.events.AddTimed(debug.KindHTTP, fmt.Sprintf("fetched %d activities", msg.list.Len()), msg.elapsed)
		m.roster.SetSnapshot(msg.list, m.sessions.Current())
		m.signupForm.SetNames(msg.list.Names)
		m.statusBar.ActivityCount = msg.list.Len()
		return m, nil

	case login.SubmitMsg:
		if m.authBusy {
			return m, nil
		}
		m.authBusy = true
		m.username = msg.Username
		return m, m.doLogin(msg.Username, msg.Password)

	case loginResultMsg:
		m.authBusy = false
		if msg.err != nil {
			m.username = ""
			m.events.Add(debug.KindErr, "login failed: "+msg.err.Error())
			m.loginForm.SetError(loginErrorText(msg.err))
			return m, nil
		}
		m.events.Add(debug.KindAuth, "logged in as teacher")
		m.overlay = OverlayNone
		m.loginForm.Reset()
		m.statusBar.Authorized = true
		m.statusBar.Username = m.username
		m.roster.SetSession(m.sessions.Current())
		return m, tea.Batch(
			m.notices.Show(msg.message, notice.KindSuccess),
			m.startFetch(),
		)

	case logoutMsg:
		m.authBusy = false
		m.username = ""
		m.events.Add(debug.KindAuth, "logged out")
		m.statusBar.Authorized = false
		m.statusBar.Username = ""
		m.roster.SetSession(m.sessions.Current())
		return m, tea.Batch(
			m.notices.Show(msg.message, notice.KindInfo),
			m.startFetch(),
		)

	case signup.SubmitMsg:
		if m.actionBusy {
			m.signupForm.SetError("Another action is still in progress.")
			return m, nil
		}
		m.actionBusy = true
		return m, m.doSignup(msg.Activity, msg.Email)

	case actionResultMsg:
		m.actionBusy = false
		if msg.err != nil {
			m.events.Add(debug.KindErr, msg.op+" failed: "+msg.err.Error())
			text := actionErrorText(msg.op, msg.err)
			if m.overlay == OverlaySignup {
				m.signupForm.SetError(text)
				return m, nil
			}
			return m, m.notices.Show(text, notice.KindError)
		}
		m.events.Add(debug.KindHTTP, msg.op+" succeeded")
		if m.overlay == OverlaySignup {
			m.overlay = OverlayNone
			m.signupForm.Reset()
		}
		// One success notice, one re-fetch. The mutation has already
		// completed by the time this message arrives.
		return m, tea.Batch(
			m.notices.Show(msg.message, notice.KindSuccess),
			m.startFetch(),
		)

	case refreshTickMsg:
		cmds := []tea.Cmd{m.scheduleRefresh()}
		if !m.fetching {
			cmds = append(cmds, m.startFetch())
		}
		return m, tea.Batch(cmds...)
	}

	return m.updateOverlay(msg)
}

// updateOverlay forwards non-key messages (cursor blinks and the like)
// to the active form.
func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.overlay {
	case OverlayLogin:
		m.loginForm, cmd = m.loginForm.Update(msg)
	case OverlaySignup:
		m.signupForm, cmd = m.signupForm.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays capture all keys except their close chord.
	switch m.overlay {
	case OverlayLogin:
		if key.Matches(msg, m.keys.Escape) {
			m.overlay = OverlayNone
			m.loginForm.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.loginForm, cmd = m.loginForm.Update(msg)
		return m, cmd

	case OverlaySignup:
		if key.Matches(msg, m.keys.Escape) {
			m.overlay = OverlayNone
			m.signupForm.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.signupForm, cmd = m.signupForm.Update(msg)
		return m, cmd

	case OverlayHelp:
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) {
			m.overlay = OverlayNone
		}
		return m, nil

	case OverlayDebug:
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Debug):
			m.overlay = OverlayNone
		case key.Matches(msg, m.keys.Up):
			m.events.ScrollUp(1)
		case key.Matches(msg, m.keys.Down):
			m.events.ScrollDown(1)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		m.roster.MoveActivity(1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.roster.MoveActivity(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextParticipant):
		m.roster.MoveParticipant(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevParticipant):
		m.roster.MoveParticipant(-1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.events.Add(debug.KindNav, "manual refresh")
		if m.fetching {
			return m, nil
		}
		return m, m.startFetch()

	case key.Matches(msg, m.keys.Signup):
		if !m.sessions.Current().Authorized() {
			return m, m.notices.Show("Only teachers can register students. Please log in.", notice.KindError)
		}
		m.overlay = OverlaySignup
		m.signupForm.Reset()
		if name, ok := m.roster.Selected(); ok {
			m.signupForm.Select(name)
		}
		return m, m.signupForm.Focus()

	case key.Matches(msg, m.keys.Remove):
		if !m.sessions.Current().Authorized() {
			return m, m.notices.Show("Only teachers can unregister students.", notice.KindError)
		}
		activity, email, ok := m.roster.SelectedParticipant()
		if !ok {
			return m, m.notices.Show("No participant selected.", notice.KindInfo)
		}
		if m.actionBusy {
			return m, nil
		}
		m.actionBusy = true
		return m, m.doUnregister(activity, email)

	case key.Matches(msg, m.keys.Auth):
		if m.authBusy {
			return m, nil
		}
		if m.sessions.Current().Authorized() {
			m.authBusy = true
			return m, m.doLogout()
		}
		m.overlay = OverlayLogin
		m.loginForm.Reset()
		return m, m.loginForm.Focus()

	case key.Matches(msg, m.keys.Help):
		m.helpView.SetWidth(m.width)
		m.overlay = OverlayHelp
		return m, nil

	case key.Matches(msg, m.keys.Debug):
		m.overlay = OverlayDebug
		return m, nil
	}

	return m, nil
}

// --- commands ---

// startFetch marks the fetch in flight and returns its command.
func (m *Model) startFetch() tea.Cmd {
	m.fetching = true
	m.statusBar.Fetching = true
	return m.fetchActivities()
}

func (m Model) fetchActivities() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		start := time.Now()
		list, err := api.Activities()
		return activitiesMsg{list: list, err: err, elapsed: time.Since(start)}
	}
}

func (m Model) doLogin(username, password string) tea.Cmd {
	actions := m.actions
	return func() tea.Msg {
		message, err := actions.Login(username, password)
		return loginResultMsg{message: message, err: err}
	}
}

func (m Model) doLogout() tea.Cmd {
	actions := m.actions
	return func() tea.Msg {
		return logoutMsg{message: actions.Logout()}
	}
}

func (m Model) doSignup(activity, email string) tea.Cmd {
	actions := m.actions
	sess := m.sessions.Current()
	return func() tea.Msg {
		message, err := actions.Signup(sess, activity, email)
		return actionResultMsg{op: "signup", message: message, err: err}
	}
}

func (m Model) doUnregister(activity, email string) tea.Cmd {
	actions := m.actions
	sess := m.sessions.Current()
	return func() tea.Msg {
		message, err := actions.Unregister(sess, activity, email)
		return actionResultMsg{op: "unregister", message: message, err: err}
	}
}

func (m Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.refreshEvery, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// --- error text ---

// loginErrorText maps a login failure to the form-local message: the
// server detail when present, a generic fallback otherwise.
func loginErrorText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return "Login failed"
	}
	return "Failed to login. Please try again."
}

// actionErrorText maps a mutation failure to the user-visible message.
func actionErrorText(op string, err error) string {
	if errors.Is(err, dispatch.ErrNotTeacher) {
		if op == "signup" {
			return "Only teachers can register students. Please log in."
		}
		return "Only teachers can unregister students."
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return "An error occurred"
	}
	if op == "signup" {
		return "Failed to sign up. Please try again."
	}
	return "Failed to unregister. Please try again."
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.overlay != OverlayNone {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.overlayView())
	}

	hints := make([]string, 0, len(m.keys.FooterHelp()))
	for _, b := range m.keys.FooterHelp() {
		h := b.Help()
		hints = append(hints, h.Key+":"+h.Desc)
	}
	footer := theme.StyleDimmed.Render("  " + strings.Join(hints, "  "))

	sections := []string{m.statusBar.View()}
	if m.notices.Visible() {
		sections = append(sections, m.notices.View())
	}
	sections = append(sections, m.roster.View(), footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) overlayView() string {
	switch m.overlay {
	case OverlayLogin:
		return m.loginForm.View()
	case OverlaySignup:
		return m.signupForm.View()
	case OverlayHelp:
		return m.helpView.View()
	case OverlayDebug:
		return m.events.View(m.width, m.height)
	}
	return ""
}
