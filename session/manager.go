// Package session owns the authenticated session: who is logged in, the
// bearer token, and the transient UI state of each browser session. The
// Manager is the only writer of auth state; everything else reads through
// Session accessors and treats an absent user as "not authenticated".
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"eduport/gateway"
	"eduport/models"
	"eduport/ui"
)

type Event string

const (
	EventLogin   Event = "login"
	EventLogout  Event = "logout"
	EventProfile Event = "profile"
)

// Session is the state of one browser session. Auth fields change only
// through the Manager; UI state changes through UpdateUI.
type Session struct {
	id string

	mu    sync.RWMutex
	user  *models.User
	token string
	uist  ui.State

	toasts  *ui.Notifier
	loading *ui.LoadingTracker
}

func newSession(id string) *Session {
	return &Session{
		id:      id,
		uist:    ui.NewState(),
		toasts:  ui.NewNotifier(),
		loading: ui.NewLoadingTracker(),
	}
}

func (s *Session) ID() string { return s.id }

// User returns a copy of the current user, or nil when anonymous.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

func (s *Session) UI() ui.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uist
}

// UpdateUI applies fn to the UI state under the session lock.
func (s *Session) UpdateUI(fn func(*ui.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.uist)
}

func (s *Session) Toasts() *ui.Notifier        { return s.toasts }
func (s *Session) Loading() *ui.LoadingTracker { return s.loading }

// setAuth replaces user and token together, never one without the other.
func (s *Session) setAuth(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.user = &u
	s.token = token
}

func (s *Session) clearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

// Manager tracks live sessions and is the single writer of their auth
// state. Dependents subscribe to hear about login/logout instead of polling.
type Manager struct {
	gw    *gateway.Client
	store TokenStore
	log   *log.Logger
	now   func() time.Time

	mu        sync.RWMutex
	sessions  map[string]*Session
	listeners []func(*Session, Event)
}

func NewManager(gw *gateway.Client, store TokenStore, logger *log.Logger) *Manager {
	return &Manager{
		gw:       gw,
		store:    store,
		log:      logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Subscribe registers a listener for auth events. Listeners run on the
// calling goroutine of the triggering action.
func (m *Manager) Subscribe(fn func(*Session, Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *Manager) notify(s *Session, ev Event) {
	m.mu.RLock()
	listeners := make([]func(*Session, Event), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.RUnlock()
	for _, fn := range listeners {
		fn(s, ev)
	}
}

// get returns the live session for sid, creating an anonymous one if
// needed. The bool reports whether the session already existed.
func (m *Manager) get(sid string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sid]; ok {
		return s, true
	}
	s := newSession(sid)
	m.sessions[sid] = s
	return s, false
}

// Resume is checkAuth: the first time a session id shows up it looks for a
// persisted token and validates it against the who-am-I endpoint. Any
// failure there is token invalidation, not a hard error, and forces logout.
// Subsequent calls just return the live session.
func (m *Manager) Resume(ctx context.Context, sid string) *Session {
	s, existed := m.get(sid)
	if existed {
		return s
	}

	token, ok, err := m.store.Get(ctx, sid)
	if err != nil {
		m.log.Printf("session: token store read for %s: %v", sid, err)
		return s
	}
	if !ok {
		return s
	}

	if tokenExpired(token, m.now()) {
		m.Logout(ctx, sid)
		return s
	}

	user, err := m.gw.Me(ctx, token)
	if err != nil {
		m.log.Printf("session: auth check failed for %s: %v", sid, err)
		m.Logout(ctx, sid)
		return s
	}

	s.setAuth(user, token)
	m.notify(s, EventLogin)
	return s
}

// Login authenticates and, only on success, atomically installs {user,
// token}, persists the token, and notifies dependents. On failure the prior
// state is left untouched.
func (m *Manager) Login(ctx context.Context, sid, username, password string) (*models.User, error) {
	res, err := m.gw.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return m.install(ctx, sid, res), nil
}

func (m *Manager) Register(ctx context.Context, sid string, req gateway.RegisterRequest) (*models.User, error) {
	res, err := m.gw.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return m.install(ctx, sid, res), nil
}

func (m *Manager) install(ctx context.Context, sid string, res *gateway.AuthResult) *models.User {
	s, _ := m.get(sid)
	s.setAuth(&res.User, res.Token)
	if err := m.store.Set(ctx, sid, res.Token); err != nil {
		m.log.Printf("session: persist token for %s: %v", sid, err)
	}
	m.notify(s, EventLogin)
	u := res.User
	return &u
}

// Logout clears auth state and the persisted token unconditionally, even
// when no session was active. Calling it twice observes the same result.
func (m *Manager) Logout(ctx context.Context, sid string) {
	s, _ := m.get(sid)
	s.clearAuth()
	if err := m.store.Delete(ctx, sid); err != nil {
		m.log.Printf("session: drop token for %s: %v", sid, err)
	}
	m.notify(s, EventLogout)
}

// SetUser replaces the session's user after a profile update. The token is
// untouched.
func (m *Manager) SetUser(sid string, user *models.User) {
	s, _ := m.get(sid)
	s.mu.Lock()
	u := *user
	s.user = &u
	s.mu.Unlock()
	m.notify(s, EventProfile)
}
