package session

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduport/gateway"
)

// authBackend fakes the auth endpoints and counts who-am-I lookups.
type authBackend struct {
	mu      sync.Mutex
	meCalls int
}

func (b *authBackend) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok123","user":{"id":1,"username":"ana","full_name":"Ana Pratiwi"}}`))
	})
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok456","user":{"id":2,"username":"budi"}}`))
	})
	mux.HandleFunc("/api/users/me", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.meCalls++
		b.mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer tok123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid token"}`))
			return
		}
		w.Write([]byte(`{"id":1,"username":"ana","full_name":"Ana Pratiwi"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestManager(t *testing.T, store TokenStore) (*Manager, *authBackend) {
	t.Helper()
	b := &authBackend{}
	logger := log.New(io.Discard, "", 0)
	return NewManager(gateway.New(b.server(t).URL, logger), store, logger), b
}

func TestLoginInstallsAndPersists(t *testing.T) {
	store := NewMemoryStore()
	m, _ := newTestManager(t, store)
	ctx := context.Background()

	user, err := m.Login(ctx, "sid-1", "ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)

	s := m.Resume(ctx, "sid-1")
	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok123", s.Token())

	tok, ok, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok123", tok)
}

func TestResumeRestoresFromStore(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "sid-1", "tok123"))

	// fresh manager, as after a process restart
	m, b := newTestManager(t, store)
	s := m.Resume(context.Background(), "sid-1")
	assert.True(t, s.Authenticated())
	assert.Equal(t, "ana", s.User().Username)
	assert.Equal(t, 1, b.meCalls)

	// second resume reuses the live session, no re-validation
	m.Resume(context.Background(), "sid-1")
	assert.Equal(t, 1, b.meCalls)
}

func TestResumeInvalidTokenForcesLogout(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "sid-1", "stale-token"))

	m, _ := newTestManager(t, store)
	s := m.Resume(context.Background(), "sid-1")
	assert.False(t, s.Authenticated())

	_, ok, _ := store.Get(context.Background(), "sid-1")
	assert.False(t, ok)
}

func TestResumeExpiredJWTSkipsGateway(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte("whatever"))
	require.NoError(t, err)

	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "sid-1", token))

	m, b := newTestManager(t, store)
	s := m.Resume(context.Background(), "sid-1")
	assert.False(t, s.Authenticated())
	// the expiry is decided locally
	assert.Zero(t, b.meCalls)

	_, ok, _ := store.Get(context.Background(), "sid-1")
	assert.False(t, ok)
}

func TestOpaqueTokenGoesToGateway(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "sid-1", "tok123"))

	m, b := newTestManager(t, store)
	s := m.Resume(context.Background(), "sid-1")
	// not a JWT, so the who-am-I endpoint decides, and accepts
	assert.True(t, s.Authenticated())
	assert.Equal(t, 1, b.meCalls)
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	m, _ := newTestManager(t, store)
	ctx := context.Background()

	_, err := m.Login(ctx, "sid-1", "ana", "secret")
	require.NoError(t, err)

	m.Logout(ctx, "sid-1")
	m.Logout(ctx, "sid-1")
	// logging out a session that never existed is also fine
	m.Logout(ctx, "sid-2")

	s := m.Resume(ctx, "sid-1")
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer srv.Close()

	store := NewMemoryStore()
	logger := log.New(io.Discard, "", 0)
	m := NewManager(gateway.New(srv.URL, logger), store, logger)

	_, err := m.Login(context.Background(), "sid-1", "ana", "wrong")
	assert.Error(t, err)

	s := m.Resume(context.Background(), "sid-1")
	assert.False(t, s.Authenticated())
	_, ok, _ := store.Get(context.Background(), "sid-1")
	assert.False(t, ok)
}

func TestSubscribeSeesAuthEvents(t *testing.T) {
	m, _ := newTestManager(t, NewMemoryStore())

	var events []Event
	m.Subscribe(func(_ *Session, ev Event) { events = append(events, ev) })

	ctx := context.Background()
	_, err := m.Login(ctx, "sid-1", "ana", "secret")
	require.NoError(t, err)
	m.Logout(ctx, "sid-1")

	assert.Equal(t, []Event{EventLogin, EventLogout}, events)
}

func TestSessionsAreIsolated(t *testing.T) {
	m, _ := newTestManager(t, NewMemoryStore())
	ctx := context.Background()

	_, err := m.Login(ctx, "sid-1", "ana", "secret")
	require.NoError(t, err)

	other := m.Resume(ctx, "sid-2")
	assert.False(t, other.Authenticated())
	assert.Nil(t, other.User())
}
