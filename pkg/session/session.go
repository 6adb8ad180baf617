package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/rashidq/quranadmin/pkg/api"
	"github.com/rashidq/quranadmin/pkg/model"
)

// Credentials is the persisted half of the session.
type Credentials interface {
	Store(user *model.UserProfile, token string) error
	Load() (*model.UserProfile, string)
	Clear() error
}

// Authenticator performs the login call. Implemented by *api.Client.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*model.UserProfile, string, error)
}

// LoginResult is what the login form renders from.
type LoginResult struct {
	Success bool
	User    *model.UserProfile
	Error   string
}

// Snapshot is an immutable view of the session for guard evaluation and
// conditional rendering. Taken fresh on every render, never cached.
type Snapshot struct {
	User    *model.UserProfile
	Loading bool
}

// Role returns the closed role of the snapshot's user, RoleGuest when empty.
func (s Snapshot) Role() model.Role {
	return s.User.Role()
}

// Authenticated reports whether a user is present.
func (s Snapshot) Authenticated() bool {
	return s.User != nil
}

// Store is the single source of truth for "who is logged in". It is
// constructed once at startup and handed to whatever needs it; there is no
// package-level singleton.
type Store struct {
	mu      sync.RWMutex
	creds   Credentials
	auth    Authenticator
	user    *model.UserProfile
	token   string
	loading bool
}

// NewStore creates a session store. The session stays in the loading state
// until Restore runs.
func NewStore(creds Credentials, auth Authenticator) *Store {
	return &Store{creds: creds, auth: auth, loading: true}
}

// Restore hydrates the in-memory session from persisted credentials. No
// server round-trip: a stale token simply fails on its first request. Flips
// the loading flag exactly once, whether or not credentials were found.
func (s *Store) Restore() {
	user, token := s.creds.Load()

	s.mu.Lock()
	defer s.mu.Unlock()
	if user != nil && token != "" {
		s.user = user
		s.token = token
		slog.Info("session restored", "username", user.Username, "role", user.RoleName)
	}
	s.loading = false
}

// Login authenticates and, on success, persists and adopts the new identity.
// On any failure the session is left exactly as it was, and Error carries the
// message in priority order: server-provided string, transport error, generic
// fallback. Concurrent calls are not serialized; the last writer wins.
func (s *Store) Login(ctx context.Context, email, password string) LoginResult {
	s.setLoading(true)
	defer s.setLoading(false)

	user, token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return LoginResult{Success: false, Error: loginErrorMessage(err)}
	}

	if err := s.creds.Store(user, token); err != nil {
		slog.Error("persist credentials", "err", err)
		return LoginResult{Success: false, Error: "could not save login"}
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()

	slog.Info("login ok", "username", user.Username, "role", user.RoleName)
	return LoginResult{Success: true, User: user}
}

// Logout clears persisted credentials and the in-memory session. No server
// call; idempotent.
func (s *Store) Logout() {
	if err := s.creds.Clear(); err != nil {
		slog.Error("clear credentials", "err", err)
	}
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{User: s.user, Loading: s.loading}
}

// User returns the logged-in profile, or nil.
func (s *Store) User() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Role returns the current role, RoleGuest when logged out.
func (s *Store) Role() model.Role {
	return s.User().Role()
}

// IsSuperuser reports whether the current role is exactly superuser.
func (s *Store) IsSuperuser() bool {
	return s.Role().IsSuperuser()
}

// IsAdmin reports whether the current role is admin or superuser.
func (s *Store) IsAdmin() bool {
	return s.Role().IsAdmin()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// loginErrorMessage extracts the user-facing message: the server's error
// string when present, then the transport error, then a generic fallback.
func loginErrorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Login failed"
}
