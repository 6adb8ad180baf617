package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rashidq/quranadmin/pkg/api"
	"github.com/rashidq/quranadmin/pkg/model"
	"github.com/rashidq/quranadmin/pkg/session"
)

// loginServer fakes the auth endpoint: one known account, everything else is
// rejected with the backend's usual 401 envelope.
func loginServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if req.Email != "admin@example.com" || req.Password != "s3cret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
				"success": false,
				"error":   "Invalid credentials",
			})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"success": true,
			"data": map[string]any{
				"token": "tok-abc",
				"user": map[string]any{
					"id":       1,
					"username": "admin",
					"email":    "admin@example.com",
					"role":     "superuser",
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestStore(t *testing.T) (*session.Store, *session.CredentialsFile) {
	t.Helper()
	srv := loginServer(t)
	creds := session.NewCredentialsFile(t.TempDir())
	client := api.NewClient(srv.URL, creds)
	return session.NewStore(creds, client), creds
}

func TestLoginSuccess(t *testing.T) {
	store, creds := newTestStore(t)

	res := store.Login(context.Background(), "admin@example.com", "s3cret")
	if !res.Success {
		t.Fatalf("Login failed: %q", res.Error)
	}
	if res.User == nil || res.User.Username != "admin" {
		t.Fatalf("Login user = %+v", res.User)
	}

	if !store.IsSuperuser() {
		t.Error("IsSuperuser = false after superuser login")
	}
	if !store.IsAdmin() {
		t.Error("IsAdmin = false after superuser login")
	}
	snap := store.Snapshot()
	if !snap.Authenticated() || snap.Loading {
		t.Errorf("Snapshot = %+v, want authenticated and not loading", snap)
	}

	// credentials survive for the next start
	user, token := creds.Load()
	if token != "tok-abc" {
		t.Errorf("persisted token = %q, want %q", token, "tok-abc")
	}
	if user == nil || user.Role() != model.RoleSuperuser {
		t.Errorf("persisted user = %+v", user)
	}
}

func TestLoginRejectedLeavesSessionUntouched(t *testing.T) {
	store, creds := newTestStore(t)
	store.Restore()

	res := store.Login(context.Background(), "admin@example.com", "wrong")
	if res.Success {
		t.Fatal("Login succeeded with wrong password")
	}
	if res.Error != "Invalid credentials" {
		t.Errorf("Error = %q, want the server's message", res.Error)
	}

	if store.User() != nil {
		t.Error("session adopted a user after rejected login")
	}
	if store.Role() != model.RoleGuest {
		t.Errorf("Role = %v, want RoleGuest", store.Role())
	}
	if user, token := creds.Load(); user != nil || token != "" {
		t.Error("rejected login persisted credentials")
	}
}

func TestLoginThenRestartRestores(t *testing.T) {
	srv := loginServer(t)
	dir := t.TempDir()
	creds := session.NewCredentialsFile(dir)
	client := api.NewClient(srv.URL, creds)

	first := session.NewStore(creds, client)
	if res := first.Login(context.Background(), "admin@example.com", "s3cret"); !res.Success {
		t.Fatalf("Login: %q", res.Error)
	}

	// fresh store over the same directory, as after a process restart
	second := session.NewStore(session.NewCredentialsFile(dir), client)
	if snap := second.Snapshot(); !snap.Loading {
		t.Error("fresh store should start loading")
	}
	second.Restore()

	snap := second.Snapshot()
	if snap.Loading {
		t.Error("still loading after Restore")
	}
	if !snap.Authenticated() || snap.Role() != model.RoleSuperuser {
		t.Errorf("restored snapshot = %+v", snap)
	}
}

func TestRestoreWithoutCredentials(t *testing.T) {
	store, _ := newTestStore(t)
	store.Restore()

	snap := store.Snapshot()
	if snap.Loading {
		t.Error("still loading after Restore")
	}
	if snap.Authenticated() {
		t.Error("authenticated with no persisted credentials")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	store, creds := newTestStore(t)
	if res := store.Login(context.Background(), "admin@example.com", "s3cret"); !res.Success {
		t.Fatalf("Login: %q", res.Error)
	}

	store.Logout()
	store.Logout()

	if store.User() != nil {
		t.Error("user still set after Logout")
	}
	if user, token := creds.Load(); user != nil || token != "" {
		t.Error("credentials still on disk after Logout")
	}
	if got := creds.Token(); got != "" {
		t.Errorf("Token after Logout = %q, want empty", got)
	}
}

func TestLoginErrorFallsBackToTransportError(t *testing.T) {
	creds := session.NewCredentialsFile(t.TempDir())
	// no server listening on this address
	client := api.NewClient("http://127.0.0.1:1", creds)
	store := session.NewStore(creds, client)

	res := store.Login(context.Background(), "a@b.c", "x")
	if res.Success {
		t.Fatal("Login succeeded against a dead address")
	}
	if res.Error == "" {
		t.Error("Error is empty, want the transport error message")
	}
}
