package guard

import (
	"testing"

	"github.com/rashidq/quranadmin/pkg/model"
	"github.com/rashidq/quranadmin/pkg/rbac"
	"github.com/rashidq/quranadmin/pkg/session"
)

func profile(role string) *model.UserProfile {
	return &model.UserProfile{ID: 1, Username: "u", RoleName: role}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		req  Requirement
		want State
	}{
		{
			"loading wins over everything",
			session.Snapshot{Loading: true},
			Require(rbac.PermManageUsers),
			StateLoading,
		},
		{
			"loading even with a user present",
			session.Snapshot{User: profile("superuser"), Loading: true},
			None(),
			StateLoading,
		},
		{
			"no user after restore",
			session.Snapshot{},
			None(),
			StateUnauthenticated,
		},
		{
			"no user on a privileged route",
			session.Snapshot{},
			Require(rbac.PermManageUsers),
			StateUnauthenticated,
		},
		{
			"authenticated but underprivileged is denied, not logged out",
			session.Snapshot{User: profile("admin")},
			Require(rbac.PermManageUsers),
			StateDenied,
		},
		{
			"plain user on translation management",
			session.Snapshot{User: profile("user")},
			Require(rbac.PermManageTranslations),
			StateDenied,
		},
		{
			"zero requirement only needs a session",
			session.Snapshot{User: profile("user")},
			None(),
			StateAuthorized,
		},
		{
			"superuser passes the strictest gate",
			session.Snapshot{User: profile("superuser")},
			Require(rbac.PermManageUsers),
			StateAuthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.snap, tt.req); got != tt.want {
				t.Errorf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateLoading, "loading"},
		{StateUnauthenticated, "unauthenticated"},
		{StateDenied, "denied"},
		{StateAuthorized, "authorized"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
