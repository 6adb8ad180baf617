// Package guard decides whether the protected shell may render. The decision
// is a pure function of the session snapshot and the route's requirement, so
// it can be tested without any UI framework and is re-evaluated on every
// render: a logout while a screen is mounted must flip it immediately.
package guard

import (
	"github.com/rashidq/quranadmin/pkg/rbac"
	"github.com/rashidq/quranadmin/pkg/session"
)

// State is the route guard's renderable outcome.
type State int

const (
	// StateLoading means session restore has not finished. Render a neutral
	// placeholder and do not redirect yet, or a persisted login would flash
	// through the login screen on startup.
	StateLoading State = iota
	// StateUnauthenticated means restore finished and nobody is logged in.
	// Navigate to the login entry point, replacing history.
	StateUnauthenticated
	// StateDenied means a privilege requirement was declared and the current
	// user does not meet it. Render an access-denied view with a way back,
	// not a redirect.
	StateDenied
	// StateAuthorized means the guarded content may render.
	StateAuthorized
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateDenied:
		return "denied"
	case StateAuthorized:
		return "authorized"
	default:
		return "unknown"
	}
}

// Requirement is a route's declared privilege requirement.
type Requirement struct {
	// Perm is checked against the user's role when HasPerm is set. A zero
	// Requirement only demands authentication.
	Perm    rbac.Permission
	HasPerm bool
}

// None requires only that a user is logged in.
func None() Requirement {
	return Requirement{}
}

// Require demands a specific permission on top of authentication.
func Require(perm rbac.Permission) Requirement {
	return Requirement{Perm: perm, HasPerm: true}
}

// Evaluate runs the guard state machine in precedence order:
// loading, then authentication, then privilege.
func Evaluate(snap session.Snapshot, req Requirement) State {
	if snap.Loading {
		return StateLoading
	}
	if !snap.Authenticated() {
		return StateUnauthenticated
	}
	if req.HasPerm && !rbac.HasPermission(snap.Role(), req.Perm) {
		return StateDenied
	}
	return StateAuthorized
}
