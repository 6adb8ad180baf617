// Package model defines the core domain types for the Quran admin client.
package model

// Role represents a user's permission level on the platform.
//
// The backend transmits roles as strings; parsing is exact and case-sensitive,
// so "Superuser" or "ADMIN" grant nothing. Unknown strings map to RoleUser: the
// account is still logged in, it just has no elevated capability.
type Role int

const (
	RoleGuest     Role = iota // no session
	RoleUser                  // authenticated, no management capability
	RoleAdmin                 // elevated: read-level access to admin screens
	RoleSuperuser             // unrestricted: content, translations, users
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	case RoleSuperuser:
		return "superuser"
	default:
		return "guest"
	}
}

// ParseRole converts a backend role string to a Role.
func ParseRole(s string) Role {
	switch s {
	case "superuser":
		return RoleSuperuser
	case "admin":
		return RoleAdmin
	default:
		return RoleUser
	}
}

// Valid returns true if the role is a recognised value.
func (r Role) Valid() bool {
	return r >= RoleGuest && r <= RoleSuperuser
}

// AtLeast reports whether the role sits at or above min in the role order.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// IsSuperuser reports whether the role is exactly superuser.
func (r Role) IsSuperuser() bool {
	return r == RoleSuperuser
}

// IsAdmin reports whether the role is admin or superuser.
func (r Role) IsAdmin() bool {
	return r.AtLeast(RoleAdmin)
}
