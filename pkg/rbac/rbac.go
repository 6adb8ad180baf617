// Package rbac provides role-based access control checks for admin screens.
package rbac

import "github.com/rashidq/quranadmin/pkg/model"

// Permission represents a specific admin capability that can be checked
// against a role.
type Permission int

const (
	PermViewDashboard Permission = iota
	PermViewContent              // browse topics and quizzes read-only
	PermEditContent              // create/update/delete topics and quizzes
	PermManageTranslations
	PermManageUsers
	PermViewAnalytics
)

// permissionMatrix maps roles to their allowed permissions.
var permissionMatrix = map[model.Role]map[Permission]bool{
	model.RoleSuperuser: {
		PermViewDashboard:      true,
		PermViewContent:        true,
		PermEditContent:        true,
		PermManageTranslations: true,
		PermManageUsers:        true,
		PermViewAnalytics:      true,
	},
	model.RoleAdmin: {
		PermViewDashboard: true,
		PermViewContent:   true,
		PermViewAnalytics: true,
	},
	model.RoleUser: {
		PermViewDashboard: true,
		PermViewContent:   true,
	},
	// RoleGuest has no entry: nothing is permitted without a session.
}

// HasPermission checks if a role has a specific permission.
func HasPermission(role model.Role, perm Permission) bool {
	perms, ok := permissionMatrix[role]
	if !ok {
		return false
	}
	return perms[perm]
}

// RequirePermission returns an error message if the role lacks the permission,
// or empty string if allowed.
func RequirePermission(role model.Role, perm Permission) string {
	if HasPermission(role, perm) {
		return ""
	}
	return "permission denied: " + permName(perm) + " requires a higher role"
}

func permName(p Permission) string {
	switch p {
	case PermViewDashboard:
		return "view_dashboard"
	case PermViewContent:
		return "view_content"
	case PermEditContent:
		return "edit_content"
	case PermManageTranslations:
		return "manage_translations"
	case PermManageUsers:
		return "manage_users"
	case PermViewAnalytics:
		return "view_analytics"
	default:
		return "unknown"
	}
}
