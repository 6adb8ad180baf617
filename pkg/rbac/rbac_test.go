package rbac

import (
	"strings"
	"testing"

	"github.com/rashidq/quranadmin/pkg/model"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name string
		role model.Role
		perm Permission
		want bool
	}{
		{"superuser manages users", model.RoleSuperuser, PermManageUsers, true},
		{"superuser manages translations", model.RoleSuperuser, PermManageTranslations, true},
		{"superuser edits content", model.RoleSuperuser, PermEditContent, true},
		{"admin views dashboard", model.RoleAdmin, PermViewDashboard, true},
		{"admin views analytics", model.RoleAdmin, PermViewAnalytics, true},
		{"admin cannot manage users", model.RoleAdmin, PermManageUsers, false},
		{"admin cannot manage translations", model.RoleAdmin, PermManageTranslations, false},
		{"user views content", model.RoleUser, PermViewContent, true},
		{"user cannot edit content", model.RoleUser, PermEditContent, false},
		{"guest has nothing", model.RoleGuest, PermViewDashboard, false},
		{"unknown role denied", model.Role(42), PermViewDashboard, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPermission(tt.role, tt.perm); got != tt.want {
				t.Errorf("HasPermission(%v, %v) = %v, want %v", tt.role, tt.perm, got, tt.want)
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	if msg := RequirePermission(model.RoleSuperuser, PermManageUsers); msg != "" {
		t.Fatalf("RequirePermission granted role: %q", msg)
	}

	msg := RequirePermission(model.RoleAdmin, PermManageUsers)
	if msg == "" {
		t.Fatal("RequirePermission(admin, manage users) = \"\", want denial message")
	}
	if !strings.Contains(msg, "permission denied") {
		t.Errorf("message %q does not mention permission denied", msg)
	}
	if !strings.Contains(msg, "manage_users") {
		t.Errorf("message %q does not name the permission", msg)
	}
}
