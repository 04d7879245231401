package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peakprep/platform/internal/platform/domain"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	admins := []domain.Role{domain.RoleAdmin}

	t.Run("missing profile is unauthorized, not a fault", func(t *testing.T) {
		require.False(t, Authorize(nil, admins, "tenant-a"))
	})

	t.Run("super bypasses every tenant check", func(t *testing.T) {
		super := &domain.Profile{ID: "u1", Roles: domain.RoleSet{domain.RoleSuper}}
		require.True(t, Authorize(super, admins, "tenant-a"))
		require.True(t, Authorize(super, admins, "tenant-b"))
		require.True(t, Authorize(super, nil, "tenant-a"))
		require.True(t, Authorize(super, []domain.Role{domain.RoleStudent}, ""))
	})

	t.Run("super among other roles still bypasses", func(t *testing.T) {
		p := &domain.Profile{
			ID:       "u2",
			Roles:    domain.ParseRoleSet("admin super"),
			TenantID: "tenant-a",
		}
		require.True(t, Authorize(p, admins, "tenant-b"))
	})

	t.Run("tenant mismatch denies regardless of role overlap", func(t *testing.T) {
		p := &domain.Profile{ID: "u3", Roles: domain.RoleSet{domain.RoleAdmin}, TenantID: "tenant-a"}
		require.False(t, Authorize(p, admins, "tenant-b"))
	})

	t.Run("tenant match requires role intersection", func(t *testing.T) {
		teacher := &domain.Profile{ID: "u4", Roles: domain.RoleSet{domain.RoleTeacher}, TenantID: "tenant-a"}
		require.False(t, Authorize(teacher, admins, "tenant-a"))
		require.True(t, Authorize(teacher, []domain.Role{domain.RoleTeacher, domain.RoleAdmin}, "tenant-a"))
	})

	t.Run("scalar role storage normalizes to a one-element set", func(t *testing.T) {
		p := &domain.Profile{ID: "u5", Roles: domain.ParseRoleSet("admin"), TenantID: "tenant-a"}
		require.True(t, Authorize(p, admins, "tenant-a"))
	})

	t.Run("empty caller tenant never matches", func(t *testing.T) {
		p := &domain.Profile{ID: "u6", Roles: domain.RoleSet{domain.RoleAdmin}}
		require.False(t, Authorize(p, admins, "tenant-a"))
		require.False(t, Authorize(p, admins, ""))
	})
}
