package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shahidulislam-dev/warehouse-console/internal/domain"
)

func TestRolePredicates(t *testing.T) {
	cases := []struct {
		role       domain.Role
		staff      bool
		admin      bool
		superAdmin bool
	}{
		{domain.RoleStaff, true, false, false},
		{domain.RoleAdmin, true, true, false},
		{domain.RoleSuperAdmin, true, true, true},
		{domain.RoleNone, false, false, false},
		{domain.Role("intruder"), false, false, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.staff, IsStaff(tc.role), "IsStaff(%q)", tc.role)
		assert.Equal(t, tc.admin, IsAdmin(tc.role), "IsAdmin(%q)", tc.role)
		assert.Equal(t, tc.superAdmin, IsSuperAdmin(tc.role), "IsSuperAdmin(%q)", tc.role)
	}
}

func TestDerivedPredicates(t *testing.T) {
	assert.False(t, CanManageUsers(domain.RoleStaff))
	assert.True(t, CanManageUsers(domain.RoleAdmin))
	assert.True(t, CanManageUsers(domain.RoleSuperAdmin))

	assert.False(t, CanManageSuperAdmins(domain.RoleAdmin))
	assert.True(t, CanManageSuperAdmins(domain.RoleSuperAdmin))

	assert.False(t, CanDeleteEntities(domain.RoleStaff))
	assert.True(t, CanDeleteEntities(domain.RoleAdmin))

	assert.True(t, CanEditEntities(domain.RoleStaff))
	assert.True(t, CanEditEntities(domain.RoleSuperAdmin))
	assert.False(t, CanEditEntities(domain.RoleNone))
}

func TestCanChangeRole_NeverSelf(t *testing.T) {
	target := domain.User{Email: "me@example.com", Role: domain.RoleStaff}
	for _, actor := range []domain.Role{domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperAdmin, domain.RoleNone} {
		assert.False(t, CanChangeRole(actor, "me@example.com", target),
			"self role change must be denied for actor role %q", actor)
	}
}

func TestCanChangeRole_Matrix(t *testing.T) {
	other := func(role domain.Role) domain.User {
		return domain.User{Email: "other@example.com", Role: role}
	}

	cases := []struct {
		name   string
		actor  domain.Role
		target domain.User
		want   bool
	}{
		{"super-admin changes staff", domain.RoleSuperAdmin, other(domain.RoleStaff), true},
		{"super-admin changes admin", domain.RoleSuperAdmin, other(domain.RoleAdmin), true},
		{"super-admin changes super-admin", domain.RoleSuperAdmin, other(domain.RoleSuperAdmin), true},
		{"admin changes staff", domain.RoleAdmin, other(domain.RoleStaff), true},
		{"admin changes admin", domain.RoleAdmin, other(domain.RoleAdmin), false},
		{"admin changes super-admin", domain.RoleAdmin, other(domain.RoleSuperAdmin), false},
		{"staff changes staff", domain.RoleStaff, other(domain.RoleStaff), false},
		{"unauthenticated changes staff", domain.RoleNone, other(domain.RoleStaff), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanChangeRole(tc.actor, "actor@example.com", tc.target))
		})
	}
}

func TestCanViewUser(t *testing.T) {
	for _, target := range []domain.Role{domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperAdmin} {
		assert.True(t, CanViewUser(domain.RoleSuperAdmin, target))
		assert.True(t, CanViewUser(domain.RoleAdmin, target))
		assert.False(t, CanViewUser(domain.RoleStaff, target))
		assert.False(t, CanViewUser(domain.RoleNone, target))
	}
}

func TestHasFeatureAccess(t *testing.T) {
	assert.True(t, HasFeatureAccess(domain.RoleAdmin, FeatureUserManagement))
	assert.True(t, HasFeatureAccess(domain.RoleSuperAdmin, FeatureUserManagement))
	assert.False(t, HasFeatureAccess(domain.RoleStaff, FeatureUserManagement))

	assert.True(t, HasFeatureAccess(domain.RoleSuperAdmin, FeatureSuperAdminManagement))
	assert.False(t, HasFeatureAccess(domain.RoleAdmin, FeatureSuperAdminManagement))

	for _, role := range []domain.Role{domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperAdmin} {
		assert.True(t, HasFeatureAccess(role, FeatureWarehouseManagement))
		assert.True(t, HasFeatureAccess(role, FeatureGoodsManagement))
	}

	// Unknown tags deny, never panic.
	assert.False(t, HasFeatureAccess(domain.RoleSuperAdmin, Feature("time_travel")))
	assert.False(t, HasFeatureAccess(domain.RoleNone, Feature("")))
}

func TestDashboardRoute_Total(t *testing.T) {
	assert.Equal(t, "/super-admin", DashboardRoute(domain.RoleSuperAdmin))
	assert.Equal(t, "/admin", DashboardRoute(domain.RoleAdmin))
	assert.Equal(t, "/user", DashboardRoute(domain.RoleStaff))
	assert.Equal(t, LoginRoute, DashboardRoute(domain.RoleNone))
	assert.Equal(t, LoginRoute, DashboardRoute(domain.Role("made-up")))
	assert.Equal(t, LoginRoute, DashboardRoute(domain.Role("ADMIN")), "role matching is case sensitive")
}
