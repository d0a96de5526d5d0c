package auth

import "github.com/shahidulislam-dev/warehouse-console/internal/domain"

// LoginRoute is where every failed authentication check lands.
const LoginRoute = "/auth/login"

// Feature tags gate whole console sections. The set is closed; tags not in
// the table below are denied for every role.
type Feature string

const (
	FeatureUserManagement       Feature = "user_management"
	FeatureSuperAdminManagement Feature = "super_admin_management"
	FeatureDeleteOperations     Feature = "delete_operations"
	FeatureWarehouseManagement  Feature = "warehouse_management"
	FeatureFloorManagement      Feature = "floor_management"
	FeatureRoomManagement       Feature = "room_management"
	FeatureGoodsManagement      Feature = "goods_management"
	FeatureCategoryManagement   Feature = "category_management"
)

var featureAccess = map[Feature][]domain.Role{
	FeatureUserManagement:       {domain.RoleAdmin, domain.RoleSuperAdmin},
	FeatureSuperAdminManagement: {domain.RoleSuperAdmin},
	FeatureDeleteOperations:     {domain.RoleAdmin, domain.RoleSuperAdmin},
	FeatureWarehouseManagement:  {domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperAdmin},
	FeatureFloorManagement:      {domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperAdmin},
	FeatureRoomManagement:       {domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperAdmin},
	FeatureGoodsManagement:      {domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperAdmin},
	FeatureCategoryManagement:   {domain.RoleStaff, domain.RoleAdmin, domain.RoleSuperAdmin},
}

// IsSuperAdmin reports whether role is the super-admin role.
func IsSuperAdmin(role domain.Role) bool {
	return role == domain.RoleSuperAdmin
}

// IsAdmin reports whether role carries admin privileges. Super-admin is a
// superset of admin.
func IsAdmin(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleSuperAdmin
}

// IsStaff reports whether role carries at least staff privileges. Every
// assignable role does; the empty role and unrecognized role claims do not.
func IsStaff(role domain.Role) bool {
	return role == domain.RoleStaff || IsAdmin(role)
}

// CanManageUsers gates the user-management section.
func CanManageUsers(role domain.Role) bool {
	return IsAdmin(role)
}

// CanManageSuperAdmins gates creation of super-admin accounts.
func CanManageSuperAdmins(role domain.Role) bool {
	return IsSuperAdmin(role)
}

// CanDeleteEntities gates delete operations on domain entities.
func CanDeleteEntities(role domain.Role) bool {
	return IsAdmin(role)
}

// CanEditEntities gates create/update operations on domain entities. Any
// recognized logged-in role may edit.
func CanEditEntities(role domain.Role) bool {
	return IsStaff(role)
}

// CanChangeRole decides whether the actor may change the target user's role.
// Nobody may change their own role, super-admin included; that check runs
// before every other branch. Otherwise super-admin may change anyone, and
// admin may change staff only.
func CanChangeRole(actorRole domain.Role, actorEmail string, target domain.User) bool {
	if target.Email == actorEmail {
		return false
	}
	if IsSuperAdmin(actorRole) {
		return true
	}
	if actorRole == domain.RoleAdmin {
		return target.Role == domain.RoleStaff
	}
	return false
}

// CanViewUser decides whether the actor may see the target in the user
// listing. Admin sees every user, super-admin targets included.
func CanViewUser(actorRole, targetRole domain.Role) bool {
	return IsAdmin(actorRole)
}

// HasFeatureAccess reports whether role may use the tagged feature. Unknown
// tags deny for every role.
func HasFeatureAccess(role domain.Role, feature Feature) bool {
	for _, allowed := range featureAccess[feature] {
		if role == allowed {
			return true
		}
	}
	return false
}

// DashboardRoute maps a role to its landing route. Total over every input:
// anything outside the assignable roles routes to login.
func DashboardRoute(role domain.Role) string {
	switch role {
	case domain.RoleSuperAdmin:
		return "/super-admin"
	case domain.RoleAdmin:
		return "/admin"
	case domain.RoleStaff:
		return "/user"
	}
	return LoginRoute
}
