package domain

// Role enumerates console roles. The zero value means unauthenticated;
// permission rules are expressed against the closed set below, never by
// numeric comparison.
type Role string

const (
	RoleNone       Role = ""
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Valid reports whether r is one of the assignable roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStaff, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// DisplayName returns the human-readable label used by the console header.
func (r Role) DisplayName() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdmin:
		return "Admin"
	case RoleStaff:
		return "Staff"
	}
	return "User"
}

// AssignableRoles lists every role a user account can hold.
func AssignableRoles() []Role {
	return []Role{RoleStaff, RoleAdmin, RoleSuperAdmin}
}
