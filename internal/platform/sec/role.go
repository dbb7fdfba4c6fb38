// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Admin Roles

// UserRole represents the authorization level granted to an admin account.
type UserRole string

const (
	// Full access, including admin account management
	RoleSuperAdmin UserRole = "super_admin"

	// Content plus site settings
	RoleAdmin UserRole = "admin"

	// Content only
	RoleEditor UserRole = "editor"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	return r.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleSuperAdmin:
		return 30
	case RoleAdmin:
		return 20
	case RoleEditor:
		return 10
	default:
		return 0
	}
}
