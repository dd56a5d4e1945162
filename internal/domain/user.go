package domain

import "time"

// Role is the single enumerated role type for the whole application.
// Role checks go through Can; components never compare role strings directly.
type Role string

const (
	// RoleAdmin is the system administrator (verifies mosques, manages all tenants)
	RoleAdmin Role = "admin"
	// RoleMosqueAdmin administers one or more mosques
	RoleMosqueAdmin Role = "mosque_admin"
	// RoleCommunityMember is a registered kariah member
	RoleCommunityMember Role = "community_member"
)

// Capability names an action gated by role
type Capability string

const (
	CapVerifyMosques   Capability = "verify_mosques"
	CapManageMosque    Capability = "manage_mosque"
	CapViewMosque      Capability = "view_mosque"
	CapSelfRegister    Capability = "self_register"
)

// Can is the single capability-check function for role-based gates.
// Mosque-scoped ownership (is this user an admin of THIS mosque) is checked
// separately against the mosque_admins table.
func (r Role) Can(c Capability) bool {
	switch c {
	case CapVerifyMosques:
		return r == RoleAdmin
	case CapManageMosque:
		return r == RoleAdmin || r == RoleMosqueAdmin
	case CapViewMosque, CapSelfRegister:
		return r == RoleAdmin || r == RoleMosqueAdmin || r == RoleCommunityMember
	}
	return false
}

// Valid reports whether the role is a known value
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMosqueAdmin, RoleCommunityMember:
		return true
	}
	return false
}

// User represents an account holder
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone,omitempty"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
