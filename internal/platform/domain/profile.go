package domain

import "time"

// Profile is the globally keyed record for one identity. Every non-super
// profile belongs to exactly one tenant; super profiles are tenant-agnostic.
type Profile struct {
	ID        string // identity id, assigned at account creation
	Email     string
	FullName  string
	Roles     RoleSet
	TenantID  string // empty only when Roles contains super
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSuper reports whether the profile bypasses tenant scoping entirely.
func (p Profile) IsSuper() bool {
	return p.Roles.Contains(RoleSuper)
}

// TenantProfileStatus is tenant-local account state, not present on the
// global Profile.
type TenantProfileStatus string

const (
	TenantProfileActive   TenantProfileStatus = "active"
	TenantProfileInactive TenantProfileStatus = "inactive"
)

// TenantProfile is the denormalized copy of a Profile stored under the
// tenant's namespace so "list all users of tenant X" is a single keyed read.
// For every TenantProfile there must exist exactly one Profile with matching
// TenantID; the global Profile is always written first so a partial failure
// never leaves a TenantProfile pointing at a nonexistent identity.
type TenantProfile struct {
	TenantID  string
	ProfileID string
	Email     string
	FullName  string
	Roles     RoleSet
	Status    TenantProfileStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
