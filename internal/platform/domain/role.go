package domain

import "strings"

// Role is a closed enumeration of the platform's role tags.
type Role string

const (
	RoleSuper     Role = "super"
	RoleAdmin     Role = "admin"
	RoleExecutive Role = "executive"
	RoleTeacher   Role = "teacher"
	RoleParent    Role = "parent"
	RoleStudent   Role = "student"
)

// ProvisionableRoles are the roles an admin may hand out through invites or
// direct provisioning. Super is platform-internal and never provisioned.
var ProvisionableRoles = []Role{RoleAdmin, RoleExecutive, RoleTeacher, RoleParent, RoleStudent}

// IsValid reports whether r is a known role tag.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuper, RoleAdmin, RoleExecutive, RoleTeacher, RoleParent, RoleStudent:
		return true
	}
	return false
}

// IsProvisionable reports whether r may be assigned by a tenant admin.
func (r Role) IsProvisionable() bool {
	return r.IsValid() && r != RoleSuper
}

// RoleSet is the capability set a caller effectively holds. Some legacy
// records carry a single role tag, others a list; ParseRoleSet is the one
// place that normalizes both shapes. Nothing below this boundary should care
// which form a record was stored in.
type RoleSet []Role

// ParseRoleSet normalizes a space-delimited role field into a RoleSet,
// dropping duplicates and unknown tags.
func ParseRoleSet(s string) RoleSet {
	fields := strings.Fields(s)
	set := make(RoleSet, 0, len(fields))
	seen := make(map[Role]struct{}, len(fields))
	for _, f := range fields {
		r := Role(f)
		if !r.IsValid() {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		set = append(set, r)
	}
	return set
}

// Contains reports whether the set holds the given role.
func (rs RoleSet) Contains(r Role) bool {
	for _, have := range rs {
		if have == r {
			return true
		}
	}
	return false
}

// Intersects reports whether the set shares at least one role with required.
func (rs RoleSet) Intersects(required []Role) bool {
	for _, want := range required {
		if rs.Contains(want) {
			return true
		}
	}
	return false
}

// String returns the space-delimited storage form.
func (rs RoleSet) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
