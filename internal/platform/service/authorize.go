package service

import (
	"github.com/peakprep/platform/internal/platform/domain"
)

// Authorize is the single authorization decision procedure. Every privileged
// entry point funnels through here via the route guard; nothing else in the
// codebase compares role strings.
//
// The rules, in order:
//   - no profile at all is an ordinary "unauthorized", not a fault;
//   - super bypasses tenant scoping entirely;
//   - everyone else must belong to the target tenant AND hold at least one
//     of the required roles.
//
// The function is pure: the caller fetches the profile, Authorize only
// decides. Tenant-id presence is validated at the guard boundary so this
// stays a total function over its inputs.
func Authorize(profile *domain.Profile, required []domain.Role, tenantID string) bool {
	if profile == nil {
		return false
	}
	if profile.IsSuper() {
		return true
	}
	if profile.TenantID == "" || profile.TenantID != tenantID {
		return false
	}
	return profile.Roles.Intersects(required)
}
