package domain

import "time"

// InviteTTL is how long an invite stays redeemable after issuance.
const InviteTTL = 7 * 24 * time.Hour

// InviteToken is a single-use, time-limited admission credential scoping a
// role and tenant. Code is the primary key: high-entropy, generated once,
// never reused. The used flag is a one-way transition flipped with a
// conditional write so concurrent redemptions admit exactly one winner.
type InviteToken struct {
	Code       string
	TenantID   string
	TenantName string // denormalized display name for the join page
	Role       Role   // never super
	StudentID  string // optional pre-provisioned student to attach
	CreatedBy  string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	Used       bool
	UsedAt     *time.Time
}

// Redeemable reports whether the token may still be redeemed at the given
// instant: never used and not yet expired.
func (t InviteToken) Redeemable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
