package store

import (
	"context"
	"errors"
	"time"

	"github.com/peakprep/platform/internal/platform/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a conditional write that lost: the expected field
	// value no longer held when the write ran (e.g. an invite already used).
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// any document store tomorrow) implement this. All records are logically
// partitioned by tenant id or primary key; nothing in the repos performs a
// cross-tenant write.
type Store interface {
	Accounts() Accounts
	Profiles() Profiles
	TenantProfiles() TenantProfiles
	Invites() Invites
	RateWindows() RateWindows
	Students() Students
	Leads() Leads

	ApplyMigrations() error

	// WithTx executes fn within a transaction, rolling back if fn errors and
	// committing otherwise. Multi-record writes that must land together
	// (the global profile and its tenant copy) go through here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Accounts backs the local identity provider: credentials live here, never
// on the Profile.
type Accounts interface {
	// CreateAccount inserts a new account; ErrAlreadyExists if the email is
	// taken (emails are unique per identity provider).
	CreateAccount(ctx context.Context, id, email, passwordHash, displayName string) error

	// GetAccountByEmail returns (id, passwordHash) for the email.
	GetAccountByEmail(ctx context.Context, email string) (string, string, error)
}

type Profiles interface {
	// GetProfile returns the globally keyed profile for an identity id.
	GetProfile(ctx context.Context, id string) (domain.Profile, error)

	// CreateProfile inserts a new profile (id comes from the identity provider).
	CreateProfile(ctx context.Context, p domain.Profile) error

	// UpdateRoles replaces the role set and bumps updated_at.
	UpdateRoles(ctx context.Context, id string, roles domain.RoleSet) error
}

type TenantProfiles interface {
	// GetTenantProfile returns the denormalized record keyed (tenantID, profileID).
	GetTenantProfile(ctx context.Context, tenantID, profileID string) (domain.TenantProfile, error)

	// CreateTenantProfile inserts the tenant-scoped copy of a profile.
	CreateTenantProfile(ctx context.Context, tp domain.TenantProfile) error

	// UpdateTenantProfileRoles keeps the denormalized role set in step with
	// the global profile.
	UpdateTenantProfileRoles(ctx context.Context, tenantID, profileID string, roles domain.RoleSet) error

	// ListTenantProfiles returns every user record of one tenant.
	ListTenantProfiles(ctx context.Context, tenantID string) ([]domain.TenantProfile, error)
}

type Invites interface {
	// CreateInvite writes a new invite keyed by its code.
	CreateInvite(ctx context.Context, inv domain.InviteToken) error

	// GetInvite returns an invite by code regardless of state.
	GetInvite(ctx context.Context, code string) (domain.InviteToken, error)

	// MarkInviteUsed flips used=true at usedAt only if used is still false.
	// Returns ErrConflict when another redemption won the race.
	MarkInviteUsed(ctx context.Context, code string, usedAt time.Time) error

	// DeleteExpiredInvites is housekeeping, never correctness.
	DeleteExpiredInvites(ctx context.Context, before time.Time) error
}

// RateWindows persists fixed-window counters so limits survive restarts and
// hold across horizontally scaled processes. The read-modify-write is not
// serialized; the limiter documents the resulting soft bound.
type RateWindows interface {
	// GetRateWindow returns the counter for a key, ErrNotFound if absent.
	GetRateWindow(ctx context.Context, key string) (domain.RateWindow, error)

	// PutRateWindow upserts the counter for a key.
	PutRateWindow(ctx context.Context, key string, w domain.RateWindow) error

	// DeleteClosedRateWindows drops counters whose window closed before the
	// given instant (housekeeping).
	DeleteClosedRateWindows(ctx context.Context, before time.Time) error
}

type Students interface {
	// GetStudent returns a student record scoped to its tenant.
	GetStudent(ctx context.Context, tenantID, studentID string) (domain.Student, error)

	// CreateStudent inserts a pre-provisioned student record.
	CreateStudent(ctx context.Context, s domain.Student) error

	// AttachStudentProfile sets the student's own account id.
	AttachStudentProfile(ctx context.Context, tenantID, studentID, profileID string) error

	// AttachStudentParent sets the student's parent-reference field.
	AttachStudentParent(ctx context.Context, tenantID, studentID, parentProfileID string) error
}

type Leads interface {
	// CreateLead stores one marketing enquiry.
	CreateLead(ctx context.Context, l domain.Lead) error
}
