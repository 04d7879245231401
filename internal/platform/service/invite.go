package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/pkg/cryptox"
	"github.com/peakprep/platform/pkg/slogx"
)

var (
	ErrInvalidInviteRole = errors.New("invite role is not grantable")

	// The three redemption outcomes are deliberately distinct errors: the UI
	// must be able to tell a used token from an expired one.
	ErrInviteNotFound    = errors.New("invite not found")
	ErrInviteAlreadyUsed = errors.New("invite has already been used")
	ErrInviteExpired     = errors.New("invite has expired")
)

// InviteService issues, inspects, and redeems single-use admission tokens.
type InviteService struct {
	Store   store.Store
	BaseURL string // public origin for redemption links

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewInviteService(st store.Store, baseURL string) *InviteService {
	return &InviteService{Store: st, BaseURL: strings.TrimRight(baseURL, "/"), Now: time.Now}
}

// Issued is what the admin UI needs to hand the invitee: the raw code and
// the full redemption link.
type Issued struct {
	Code      string
	URL       string
	ExpiresAt time.Time
}

// Issue mints an invite for a tenant and role on behalf of issuerID. The
// issuer must be an admin of the tenant (or super). An unauthorized issuer
// gets ErrUnauthorized with nothing persisted.
func (s *InviteService) Issue(
	ctx context.Context,
	issuerID string,
	tenantID string,
	tenantName string,
	role domain.Role,
	studentID string,
) (Issued, error) {
	log := slogx.FromContext(ctx)

	// 1. Role must be grantable; super is never issued through invites.
	if !role.IsProvisionable() {
		log.Warn("invite requested for non-grantable role",
			slog.String("role", string(role)),
			slog.String("tenant_id", tenantID),
		)
		return Issued{}, ErrInvalidInviteRole
	}

	// 2. Resolve the issuer and authorize against the target tenant.
	issuer, err := s.Store.Profiles().GetProfile(ctx, issuerID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to fetch issuer profile", slog.Any("error", err))
		return Issued{}, err
	}
	issuerRef := &issuer
	if errors.Is(err, store.ErrNotFound) {
		issuerRef = nil
	}
	if !Authorize(issuerRef, []domain.Role{domain.RoleAdmin}, tenantID) {
		log.Warn("unauthorized invite issuance attempt",
			slog.String("issuer_id", issuerID),
			slog.String("tenant_id", tenantID),
		)
		return Issued{}, ErrUnauthorized
	}

	// 3. Generate the code. 128 bits of randomness; never derived from
	// counters or timestamps.
	code, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		log.Error("failed to generate invite code", slog.Any("error", err))
		return Issued{}, err
	}

	now := s.Now().UTC()
	inv := domain.InviteToken{
		Code:       code,
		TenantID:   tenantID,
		TenantName: tenantName,
		Role:       role,
		StudentID:  studentID,
		CreatedBy:  issuerID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(domain.InviteTTL),
	}
	if err := s.Store.Invites().CreateInvite(ctx, inv); err != nil {
		log.Error("failed to persist invite", slog.Any("error", err))
		return Issued{}, err
	}

	log.Info("invite issued",
		slog.String("tenant_id", tenantID),
		slog.String("role", string(role)),
		slog.String("issuer_id", issuerID),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	return Issued{
		Code:      code,
		URL:       fmt.Sprintf("%s/join/%s", s.BaseURL, code),
		ExpiresAt: inv.ExpiresAt,
	}, nil
}

// Inspect is the read-only lookup behind the join page. It never mutates
// the token.
func (s *InviteService) Inspect(ctx context.Context, code string) (domain.InviteToken, error) {
	inv, err := s.Store.Invites().GetInvite(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return domain.InviteToken{}, ErrInviteNotFound
	}
	if err != nil {
		return domain.InviteToken{}, err
	}
	return inv, nil
}

// Redeem consumes an invite. Checks run in a fixed order (existence, then
// already-used, then expiry) and the used flip is a conditional write, so
// two racing redemptions resolve to exactly one winner. Marking
// used happens before any account is provisioned: a crash after the flip
// can never mint two accounts from one token, and a crash before it leaves
// the token safely retryable.
func (s *InviteService) Redeem(ctx context.Context, code string) (domain.InviteToken, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invites().GetInvite(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return domain.InviteToken{}, ErrInviteNotFound
	}
	if err != nil {
		return domain.InviteToken{}, err
	}

	if inv.Used {
		log.Warn("redemption attempt on used invite", slog.String("tenant_id", inv.TenantID))
		return domain.InviteToken{}, ErrInviteAlreadyUsed
	}

	now := s.Now().UTC()
	if !now.Before(inv.ExpiresAt) {
		log.Warn("redemption attempt on expired invite",
			slog.String("tenant_id", inv.TenantID),
			slog.Time("expired_at", inv.ExpiresAt),
		)
		return domain.InviteToken{}, ErrInviteExpired
	}

	// Conditional flip: used=true only if still false.
	err = s.Store.Invites().MarkInviteUsed(ctx, code, now)
	if errors.Is(err, store.ErrConflict) {
		// Another redemption won between our read and this write.
		return domain.InviteToken{}, ErrInviteAlreadyUsed
	}
	if err != nil {
		log.Error("failed to mark invite used", slog.Any("error", err))
		return domain.InviteToken{}, err
	}

	inv.Used = true
	inv.UsedAt = &now

	log.Info("invite redeemed",
		slog.String("tenant_id", inv.TenantID),
		slog.String("role", string(inv.Role)),
	)
	return inv, nil
}
