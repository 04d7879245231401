package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/identity"
	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/pkg/slogx"
)

var (
	// ErrEmailExists means the identity already has a fully provisioned
	// profile: the right follow-up is "resend invite", not "retry create".
	ErrEmailExists = errors.New("an account with this email already exists")

	ErrInvalidUserInput = errors.New("invalid user details")
	ErrStudentNotFound  = errors.New("linked student record not found")
)

// CreateUserInput is the caller-supplied half of a new tenant user.
// Role is restricted to the caller-provisionable set; super can never be
// handed out here.
type CreateUserInput struct {
	Email           string      `validate:"required,email"`
	Password        string      `validate:"required,min=8"`
	FullName        string      `validate:"required"`
	Role            domain.Role `validate:"required,oneof=admin executive teacher parent student"`
	LinkedStudentID string      `validate:"omitempty"`
}

// ProvisionService creates authenticated identities plus the two denormalized
// profile records the role evaluator reads. Provisioning is idempotent once
// the identity exists: each step checks before writing, so a retry after a
// partial failure resumes instead of duplicating.
type ProvisionService struct {
	Store    store.Store
	Identity identity.Provider

	validate *validator.Validate
}

func NewProvisionService(st store.Store, idp identity.Provider) *ProvisionService {
	return &ProvisionService{
		Store:    st,
		Identity: idp,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateUser provisions a new tenant user on behalf of issuerID, who must be
// an admin of the tenant (or super).
func (s *ProvisionService) CreateUser(
	ctx context.Context,
	issuerID string,
	tenantID string,
	in CreateUserInput,
) (string, error) {
	log := slogx.FromContext(ctx)

	if err := s.validate.Struct(in); err != nil {
		return "", ErrInvalidUserInput
	}

	issuer, err := s.issuerProfile(ctx, issuerID)
	if err != nil {
		return "", err
	}
	if !Authorize(issuer, []domain.Role{domain.RoleAdmin}, tenantID) {
		log.Warn("unauthorized user provisioning attempt",
			slog.String("issuer_id", issuerID),
			slog.String("tenant_id", tenantID),
		)
		return "", ErrUnauthorized
	}

	return s.provision(ctx, tenantID, in)
}

// CreateUserFromInvite provisions the account for a freshly redeemed invite.
// Authorization already happened at issuance; the invite itself carries the
// tenant, role, and optional student linkage.
func (s *ProvisionService) CreateUserFromInvite(
	ctx context.Context,
	inv domain.InviteToken,
	email, password, fullName string,
) (string, error) {
	in := CreateUserInput{
		Email:           email,
		Password:        password,
		FullName:        fullName,
		Role:            inv.Role,
		LinkedStudentID: inv.StudentID,
	}
	if err := s.validate.Struct(in); err != nil {
		return "", ErrInvalidUserInput
	}
	return s.provision(ctx, inv.TenantID, in)
}

// provision runs the ordered steps: identity, global profile, tenant
// profile, student linkage. The two profile records land in one transaction
// so a TenantProfile can never point at an identity without a Profile.
func (s *ProvisionService) provision(ctx context.Context, tenantID string, in CreateUserInput) (string, error) {
	log := slogx.FromContext(ctx)

	// Step 1: create the identity, or resume against an existing one.
	identityID, err := s.Identity.CreateAccount(ctx, in.Email, in.Password, in.FullName)
	if errors.Is(err, identity.ErrEmailExists) {
		identityID, err = s.Identity.FindByEmail(ctx, in.Email)
		if err != nil {
			return "", err
		}
		// An identity with a profile is a genuine conflict. Without one we
		// are resuming a provisioning run that died between steps 1 and 2.
		if _, perr := s.Store.Profiles().GetProfile(ctx, identityID); perr == nil {
			return "", ErrEmailExists
		} else if !errors.Is(perr, store.ErrNotFound) {
			return "", perr
		}
		log.Info("resuming provisioning for existing identity",
			slog.String("identity_id", identityID),
			slog.String("tenant_id", tenantID),
		)
	} else if err != nil {
		return "", err
	}

	now := time.Now().UTC()

	// Steps 2 and 3: the global profile and its tenant-scoped copy land in
	// one transaction, each check-then-write so a resumed run skips what
	// already exists instead of duplicating it.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, perr := tx.Profiles().GetProfile(ctx, identityID)
		if errors.Is(perr, store.ErrNotFound) {
			perr = tx.Profiles().CreateProfile(ctx, domain.Profile{
				ID:        identityID,
				Email:     in.Email,
				FullName:  in.FullName,
				Roles:     domain.RoleSet{in.Role},
				TenantID:  tenantID,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if perr != nil {
			return perr
		}

		_, perr = tx.TenantProfiles().GetTenantProfile(ctx, tenantID, identityID)
		if errors.Is(perr, store.ErrNotFound) {
			perr = tx.TenantProfiles().CreateTenantProfile(ctx, domain.TenantProfile{
				TenantID:  tenantID,
				ProfileID: identityID,
				Email:     in.Email,
				FullName:  in.FullName,
				Roles:     domain.RoleSet{in.Role},
				Status:    domain.TenantProfileActive,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		return perr
	})
	if err != nil {
		log.Error("failed to write profile records", slog.Any("error", err))
		return "", err
	}

	// Step 4: optional student linkage.
	if in.LinkedStudentID != "" {
		if err := s.linkStudent(ctx, tenantID, in.LinkedStudentID, identityID, in.Role); err != nil {
			return "", err
		}
	}

	log.Info("user provisioned",
		slog.String("identity_id", identityID),
		slog.String("tenant_id", tenantID),
		slog.String("role", string(in.Role)),
	)
	return identityID, nil
}

func (s *ProvisionService) linkStudent(ctx context.Context, tenantID, studentID, identityID string, role domain.Role) error {
	var err error
	switch role {
	case domain.RoleParent:
		err = s.Store.Students().AttachStudentParent(ctx, tenantID, studentID, identityID)
	case domain.RoleStudent:
		// Attach the new identity to the pre-provisioned record instead of
		// creating a duplicate student.
		err = s.Store.Students().AttachStudentProfile(ctx, tenantID, studentID, identityID)
	default:
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return ErrStudentNotFound
	}
	return err
}

// UpdateRoles mutates a profile's role set. Only super or an admin of the
// same tenant may do this, and super itself is never grantable. The global
// profile and the tenant copy move in one transaction, so the denormalized
// pair can never diverge.
func (s *ProvisionService) UpdateRoles(
	ctx context.Context,
	issuerID string,
	tenantID string,
	profileID string,
	roles domain.RoleSet,
) error {
	log := slogx.FromContext(ctx)

	if len(roles) == 0 {
		return ErrInvalidUserInput
	}
	for _, r := range roles {
		if !r.IsProvisionable() {
			return ErrInvalidUserInput
		}
	}

	issuer, err := s.issuerProfile(ctx, issuerID)
	if err != nil {
		return err
	}
	if !Authorize(issuer, []domain.Role{domain.RoleAdmin}, tenantID) {
		return ErrUnauthorized
	}

	// The target must belong to the tenant being administered.
	target, err := s.Store.Profiles().GetProfile(ctx, profileID)
	if err != nil {
		return err
	}
	if target.TenantID != tenantID {
		return ErrUnauthorized
	}

	// Both copies of the role set move in one transaction.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Profiles().UpdateRoles(ctx, profileID, roles); err != nil {
			return err
		}
		return tx.TenantProfiles().UpdateTenantProfileRoles(ctx, tenantID, profileID, roles)
	})
	if err != nil {
		log.Error("role update failed",
			slog.String("profile_id", profileID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("roles updated",
		slog.String("profile_id", profileID),
		slog.String("tenant_id", tenantID),
		slog.String("roles", roles.String()),
	)
	return nil
}

// ListTenantUsers returns the tenant's denormalized user records. Admins and
// executives of the tenant may list; this is the read the TenantProfile
// denormalization exists for.
func (s *ProvisionService) ListTenantUsers(ctx context.Context, issuerID, tenantID string) ([]domain.TenantProfile, error) {
	issuer, err := s.issuerProfile(ctx, issuerID)
	if err != nil {
		return nil, err
	}
	if !Authorize(issuer, []domain.Role{domain.RoleAdmin, domain.RoleExecutive}, tenantID) {
		return nil, ErrUnauthorized
	}
	return s.Store.TenantProfiles().ListTenantProfiles(ctx, tenantID)
}

// issuerProfile fetches the caller's profile, mapping "no profile" to nil so
// Authorize treats it as an ordinary denial.
func (s *ProvisionService) issuerProfile(ctx context.Context, issuerID string) (*domain.Profile, error) {
	p, err := s.Store.Profiles().GetProfile(ctx, issuerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
