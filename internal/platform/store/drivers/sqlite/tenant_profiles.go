package sqlite

import (
	"context"
	"time"

	"github.com/peakprep/platform/internal/platform/domain"
)

type tenantProfilesRepo struct {
	db dbtx
}

func scanTenantProfile(scan func(dest ...any) error) (domain.TenantProfile, error) {
	var (
		tp     domain.TenantProfile
		roles  string
		status string
	)
	err := scan(&tp.TenantID, &tp.ProfileID, &tp.Email, &tp.FullName, &roles, &status,
		&tp.CreatedAt, &tp.UpdatedAt)
	if err != nil {
		return domain.TenantProfile{}, err
	}
	tp.Roles = domain.ParseRoleSet(roles)
	tp.Status = domain.TenantProfileStatus(status)
	return tp, nil
}

func (r *tenantProfilesRepo) GetTenantProfile(ctx context.Context, tenantID, profileID string) (domain.TenantProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT tenant_id, profile_id, email, full_name, roles, status, created_at, updated_at
		   FROM tenant_profiles WHERE tenant_id = ? AND profile_id = ?`,
		tenantID, profileID,
	)
	tp, err := scanTenantProfile(row.Scan)
	if err != nil {
		return domain.TenantProfile{}, mapNotFound(err)
	}
	return tp, nil
}

func (r *tenantProfilesRepo) CreateTenantProfile(ctx context.Context, tp domain.TenantProfile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tenant_profiles (tenant_id, profile_id, email, full_name, roles, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tp.TenantID, tp.ProfileID, tp.Email, tp.FullName, rolesColumn(tp.Roles),
		string(tp.Status), tp.CreatedAt, tp.UpdatedAt,
	)
	return mapAlreadyExists(err)
}

func (r *tenantProfilesRepo) UpdateTenantProfileRoles(ctx context.Context, tenantID, profileID string, roles domain.RoleSet) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tenant_profiles SET roles = ?, updated_at = ? WHERE tenant_id = ? AND profile_id = ?`,
		rolesColumn(roles), time.Now().UTC(), tenantID, profileID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *tenantProfilesRepo) ListTenantProfiles(ctx context.Context, tenantID string) ([]domain.TenantProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tenant_id, profile_id, email, full_name, roles, status, created_at, updated_at
		   FROM tenant_profiles WHERE tenant_id = ? ORDER BY created_at`,
		tenantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TenantProfile
	for rows.Next() {
		tp, err := scanTenantProfile(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, rows.Err()
}
