package sqlite

import (
	"context"
	"time"

	"github.com/peakprep/platform/internal/platform/domain"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	var (
		p     domain.Profile
		roles string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, full_name, roles, tenant_id, created_at, updated_at
		   FROM profiles WHERE id = ?`, id,
	).Scan(&p.ID, &p.Email, &p.FullName, &roles, &p.TenantID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	p.Roles = domain.ParseRoleSet(roles)
	return p, nil
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, email, full_name, roles, tenant_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Email, p.FullName, rolesColumn(p.Roles), p.TenantID, p.CreatedAt, p.UpdatedAt,
	)
	return mapAlreadyExists(err)
}

func (r *profilesRepo) UpdateRoles(ctx context.Context, id string, roles domain.RoleSet) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET roles = ?, updated_at = ? WHERE id = ?`,
		rolesColumn(roles), time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
