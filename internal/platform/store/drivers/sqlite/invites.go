package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/store"
)

type invitesRepo struct {
	db dbtx
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.InviteToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (code, tenant_id, tenant_name, role, student_id, created_by, created_at, expires_at, used, used_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.Code, inv.TenantID, inv.TenantName, string(inv.Role), inv.StudentID,
		inv.CreatedBy, inv.CreatedAt, inv.ExpiresAt, inv.Used, mapOptionalTime(inv.UsedAt),
	)
	return mapAlreadyExists(err)
}

func (r *invitesRepo) GetInvite(ctx context.Context, code string) (domain.InviteToken, error) {
	var (
		inv    domain.InviteToken
		role   string
		usedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT code, tenant_id, tenant_name, role, student_id, created_by, created_at, expires_at, used, used_at
		   FROM invites WHERE code = ?`, code,
	).Scan(&inv.Code, &inv.TenantID, &inv.TenantName, &role, &inv.StudentID,
		&inv.CreatedBy, &inv.CreatedAt, &inv.ExpiresAt, &inv.Used, &usedAt)
	if err != nil {
		return domain.InviteToken{}, mapNotFound(err)
	}
	inv.Role = domain.Role(role)
	inv.UsedAt = mapNullTimePtr(usedAt)
	return inv, nil
}

// MarkInviteUsed is the conditional write that makes redemption single-use:
// the used flag flips only if it is still false, so of any number of
// concurrent redemptions exactly one sees an affected row.
func (r *invitesRepo) MarkInviteUsed(ctx context.Context, code string, usedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET used = TRUE, used_at = ? WHERE code = ? AND used = FALSE`,
		usedAt, code,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrConflict
	}
	return nil
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, before time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM invites WHERE expires_at < ?`, before)
	return err
}
