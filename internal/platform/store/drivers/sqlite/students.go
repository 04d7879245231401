package sqlite

import (
	"context"
	"time"

	"github.com/peakprep/platform/internal/platform/domain"
)

type studentsRepo struct {
	db dbtx
}

func (r *studentsRepo) GetStudent(ctx context.Context, tenantID, studentID string) (domain.Student, error) {
	var s domain.Student
	err := r.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, full_name, profile_id, parent_profile_id, created_at, updated_at
		   FROM students WHERE tenant_id = ? AND id = ?`,
		tenantID, studentID,
	).Scan(&s.ID, &s.TenantID, &s.FullName, &s.ProfileID, &s.ParentProfileID,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Student{}, mapNotFound(err)
	}
	return s, nil
}

func (r *studentsRepo) CreateStudent(ctx context.Context, s domain.Student) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO students (id, tenant_id, full_name, profile_id, parent_profile_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.TenantID, s.FullName, s.ProfileID, s.ParentProfileID, s.CreatedAt, s.UpdatedAt,
	)
	return mapAlreadyExists(err)
}

func (r *studentsRepo) AttachStudentProfile(ctx context.Context, tenantID, studentID, profileID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE students SET profile_id = ?, updated_at = ? WHERE tenant_id = ? AND id = ?`,
		profileID, time.Now().UTC(), tenantID, studentID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *studentsRepo) AttachStudentParent(ctx context.Context, tenantID, studentID, parentProfileID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE students SET parent_profile_id = ?, updated_at = ? WHERE tenant_id = ? AND id = ?`,
		parentProfileID, time.Now().UTC(), tenantID, studentID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
