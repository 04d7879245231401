package sqlite

import (
	"context"

	"github.com/peakprep/platform/internal/platform/domain"
)

type leadsRepo struct {
	db dbtx
}

func (r *leadsRepo) CreateLead(ctx context.Context, l domain.Lead) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leads (id, name, email, message, source_page, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Email, l.Message, l.SourcePage, l.CreatedAt,
	)
	return mapAlreadyExists(err)
}
