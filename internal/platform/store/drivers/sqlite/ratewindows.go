package sqlite

import (
	"context"
	"time"

	"github.com/peakprep/platform/internal/platform/domain"
)

type rateWindowsRepo struct {
	db dbtx
}

func (r *rateWindowsRepo) GetRateWindow(ctx context.Context, key string) (domain.RateWindow, error) {
	var w domain.RateWindow
	err := r.db.QueryRowContext(ctx,
		`SELECT count, reset_at FROM rate_windows WHERE key = ?`, key,
	).Scan(&w.Count, &w.ResetAt)
	if err != nil {
		return domain.RateWindow{}, mapNotFound(err)
	}
	return w, nil
}

func (r *rateWindowsRepo) PutRateWindow(ctx context.Context, key string, w domain.RateWindow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rate_windows (key, count, reset_at) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET count = excluded.count, reset_at = excluded.reset_at`,
		key, w.Count, w.ResetAt,
	)
	return err
}

func (r *rateWindowsRepo) DeleteClosedRateWindows(ctx context.Context, before time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rate_windows WHERE reset_at < ?`, before)
	return err
}
