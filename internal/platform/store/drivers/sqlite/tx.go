package sqlite

import (
	"context"
	"database/sql"

	"github.com/peakprep/platform/internal/platform/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore { return &txStore{tx: tx} }

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open; caller commits or rolls back

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed.
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts

func (t *txStore) Accounts() store.Accounts             { return &accountsRepo{db: t.tx} }
func (t *txStore) Profiles() store.Profiles             { return &profilesRepo{db: t.tx} }
func (t *txStore) TenantProfiles() store.TenantProfiles { return &tenantProfilesRepo{db: t.tx} }
func (t *txStore) Invites() store.Invites               { return &invitesRepo{db: t.tx} }
func (t *txStore) RateWindows() store.RateWindows       { return &rateWindowsRepo{db: t.tx} }
func (t *txStore) Students() store.Students             { return &studentsRepo{db: t.tx} }
func (t *txStore) Leads() store.Leads                   { return &leadsRepo{db: t.tx} }
