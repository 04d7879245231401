package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/internal/platform/store/drivers/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func testProfile(id, tenantID string) domain.Profile {
	now := time.Now().UTC()
	return domain.Profile{
		ID:        id,
		Email:     id + "@platform.test",
		FullName:  "Tx " + id,
		Roles:     domain.RoleSet{domain.RoleTeacher},
		TenantID:  tenantID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestWithTxCommitsBothProfileRecords(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	p := testProfile("user-1", "tenant-a")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Profiles().CreateProfile(ctx, p); err != nil {
			return err
		}
		return tx.TenantProfiles().CreateTenantProfile(ctx, domain.TenantProfile{
			TenantID:  p.TenantID,
			ProfileID: p.ID,
			Email:     p.Email,
			FullName:  p.FullName,
			Roles:     p.Roles,
			Status:    domain.TenantProfileActive,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	})
	require.NoError(t, err)

	got, err := st.Profiles().GetProfile(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, "tenant-a", got.TenantID)

	tp, err := st.TenantProfiles().GetTenantProfile(ctx, "tenant-a", "user-1")
	require.NoError(t, err)
	require.Equal(t, domain.TenantProfileActive, tp.Status)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	boom := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Profiles().CreateProfile(ctx, testProfile("user-2", "tenant-a")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Neither record survives the rollback.
	_, err = st.Profiles().GetProfile(ctx, "user-2")
	require.ErrorIs(t, err, store.ErrNotFound)
}
