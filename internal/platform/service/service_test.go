package service_test

import (
	"context"
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

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return st
}

func seedProfile(t *testing.T, st store.Store, id, tenantID string, roles ...domain.Role) {
	t.Helper()

	now := time.Now().UTC()
	require.NoError(t, st.Profiles().CreateProfile(context.Background(), domain.Profile{
		ID:        id,
		Email:     id + "@acme-tutors.test",
		FullName:  "Seeded " + id,
		Roles:     roles,
		TenantID:  tenantID,
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

// fakeClock is a hand-advanced clock for window and expiry tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
