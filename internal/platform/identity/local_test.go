package identity_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peakprep/platform/internal/platform/identity"
	"github.com/peakprep/platform/internal/platform/store/drivers/sqlite"
)

func newTestProvider(t *testing.T) *identity.LocalProvider {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "identity.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return identity.NewLocalProvider(st)
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t)

	id, err := provider.CreateAccount(ctx, "maria@acme-tutors.test", "s3cret-enough", "Maria Lopez")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	t.Run("duplicate email is a named conflict", func(t *testing.T) {
		_, err := provider.CreateAccount(ctx, "maria@acme-tutors.test", "other-pass", "Other Maria")
		require.ErrorIs(t, err, identity.ErrEmailExists)
	})

	t.Run("email comparison is case-insensitive", func(t *testing.T) {
		_, err := provider.CreateAccount(ctx, "MARIA@Acme-Tutors.test", "other-pass", "Other Maria")
		require.ErrorIs(t, err, identity.ErrEmailExists)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t)

	id, err := provider.CreateAccount(ctx, "tim@acme-tutors.test", "s3cret-enough", "Tim Okafor")
	require.NoError(t, err)

	t.Run("correct credentials return the identity id", func(t *testing.T) {
		got, err := provider.Authenticate(ctx, "tim@acme-tutors.test", "s3cret-enough")
		require.NoError(t, err)
		require.Equal(t, id, got)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.Authenticate(ctx, "tim@acme-tutors.test", "wrong")
		require.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := provider.Authenticate(ctx, "nobody@acme-tutors.test", "whatever")
		require.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})
}

func TestFindByEmail(t *testing.T) {
	ctx := context.Background()
	provider := newTestProvider(t)

	id, err := provider.CreateAccount(ctx, "ana@acme-tutors.test", "s3cret-enough", "Ana Silva")
	require.NoError(t, err)

	got, err := provider.FindByEmail(ctx, "ana@acme-tutors.test")
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = provider.FindByEmail(ctx, "missing@acme-tutors.test")
	require.ErrorIs(t, err, identity.ErrAccountNotFound)
}
