package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/service"
	"github.com/peakprep/platform/internal/platform/store"
)

func TestInviteIssue(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := service.NewInviteService(st, "https://app.acme-tutors.test/")

	seedProfile(t, st, "admin-1", "tenant-a", domain.RoleAdmin)
	seedProfile(t, st, "teacher-1", "tenant-a", domain.RoleTeacher)
	seedProfile(t, st, "admin-b", "tenant-b", domain.RoleAdmin)
	seedProfile(t, st, "root-1", "", domain.RoleSuper)

	t.Run("admin issues for own tenant", func(t *testing.T) {
		issued, err := svc.Issue(ctx, "admin-1", "tenant-a", "Acme Tutors", domain.RoleTeacher, "")
		require.NoError(t, err)
		require.NotEmpty(t, issued.Code)
		require.Equal(t, "https://app.acme-tutors.test/join/"+issued.Code, issued.URL)

		inv, err := svc.Inspect(ctx, issued.Code)
		require.NoError(t, err)
		require.Equal(t, "tenant-a", inv.TenantID)
		require.Equal(t, domain.RoleTeacher, inv.Role)
		require.False(t, inv.Used)
		require.Equal(t, domain.InviteTTL, inv.ExpiresAt.Sub(inv.CreatedAt))
	})

	t.Run("super issues for any tenant", func(t *testing.T) {
		_, err := svc.Issue(ctx, "root-1", "tenant-b", "Beta Tutors", domain.RoleStudent, "")
		require.NoError(t, err)
	})

	t.Run("teacher may not issue", func(t *testing.T) {
		_, err := svc.Issue(ctx, "teacher-1", "tenant-a", "Acme Tutors", domain.RoleStudent, "")
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("admin of another tenant may not issue", func(t *testing.T) {
		_, err := svc.Issue(ctx, "admin-b", "tenant-a", "Acme Tutors", domain.RoleStudent, "")
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("unknown issuer may not issue", func(t *testing.T) {
		_, err := svc.Issue(ctx, "ghost", "tenant-a", "Acme Tutors", domain.RoleStudent, "")
		require.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("super role is never grantable", func(t *testing.T) {
		_, err := svc.Issue(ctx, "admin-1", "tenant-a", "Acme Tutors", domain.RoleSuper, "")
		require.ErrorIs(t, err, service.ErrInvalidInviteRole)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := svc.Issue(ctx, "admin-1", "tenant-a", "Acme Tutors", domain.Role("janitor"), "")
		require.ErrorIs(t, err, service.ErrInvalidInviteRole)
	})
}

func TestInviteRedeem(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}

	svc := service.NewInviteService(st, "https://app.acme-tutors.test")
	svc.Now = clock.Now

	seedProfile(t, st, "admin-1", "tenant-a", domain.RoleAdmin)

	issued, err := svc.Issue(ctx, "admin-1", "tenant-a", "Acme Tutors", domain.RoleParent, "student-7")
	require.NoError(t, err)

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.Redeem(ctx, "no-such-code")
		require.ErrorIs(t, err, service.ErrInviteNotFound)
	})

	t.Run("first redemption wins, second is already used", func(t *testing.T) {
		inv, err := svc.Redeem(ctx, issued.Code)
		require.NoError(t, err)
		require.True(t, inv.Used)
		require.NotNil(t, inv.UsedAt)
		require.Equal(t, "student-7", inv.StudentID)

		_, err = svc.Redeem(ctx, issued.Code)
		require.ErrorIs(t, err, service.ErrInviteAlreadyUsed)
	})

	t.Run("used outranks expired", func(t *testing.T) {
		// The token above is both used and, after advancing, expired; used
		// must still be the reported state.
		clock.Advance(domain.InviteTTL + time.Hour)
		_, err := svc.Redeem(ctx, issued.Code)
		require.ErrorIs(t, err, service.ErrInviteAlreadyUsed)
		clock.Advance(-(domain.InviteTTL + time.Hour))
	})

	t.Run("expired exactly at the boundary", func(t *testing.T) {
		fresh, err := svc.Issue(ctx, "admin-1", "tenant-a", "Acme Tutors", domain.RoleStudent, "")
		require.NoError(t, err)

		clock.Advance(domain.InviteTTL)
		_, err = svc.Redeem(ctx, fresh.Code)
		require.ErrorIs(t, err, service.ErrInviteExpired)

		// Inspect still works on the expired token.
		inv, err := svc.Inspect(ctx, fresh.Code)
		require.NoError(t, err)
		require.False(t, inv.Used)
	})
}

func TestInviteRedeemConcurrent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := service.NewInviteService(st, "https://app.acme-tutors.test")

	seedProfile(t, st, "admin-1", "tenant-a", domain.RoleAdmin)

	issued, err := svc.Issue(ctx, "admin-1", "tenant-a", "Acme Tutors", domain.RoleTeacher, "")
	require.NoError(t, err)

	const racers = 8

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Redeem(ctx, issued.Code); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins, "exactly one racer may redeem the token")

	inv, err := st.Invites().GetInvite(ctx, issued.Code)
	require.NoError(t, err)
	require.True(t, inv.Used)
}

func TestInviteHousekeepingNeverAffectsCorrectness(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}

	svc := service.NewInviteService(st, "https://app.acme-tutors.test")
	svc.Now = clock.Now

	seedProfile(t, st, "admin-1", "tenant-a", domain.RoleAdmin)

	issued, err := svc.Issue(ctx, "admin-1", "tenant-a", "Acme Tutors", domain.RoleTeacher, "")
	require.NoError(t, err)

	clock.Advance(domain.InviteTTL + time.Minute)
	require.NoError(t, st.Invites().DeleteExpiredInvites(ctx, clock.Now()))

	// A swept token is indistinguishable from one that never existed.
	_, err = svc.Redeem(ctx, issued.Code)
	require.ErrorIs(t, err, service.ErrInviteNotFound)
	_, err = st.Invites().GetInvite(ctx, issued.Code)
	require.ErrorIs(t, err, store.ErrNotFound)
}
