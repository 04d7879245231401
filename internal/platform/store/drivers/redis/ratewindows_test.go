package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/store"
)

func newTestRateWindows(t *testing.T) (*RateWindows, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateWindows(client), mr
}

func TestRateWindowsRoundTrip(t *testing.T) {
	ctx := context.Background()
	rw, _ := newTestRateWindows(t)

	resetAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, rw.PutRateWindow(ctx, "1_2_3_4", domain.RateWindow{Count: 3, ResetAt: resetAt}))

	got, err := rw.GetRateWindow(ctx, "1_2_3_4")
	require.NoError(t, err)
	require.Equal(t, 3, got.Count)
	require.True(t, got.ResetAt.Equal(resetAt))
}

func TestRateWindowsMissingKey(t *testing.T) {
	ctx := context.Background()
	rw, _ := newTestRateWindows(t)

	_, err := rw.GetRateWindow(ctx, "absent")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRateWindowsExpiry(t *testing.T) {
	ctx := context.Background()
	rw, mr := newTestRateWindows(t)

	resetAt := time.Now().Add(30 * time.Minute)
	require.NoError(t, rw.PutRateWindow(ctx, "expiring", domain.RateWindow{Count: 1, ResetAt: resetAt}))

	// The record outlives the window by a grace minute, then expires.
	// Fast-forward to just inside the grace period first; the stored TTL is
	// fractionally under window+1m by the time the Put runs.
	mr.FastForward(30 * time.Minute)
	_, err := rw.GetRateWindow(ctx, "expiring")
	require.NoError(t, err)

	mr.FastForward(3 * time.Minute)
	_, err = rw.GetRateWindow(ctx, "expiring")
	require.ErrorIs(t, err, store.ErrNotFound)
}
