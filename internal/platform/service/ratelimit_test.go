package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/service"
)

func TestRateLimitFixedWindow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}

	svc := service.NewRateLimitService(st.RateWindows(), service.RatePolicy{
		MaxRequests: 5,
		Window:      time.Minute,
	})
	svc.Now = clock.Now

	const key = "1_2_3_4"

	t.Run("budget is honored exactly", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			require.True(t, svc.Allow(ctx, key), "request %d should fit the window", i+1)
		}
		require.False(t, svc.Allow(ctx, key), "sixth request must be rejected")
		require.False(t, svc.Allow(ctx, key))
	})

	t.Run("retry hint points at the window close", func(t *testing.T) {
		resetAt := svc.RetryAt(ctx, key)
		require.True(t, resetAt.Equal(clock.Now().Add(time.Minute)))
	})

	t.Run("window reset restores the full budget", func(t *testing.T) {
		clock.Advance(time.Minute)
		for i := 0; i < 5; i++ {
			require.True(t, svc.Allow(ctx, key))
		}
		require.False(t, svc.Allow(ctx, key))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.True(t, svc.Allow(ctx, "5_6_7_8"))
	})

	t.Run("empty key passes", func(t *testing.T) {
		require.True(t, svc.Allow(ctx, ""))
	})
}

func TestRateLimitHourWindow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}

	svc := service.NewRateLimitService(st.RateWindows(), service.RatePolicy{
		MaxRequests: 10,
		Window:      time.Hour,
	})
	svc.Now = clock.Now

	for i := 0; i < 10; i++ {
		require.True(t, svc.Allow(ctx, "1_2_3_4"))
		clock.Advance(time.Minute)
	}
	// 10 minutes in, the window opened at minute 0 is still live.
	require.False(t, svc.Allow(ctx, "1_2_3_4"))

	clock.Advance(50 * time.Minute)
	require.True(t, svc.Allow(ctx, "1_2_3_4"))
}

// brokenWindows simulates an unreachable counter store.
type brokenWindows struct{}

func (brokenWindows) GetRateWindow(context.Context, string) (domain.RateWindow, error) {
	return domain.RateWindow{}, errors.New("connection refused")
}

func (brokenWindows) PutRateWindow(context.Context, string, domain.RateWindow) error {
	return errors.New("connection refused")
}

func (brokenWindows) DeleteClosedRateWindows(context.Context, time.Time) error {
	return errors.New("connection refused")
}

func TestRateLimitFailsOpen(t *testing.T) {
	ctx := context.Background()

	svc := service.NewRateLimitService(brokenWindows{}, service.RatePolicy{
		MaxRequests: 1,
		Window:      time.Minute,
	})

	// Every request passes when the store is down, even past the budget.
	for i := 0; i < 10; i++ {
		require.True(t, svc.Allow(ctx, "1_2_3_4"))
	}
	require.True(t, svc.RetryAt(ctx, "1_2_3_4").IsZero())
}
