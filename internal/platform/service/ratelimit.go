package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/pkg/slogx"
)

// RatePolicy is a fixed-window budget. Policies are configuration, set per
// call site, never hard-coded at the point of use.
type RatePolicy struct {
	MaxRequests int
	Window      time.Duration
}

// RateLimitService enforces fixed-window counting over a persisted counter
// store, so limits survive restarts and apply across horizontally scaled
// processes.
//
// The read-modify-write on a counter is deliberately not serialized: two
// concurrent calls for one key can both observe count < max and both pass,
// overshooting the budget by a small bounded margin under contention. That
// soft limit is accepted; the counters bound cost, they are not a security
// boundary.
type RateLimitService struct {
	Windows store.RateWindows
	Policy  RatePolicy

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewRateLimitService(windows store.RateWindows, policy RatePolicy) *RateLimitService {
	return &RateLimitService{Windows: windows, Policy: policy, Now: time.Now}
}

// Allow records one request for key and reports whether it fits the current
// window.
//
// If the counter store is unreachable the limiter fails open: availability
// of the guarded feature outranks strict enforcement. Degraded mode is
// logged so the outage is visible. An empty key is a caller bug; it also
// passes, with a warning, rather than silently bucketing every broken
// caller together.
func (s *RateLimitService) Allow(ctx context.Context, key string) bool {
	log := slogx.FromContext(ctx)

	if key == "" {
		log.Warn("rate limiter called with empty key, allowing")
		return true
	}

	now := s.Now().UTC()

	w, err := s.Windows.GetRateWindow(ctx, key)
	found := true
	switch {
	case errors.Is(err, store.ErrNotFound):
		found = false
	case err != nil:
		log.Warn("rate counter store unreachable, failing open",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return true
	}

	// A window whose reset has passed is logically reset before counting.
	if !found || w.Expired(now) {
		fresh := domain.RateWindow{Count: 1, ResetAt: now.Add(s.Policy.Window)}
		if err := s.Windows.PutRateWindow(ctx, key, fresh); err != nil {
			log.Warn("failed to open rate window, failing open",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
		return true
	}

	if w.Count >= s.Policy.MaxRequests {
		log.Warn("rate limit exceeded",
			slog.String("key", key),
			slog.Int("count", w.Count),
			slog.Time("reset_at", w.ResetAt),
		)
		return false
	}

	w.Count++
	if err := s.Windows.PutRateWindow(ctx, key, w); err != nil {
		log.Warn("failed to advance rate window, failing open",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
	return true
}

// RetryAt reports when the key's current window closes, for Retry-After
// headers. Zero time when the key has no open window.
func (s *RateLimitService) RetryAt(ctx context.Context, key string) time.Time {
	w, err := s.Windows.GetRateWindow(ctx, key)
	if err != nil {
		return time.Time{}
	}
	return w.ResetAt
}
