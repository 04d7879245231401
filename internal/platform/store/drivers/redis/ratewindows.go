// Package redis provides a RateWindows implementation backed by a shared
// redis instance, for deployments where the platform runs more than one
// process and the sqlite file is not a shared counter store.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/store"
)

const keyPrefix = "ratewindow:"

type RateWindows struct {
	client *redis.Client
}

func NewRateWindows(client *redis.Client) *RateWindows {
	return &RateWindows{client: client}
}

type windowRecord struct {
	Count   int       `json:"count"`
	ResetAt time.Time `json:"reset_at"`
}

func (r *RateWindows) GetRateWindow(ctx context.Context, key string) (domain.RateWindow, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return domain.RateWindow{}, store.ErrNotFound
	}
	if err != nil {
		return domain.RateWindow{}, fmt.Errorf("rate window get %s: %w", key, err)
	}

	var rec windowRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return domain.RateWindow{}, fmt.Errorf("rate window decode %s: %w", key, err)
	}
	return domain.RateWindow{Count: rec.Count, ResetAt: rec.ResetAt}, nil
}

func (r *RateWindows) PutRateWindow(ctx context.Context, key string, w domain.RateWindow) error {
	data, err := json.Marshal(windowRecord{Count: w.Count, ResetAt: w.ResetAt})
	if err != nil {
		return fmt.Errorf("rate window encode %s: %w", key, err)
	}

	// Expire the record shortly after the window closes; redis then garbage
	// collects counters without a housekeeping pass.
	ttl := time.Until(w.ResetAt) + time.Minute
	if ttl < time.Minute {
		ttl = time.Minute
	}
	return r.client.Set(ctx, keyPrefix+key, data, ttl).Err()
}

// DeleteClosedRateWindows is a no-op: expiry handles cleanup.
func (r *RateWindows) DeleteClosedRateWindows(ctx context.Context, before time.Time) error {
	return nil
}
