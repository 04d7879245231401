package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/pkg/slogx"
)

// Housekeeper periodically sweeps records that expire by time: spent or
// expired invites and closed rate windows. Sweeping is hygiene only; both
// records are validated at read time, so a missed sweep never changes
// behavior.
type Housekeeper struct {
	Store    store.Store
	Interval time.Duration

	stop chan struct{}
	done chan struct{}
}

func NewHousekeeper(st store.Store, interval time.Duration) *Housekeeper {
	return &Housekeeper{
		Store:    st,
		Interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. One sweep runs immediately so a long
// interval doesn't delay cleanup after a restart.
func (h *Housekeeper) Start(ctx context.Context) {
	go func() {
		defer close(h.done)

		h.sweep(ctx)

		ticker := time.NewTicker(h.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				h.sweep(ctx)
			case <-h.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the loop and waits for any in-flight sweep to finish.
func (h *Housekeeper) Stop() {
	close(h.stop)
	<-h.done
}

func (h *Housekeeper) sweep(ctx context.Context) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	if err := h.Store.Invites().DeleteExpiredInvites(ctx, now); err != nil {
		log.Warn("invite sweep failed", slog.Any("error", err))
	}
	if err := h.Store.RateWindows().DeleteClosedRateWindows(ctx, now); err != nil {
		log.Warn("rate window sweep failed", slog.Any("error", err))
	}
}
