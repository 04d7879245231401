package domain

import "time"

// RateWindow counts requests for one caller key inside the current fixed
// window. A reader that finds now past ResetAt treats the counter as reset
// before incrementing; at most one window is live per key.
type RateWindow struct {
	Count   int
	ResetAt time.Time
}

// Expired reports whether the window has closed at the given instant. The
// window is half-open: ResetAt itself already belongs to the next window,
// matching how invite expiry treats its boundary.
func (w RateWindow) Expired(now time.Time) bool {
	return !now.Before(w.ResetAt)
}
