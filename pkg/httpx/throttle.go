package httpx

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/peakprep/platform/pkg/slogx"
)

// ThrottleConfig defines an in-process, per-key token-bucket throttle. This
// guards unauthenticated surfaces (login, join pages) against bursts from a
// single address; quota enforcement for costly actions is the store-backed
// limiter's job, not this one's.
type ThrottleConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

var (
	// StrictThrottle for credential and redemption endpoints.
	StrictThrottle = ThrottleConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// LenientThrottle for public read-only endpoints.
	LenientThrottle = ThrottleConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}
)

// KeyFunc extracts the throttling key from a request.
type KeyFunc func(*http.Request) string

type throttler struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastSweep   time.Time
	sweepPeriod time.Duration
}

func (t *throttler) limiter(key string) *rate.Limiter {
	if l, ok := t.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}
	l, _ := t.limiters.LoadOrStore(key, rate.NewLimiter(t.rate, t.burst))
	t.maybeSweep()
	return l.(*rate.Limiter)
}

// maybeSweep drops idle limiters so ephemeral keys don't accumulate forever.
// A limiter with a full bucket has not been used for at least one window.
func (t *throttler) maybeSweep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if time.Since(t.lastSweep) < t.sweepPeriod {
		return
	}
	t.lastSweep = time.Now()

	t.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(t.burst) {
			t.limiters.Delete(key)
		}
		return true
	})
}

// Throttle builds a middleware enforcing cfg per key. Requests with an
// unextractable key pass through with a warning rather than being dropped.
func Throttle(cfg ThrottleConfig, keyFn KeyFunc) Middleware {
	t := &throttler{
		rate:        rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:       cfg.Burst,
		lastSweep:   time.Now(),
		sweepPeriod: 5 * time.Minute,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyFn(r)
			if key == "" {
				log.Warn("throttle: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			limiter := t.limiter(key)
			if !limiter.Allow() {
				res := limiter.Reserve()
				delay := res.Delay()
				res.Cancel()

				retryAfter := int(delay.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				log.Warn("throttle exceeded", "key", key, "endpoint", r.URL.Path)
				WriteJSON(w, http.StatusTooManyRequests, ErrorResponse{
					Error:            "rate_limit_exceeded",
					ErrorDescription: "Too many requests. Please try again later.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ThrottleByIP throttles by the client network address.
func ThrottleByIP(cfg ThrottleConfig) Middleware {
	return Throttle(cfg, RateKey)
}
