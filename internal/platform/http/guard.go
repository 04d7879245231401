package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/service"
	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/pkg/httpx"
	"github.com/peakprep/platform/pkg/jwtx"
	"github.com/peakprep/platform/pkg/slogx"
)

// guardRule describes what one route demands: which roles may pass and
// whether the call burns AI budget.
type guardRule struct {
	roles  []domain.Role
	aiCost bool
}

// guardTable is the single declarative map from route pattern to
// requirement. Handlers never do their own role checks against the request;
// everything funnels through the guard so a route missing from this table
// fails closed instead of slipping through unprotected.
var guardTable = map[string]guardRule{
	"POST /v1/tenants/{tenantID}/invites":                  {roles: []domain.Role{domain.RoleAdmin}},
	"POST /v1/tenants/{tenantID}/users":                    {roles: []domain.Role{domain.RoleAdmin}},
	"GET /v1/tenants/{tenantID}/users":                     {roles: []domain.Role{domain.RoleAdmin, domain.RoleExecutive}},
	"PATCH /v1/tenants/{tenantID}/users/{profileID}/roles": {roles: []domain.Role{domain.RoleAdmin}},
	"POST /v1/tenants/{tenantID}/lesson-plans":             {roles: []domain.Role{domain.RoleAdmin, domain.RoleExecutive, domain.RoleTeacher}, aiCost: true},
}

// Guard is the authn+authz middleware for tenant-scoped routes. It verifies
// the bearer token, resolves the caller's profile once per request, applies
// the AI budget limiter where the rule demands it, and evaluates the role
// requirement against the tenant id in the path.
type Guard struct {
	Verifier jwtx.Verifier
	Profiles store.Profiles
	AILimit  *service.RateLimitService
}

// Protect wraps a handler registered under pattern. A pattern absent from
// guardTable denies everyone but super.
func (g *Guard) Protect(pattern string) httpx.Middleware {
	rule, mapped := guardTable[pattern]

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}
			claims, err := g.Verifier.Verify(raw)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			identityID := claims.Subject
			ctx = httpx.WithIdentityID(ctx, identityID)

			profile, err := g.Profiles.GetProfile(ctx, identityID)
			profileRef := &profile
			switch {
			case errors.Is(err, store.ErrNotFound):
				profileRef = nil
			case err != nil:
				log.Error("failed to resolve caller profile", "err", err)
				writeError(w, http.StatusInternalServerError, "server_error", "Failed to resolve caller")
				return
			}

			// The budget check runs before role evaluation, so a caller
			// hammering a cost-bearing route burns budget even while denied.
			if rule.aiCost && g.AILimit != nil {
				// AI budget is per identity, not per IP; the prefix keeps the
				// key space disjoint from the edge limiter's.
				key := "ai:" + identityID
				if !g.AILimit.Allow(ctx, key) {
					retryAt := g.AILimit.RetryAt(ctx, key)
					if !retryAt.IsZero() {
						secs := int(time.Until(retryAt).Seconds()) + 1
						w.Header().Set("Retry-After", strconv.Itoa(secs))
					}
					writeError(w, http.StatusTooManyRequests, "rate_limited", "AI budget exhausted, try again later")
					return
				}
			}

			if !mapped {
				// Fail closed: an unmapped route is reachable by super only.
				log.Warn("request to route missing a guard rule", "pattern", pattern)
				if profileRef == nil || !profileRef.IsSuper() {
					writeError(w, http.StatusForbidden, "forbidden", "Not permitted")
					return
				}
			} else {
				tenantID := r.PathValue("tenantID")
				if tenantID == "" {
					writeError(w, http.StatusBadRequest, "invalid_request", "Missing tenant id")
					return
				}
				if !service.Authorize(profileRef, rule.roles, tenantID) {
					log.Warn("request denied by role guard",
						"identity_id", identityID,
						"tenant_id", tenantID,
						"pattern", pattern,
					)
					writeError(w, http.StatusForbidden, "forbidden", "Not permitted for this tenant")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// limitByRateKey applies a store-backed quota to an unauthenticated route,
// keyed by the caller's normalized network address. Unlike the in-process
// throttle this budget survives restarts and spans replicas.
func limitByRateKey(limiter *service.RateLimitService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := httpx.RateKey(r)
			if !limiter.Allow(ctx, key) {
				retryAt := limiter.RetryAt(ctx, key)
				if !retryAt.IsZero() {
					secs := int(time.Until(retryAt).Seconds()) + 1
					w.Header().Set("Retry-After", strconv.Itoa(secs))
				}
				writeError(w, http.StatusTooManyRequests, "rate_limited", "Too many submissions, try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return h[len(prefix):], true
}

func writeError(w http.ResponseWriter, code int, name, description string) {
	httpx.WriteJSON(w, code, httpx.ErrorResponse{
		Error:            name,
		ErrorDescription: description,
	})
}
