package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/service"
	"github.com/peakprep/platform/internal/platform/store/drivers/sqlite"
	"github.com/peakprep/platform/pkg/jwtx"
)

func newGuardFixture(t *testing.T) (*Guard, *jwtx.Signer, *sqlite.Store) {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "guard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewEphemeralSigner("https://platform.test", time.Hour)
	require.NoError(t, err)

	g := &Guard{
		Verifier: signer.Verifier(),
		Profiles: st.Profiles(),
		AILimit: service.NewRateLimitService(st.RateWindows(), service.RatePolicy{
			MaxRequests: 2,
			Window:      time.Hour,
		}),
	}
	return g, signer, st
}

func seedGuardProfile(t *testing.T, st *sqlite.Store, id, tenantID string, roles ...domain.Role) {
	t.Helper()

	now := time.Now().UTC()
	require.NoError(t, st.Profiles().CreateProfile(context.Background(), domain.Profile{
		ID:        id,
		Email:     id + "@platform.test",
		FullName:  "Guard " + id,
		Roles:     roles,
		TenantID:  tenantID,
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

// spyHandler records whether the request made it past the guard.
type spyHandler struct{ called bool }

func (s *spyHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	s.called = true
	w.WriteHeader(http.StatusOK)
}

func guardedRequest(t *testing.T, g *Guard, pattern, method, path, token string) (*httptest.ResponseRecorder, *spyHandler) {
	t.Helper()

	spy := &spyHandler{}
	mux := http.NewServeMux()
	mux.Handle(pattern, g.Protect(pattern)(spy))

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec, spy
}

func TestGuardAuthentication(t *testing.T) {
	g, signer, st := newGuardFixture(t)
	seedGuardProfile(t, st, "admin-1", "tenant-a", domain.RoleAdmin)

	const pattern = "POST /v1/tenants/{tenantID}/invites"

	t.Run("missing token", func(t *testing.T) {
		rec, spy := guardedRequest(t, g, pattern, http.MethodPost, "/v1/tenants/tenant-a/invites", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, spy.called, "handler must not run on a denied request")
	})

	t.Run("garbage token", func(t *testing.T) {
		rec, spy := guardedRequest(t, g, pattern, http.MethodPost, "/v1/tenants/tenant-a/invites", "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, spy.called)
	})

	t.Run("valid token passes", func(t *testing.T) {
		token, err := signer.Mint("admin-1")
		require.NoError(t, err)
		rec, spy := guardedRequest(t, g, pattern, http.MethodPost, "/v1/tenants/tenant-a/invites", token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, spy.called)
	})
}

func TestGuardAuthorization(t *testing.T) {
	g, signer, st := newGuardFixture(t)
	seedGuardProfile(t, st, "teacher-1", "tenant-a", domain.RoleTeacher)
	seedGuardProfile(t, st, "admin-b", "tenant-b", domain.RoleAdmin)
	seedGuardProfile(t, st, "root-1", "", domain.RoleSuper)

	const pattern = "POST /v1/tenants/{tenantID}/invites"

	t.Run("role below requirement", func(t *testing.T) {
		token, err := signer.Mint("teacher-1")
		require.NoError(t, err)
		rec, spy := guardedRequest(t, g, pattern, http.MethodPost, "/v1/tenants/tenant-a/invites", token)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.False(t, spy.called)
	})

	t.Run("right role, wrong tenant", func(t *testing.T) {
		token, err := signer.Mint("admin-b")
		require.NoError(t, err)
		rec, spy := guardedRequest(t, g, pattern, http.MethodPost, "/v1/tenants/tenant-a/invites", token)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.False(t, spy.called)
	})

	t.Run("token for an identity with no profile", func(t *testing.T) {
		token, err := signer.Mint("ghost")
		require.NoError(t, err)
		rec, spy := guardedRequest(t, g, pattern, http.MethodPost, "/v1/tenants/tenant-a/invites", token)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.False(t, spy.called)
	})

	t.Run("super bypasses the tenant check", func(t *testing.T) {
		token, err := signer.Mint("root-1")
		require.NoError(t, err)
		rec, spy := guardedRequest(t, g, pattern, http.MethodPost, "/v1/tenants/tenant-a/invites", token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, spy.called)
	})
}

func TestGuardUnmappedRouteFailsClosed(t *testing.T) {
	g, signer, st := newGuardFixture(t)
	seedGuardProfile(t, st, "admin-1", "tenant-a", domain.RoleAdmin)
	seedGuardProfile(t, st, "root-1", "", domain.RoleSuper)

	// Deliberately not present in guardTable.
	const pattern = "GET /v1/tenants/{tenantID}/secrets"

	t.Run("admin is denied", func(t *testing.T) {
		token, err := signer.Mint("admin-1")
		require.NoError(t, err)
		rec, spy := guardedRequest(t, g, pattern, http.MethodGet, "/v1/tenants/tenant-a/secrets", token)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.False(t, spy.called)
	})

	t.Run("super still gets through", func(t *testing.T) {
		token, err := signer.Mint("root-1")
		require.NoError(t, err)
		rec, _ := guardedRequest(t, g, pattern, http.MethodGet, "/v1/tenants/tenant-a/secrets", token)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGuardAIBudget(t *testing.T) {
	g, signer, st := newGuardFixture(t)
	seedGuardProfile(t, st, "teacher-1", "tenant-a", domain.RoleTeacher)
	seedGuardProfile(t, st, "teacher-2", "tenant-a", domain.RoleTeacher)

	const pattern = "POST /v1/tenants/{tenantID}/lesson-plans"
	const path = "/v1/tenants/tenant-a/lesson-plans"

	token, err := signer.Mint("teacher-1")
	require.NoError(t, err)

	// Fixture budget is 2 per hour.
	for i := 0; i < 2; i++ {
		rec, _ := guardedRequest(t, g, pattern, http.MethodPost, path, token)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, spy := guardedRequest(t, g, pattern, http.MethodPost, path, token)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.False(t, spy.called)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	t.Run("budget is per identity", func(t *testing.T) {
		other, err := signer.Mint("teacher-2")
		require.NoError(t, err)
		rec, _ := guardedRequest(t, g, pattern, http.MethodPost, path, other)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

// The budget check precedes role evaluation: a caller denied on role still
// burns budget and eventually sees 429, not an endless stream of 403s.
func TestGuardAIBudgetChargedBeforeRoleCheck(t *testing.T) {
	g, signer, st := newGuardFixture(t)
	seedGuardProfile(t, st, "parent-1", "tenant-a", domain.RoleParent)

	const pattern = "POST /v1/tenants/{tenantID}/lesson-plans"
	const path = "/v1/tenants/tenant-a/lesson-plans"

	token, err := signer.Mint("parent-1")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		rec, spy := guardedRequest(t, g, pattern, http.MethodPost, path, token)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.False(t, spy.called)
	}

	rec, spy := guardedRequest(t, g, pattern, http.MethodPost, path, token)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.False(t, spy.called)
}
