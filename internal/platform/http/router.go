package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/peakprep/platform/internal/platform/ai"
	"github.com/peakprep/platform/internal/platform/identity"
	"github.com/peakprep/platform/internal/platform/service"
	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/pkg/httpx"
	"github.com/peakprep/platform/pkg/jwtx"
	"github.com/peakprep/platform/pkg/slogx"

	_ "github.com/peakprep/platform/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	guard        *Guard
	tokenTTL     time.Duration
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	identity         identity.Provider
	completer        ai.Completer
	InviteService    *service.InviteService
	ProvisionService *service.ProvisionService
	LeadService      *service.LeadService
	AILimit          *service.RateLimitService
	LeadLimit        *service.RateLimitService
}

func NewRouter(
	signer *jwtx.Signer,
	tokenTTL time.Duration,
	buildVersion string,
	st store.Store,
	idp identity.Provider,
	completer ai.Completer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		tokenTTL:     tokenTTL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		identity:     idp,
		completer:    completer,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ApplyRoutes wires every route group. Call after the service fields are
// populated.
func (r *Router) ApplyRoutes() {
	r.guard = &Guard{
		Verifier: r.signer.Verifier(),
		Profiles: r.store.Profiles(),
		AILimit:  r.AILimit,
	}

	r.registerAuth()
	r.registerInvites()
	r.registerUsers()
	r.registerLessonPlans()
	r.registerLeads()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			PeakPrep Platform API
//	@version		0.1.0
//	@description	Multi-tenant tutoring platform core: tenant-scoped access control, invite-based onboarding, user provisioning, and budgeted AI tooling.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs minted at login; keys are per-process.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured registers pattern behind the role guard. The guard looks the
// pattern up in guardTable, so registration and requirement share one key.
func (r *Router) secured(pattern string, h http.Handler) {
	r.Mux.Handle(pattern, httpx.Chain(h, r.guard.Protect(pattern)))
}

func (r *Router) registerAuth() {
	h := &LoginHandler{
		Identity: r.identity,
		Signer:   r.signer,
		TokenTTL: int64(r.tokenTTL.Seconds()),
	}

	// Credential guessing is the threat here, hence the strict per-IP cap.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(h, httpx.ThrottleByIP(httpx.StrictThrottle)),
	)
}

func (r *Router) registerInvites() {
	r.secured("POST /v1/tenants/{tenantID}/invites", &InviteIssueHandler{InviteService: r.InviteService})

	join := &JoinHandler{
		InviteService:    r.InviteService,
		ProvisionService: r.ProvisionService,
		Signer:           r.signer,
		TokenTTL:         int64(r.tokenTTL.Seconds()),
	}

	// Public signup surface: unauthenticated, per-IP limits only. Inspect
	// is lenient (page loads), redeem is strict (account creation).
	r.Mux.Handle("GET /v1/join/{code}",
		httpx.Chain(http.HandlerFunc(join.HandleInspect), httpx.ThrottleByIP(httpx.LenientThrottle)),
	)
	r.Mux.Handle("POST /v1/join/{code}",
		httpx.Chain(http.HandlerFunc(join.HandleRedeem), httpx.ThrottleByIP(httpx.StrictThrottle)),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{ProvisionService: r.ProvisionService}

	r.secured("POST /v1/tenants/{tenantID}/users", http.HandlerFunc(h.HandleCreate))
	r.secured("GET /v1/tenants/{tenantID}/users", http.HandlerFunc(h.HandleList))
	r.secured("PATCH /v1/tenants/{tenantID}/users/{profileID}/roles", http.HandlerFunc(h.HandleUpdateRoles))
}

func (r *Router) registerLessonPlans() {
	r.secured("POST /v1/tenants/{tenantID}/lesson-plans", &LessonPlanHandler{Completer: r.completer})
}

func (r *Router) registerLeads() {
	// Store-backed budget per address, not the in-process throttle: lead
	// spam caps must hold across restarts and replicas.
	r.Mux.Handle("POST /v1/leads",
		httpx.Chain(&LeadsHandler{LeadService: r.LeadService}, limitByRateKey(r.LeadLimit)),
	)
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /livez", r.HandleLivez)
	r.Mux.HandleFunc("GET /readyz", r.HandleReadyz)
}
