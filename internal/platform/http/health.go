package http

import (
	"net/http"
	"time"

	"github.com/peakprep/platform/pkg/httpx"
	"github.com/peakprep/platform/pkg/platformsdk"
)

// HandleLivez godoc
//
//	@Summary		Liveness Endpoint
//	@Description	Reports that the process is up. Never touches the store.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	platformsdk.HealthResponse	"status, version, uptime"
//	@Router			/livez [get].
func (r *Router) HandleLivez(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, platformsdk.HealthResponse{
		Status:  "ok",
		Version: r.buildVersion,
		Uptime:  time.Since(r.startTime).Truncate(time.Second).String(),
	})
}

// HandleReadyz godoc
//
//	@Summary		Readiness Endpoint
//	@Description	Reports whether the store is reachable and the service can take traffic.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	platformsdk.HealthResponse	"status"
//	@Failure		503	{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Router			/readyz [get].
func (r *Router) HandleReadyz(w http.ResponseWriter, req *http.Request) {
	if err := r.store.Ping(req.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_ready", "Store unreachable")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, platformsdk.HealthResponse{Status: "ok"})
}
