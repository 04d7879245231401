package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/peakprep/platform/internal/platform/ai"
	"github.com/peakprep/platform/pkg/httpx"
	"github.com/peakprep/platform/pkg/platformsdk"
	"github.com/peakprep/platform/pkg/slogx"
)

type LessonPlanHandler struct {
	Completer ai.Completer
}

// ServeHTTP godoc
//
//	@Summary		Generate Lesson Plan Endpoint
//	@Description	Generate a lesson plan draft for a subject and topic. Budgeted per user; staff roles only.
//	@Tags			AI
//	@Accept			json
//	@Produce		json
//	@Param			tenantID	path		string							true	"Tenant id"
//	@Param			request		body		platformsdk.LessonPlanRequest	true	"Lesson parameters"
//	@Success		200			{object}	platformsdk.LessonPlanResponse	"plan"
//	@Failure		400			{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		429			{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tenants/{tenantID}/lesson-plans [post].
func (h *LessonPlanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req platformsdk.LessonPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.Subject == "" || req.Topic == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "subject and topic are required")
		return
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = 60
	}

	prompt := fmt.Sprintf(
		"Write a %d minute lesson plan for %s (grade %s) covering: %s",
		req.DurationMinutes, req.Subject, req.GradeLevel, req.Topic,
	)
	plan, err := h.Completer.Complete(ctx, prompt)
	if err != nil {
		log.Error("lesson plan generation failed", "err", err)
		writeError(w, http.StatusBadGateway, "upstream_error", "Lesson plan generation failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.LessonPlanResponse{Plan: plan})
}
