package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/peakprep/platform/internal/platform/service"
	"github.com/peakprep/platform/pkg/httpx"
	"github.com/peakprep/platform/pkg/platformsdk"
	"github.com/peakprep/platform/pkg/slogx"
)

type LeadsHandler struct {
	LeadService *service.LeadService
}

// ServeHTTP godoc
//
//	@Summary		Submit Lead Endpoint
//	@Description	Record a marketing enquiry from the public site. Unauthenticated; rate limited per IP.
//	@Tags			Leads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.LeadRequest		true	"Enquiry details"
//	@Success		201		{object}	platformsdk.LeadResponse	"lead_id"
//	@Failure		400		{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/leads [post].
func (h *LeadsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req platformsdk.LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	id, err := h.LeadService.Submit(ctx, service.LeadInput{
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		SourcePage: req.SourcePage,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidLead) {
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid enquiry details")
			return
		}
		log.Error("failed to store lead", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to record enquiry")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, platformsdk.LeadResponse{LeadID: id})
}
