package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/service"
	"github.com/peakprep/platform/pkg/httpx"
	"github.com/peakprep/platform/pkg/platformsdk"
	"github.com/peakprep/platform/pkg/slogx"
)

type InviteIssueHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Issue Invite Endpoint
//	@Description	Mint a single-use invite token admitting one new user into the tenant with a fixed role. Admin-only.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			tenantID	path		string							true	"Tenant id"
//	@Param			request		body		platformsdk.IssueInviteRequest	true	"Invite parameters"
//	@Success		201			{object}	platformsdk.IssueInviteResponse	"code, url, expires_at"
//	@Failure		400			{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		403			{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tenants/{tenantID}/invites [post].
func (h *InviteIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req platformsdk.IssueInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.Role == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "role is required")
		return
	}

	issued, err := h.InviteService.Issue(
		ctx,
		httpx.IdentityIDFromContext(ctx),
		r.PathValue("tenantID"),
		req.TenantName,
		domain.Role(req.Role),
		req.StudentID,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInviteRole):
			writeError(w, http.StatusBadRequest, "invalid_request", "Role cannot be granted through invites")
		case errors.Is(err, service.ErrUnauthorized):
			writeError(w, http.StatusForbidden, "forbidden", "Not permitted for this tenant")
		default:
			log.Error("failed to issue invite", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to issue invite")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, platformsdk.IssueInviteResponse{
		Code:      issued.Code,
		URL:       issued.URL,
		ExpiresAt: issued.ExpiresAt,
	})
}
