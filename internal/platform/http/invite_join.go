package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/peakprep/platform/internal/platform/service"
	"github.com/peakprep/platform/pkg/httpx"
	"github.com/peakprep/platform/pkg/jwtx"
	"github.com/peakprep/platform/pkg/platformsdk"
	"github.com/peakprep/platform/pkg/slogx"
)

// JoinHandler backs the public join page: GET shows what an invite offers,
// POST consumes it and provisions the account in one round trip.
type JoinHandler struct {
	InviteService    *service.InviteService
	ProvisionService *service.ProvisionService
	Signer           *jwtx.Signer
	TokenTTL         int64
}

// HandleInspect godoc
//
//	@Summary		Inspect Invite Endpoint
//	@Description	Read-only view of a pending invite so the join page can show tenant and role before signup. Never consumes the token.
//	@Tags			Invites
//	@Produce		json
//	@Param			code	path		string						true	"Invite code"
//	@Success		200		{object}	platformsdk.InviteDetails	"tenant_id, tenant_name, role, expires_at"
//	@Failure		404		{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/join/{code} [get].
func (h *JoinHandler) HandleInspect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inv, err := h.InviteService.Inspect(ctx, r.PathValue("code"))
	if errors.Is(err, service.ErrInviteNotFound) {
		writeError(w, http.StatusNotFound, "invite_not_found", "This invite does not exist")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to look up invite")
		return
	}

	// Used outranks expired in what the page reports.
	if inv.Used {
		writeError(w, http.StatusGone, "invite_used", "This invite has already been used")
		return
	}
	if !inv.Redeemable(time.Now().UTC()) {
		writeError(w, http.StatusGone, "invite_expired", "This invite has expired")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.InviteDetails{
		TenantID:   inv.TenantID,
		TenantName: inv.TenantName,
		Role:       string(inv.Role),
		StudentID:  inv.StudentID,
		ExpiresAt:  inv.ExpiresAt,
	})
}

// HandleRedeem godoc
//
//	@Summary		Redeem Invite Endpoint
//	@Description	Consume an invite and provision the new account. The token is marked used before the account is created, so a crash mid-way burns the token rather than ever minting two accounts from it.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string								true	"Invite code"
//	@Param			request	body		platformsdk.RedeemInviteRequest		true	"New account details"
//	@Success		201		{object}	platformsdk.RedeemInviteResponse	"profile_id, tenant_id, access_token"
//	@Failure		400		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Failure		410		{object}	platformsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/join/{code} [post].
func (h *JoinHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req platformsdk.RedeemInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	inv, err := h.InviteService.Redeem(ctx, r.PathValue("code"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound):
			writeError(w, http.StatusNotFound, "invite_not_found", "This invite does not exist")
		case errors.Is(err, service.ErrInviteAlreadyUsed):
			writeError(w, http.StatusConflict, "invite_used", "This invite has already been used")
		case errors.Is(err, service.ErrInviteExpired):
			writeError(w, http.StatusGone, "invite_expired", "This invite has expired")
		default:
			log.Error("failed to redeem invite", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to redeem invite")
		}
		return
	}

	profileID, err := h.ProvisionService.CreateUserFromInvite(ctx, inv, req.Email, req.Password, req.FullName)
	if err != nil {
		// The token is already burned at this point. Provisioning is
		// idempotent, so support can rerun it for this identity; surface
		// enough to make that call.
		switch {
		case errors.Is(err, service.ErrInvalidUserInput):
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid account details")
		case errors.Is(err, service.ErrEmailExists):
			writeError(w, http.StatusConflict, "email_exists", "An account with this email already exists")
		case errors.Is(err, service.ErrStudentNotFound):
			writeError(w, http.StatusConflict, "student_not_found", "The linked student record no longer exists")
		default:
			log.Error("provisioning failed after invite was consumed",
				"tenant_id", inv.TenantID, "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Account setup failed, contact support")
		}
		return
	}

	token, err := h.Signer.Mint(profileID)
	if err != nil {
		log.Error("failed to mint token for new account", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Account created, please log in")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, platformsdk.RedeemInviteResponse{
		ProfileID:   profileID,
		TenantID:    inv.TenantID,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   h.TokenTTL,
	})
}
