package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/peakprep/platform/internal/platform/identity"
	"github.com/peakprep/platform/pkg/httpx"
	"github.com/peakprep/platform/pkg/jwtx"
	"github.com/peakprep/platform/pkg/platformsdk"
	"github.com/peakprep/platform/pkg/slogx"
)

type LoginHandler struct {
	Identity identity.Provider
	Signer   *jwtx.Signer
	TokenTTL int64 // seconds, echoed in expires_in
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password, receiving a bearer access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	platformsdk.LoginResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req platformsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	id, err := h.Identity.Authenticate(ctx, req.Email, req.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "Email or password is incorrect")
		return
	}
	if err != nil {
		log.Error("authentication failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to authenticate")
		return
	}

	token, err := h.Signer.Mint(id)
	if err != nil {
		log.Error("failed to mint access token", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to issue token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   h.TokenTTL,
	})
}
