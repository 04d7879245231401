package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/peakprep/platform/internal/platform/domain"
	"github.com/peakprep/platform/internal/platform/service"
	"github.com/peakprep/platform/internal/platform/store"
	"github.com/peakprep/platform/pkg/httpx"
	"github.com/peakprep/platform/pkg/platformsdk"
	"github.com/peakprep/platform/pkg/slogx"
)

type UsersHandler struct {
	ProvisionService *service.ProvisionService
}

// HandleCreate godoc
//
//	@Summary		Create User Endpoint
//	@Description	Provision a new tenant user directly, without an invite. Admin-only.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			tenantID	path		string							true	"Tenant id"
//	@Param			request		body		platformsdk.CreateUserRequest	true	"New user details"
//	@Success		201			{object}	platformsdk.CreateUserResponse	"profile_id"
//	@Failure		400			{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		403			{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Failure		409			{object}	platformsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tenants/{tenantID}/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req platformsdk.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	id, err := h.ProvisionService.CreateUser(ctx,
		httpx.IdentityIDFromContext(ctx),
		r.PathValue("tenantID"),
		service.CreateUserInput{
			Email:           req.Email,
			Password:        req.Password,
			FullName:        req.FullName,
			Role:            domain.Role(req.Role),
			LinkedStudentID: req.LinkedStudentID,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserInput):
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid user details")
		case errors.Is(err, service.ErrUnauthorized):
			writeError(w, http.StatusForbidden, "forbidden", "Not permitted for this tenant")
		case errors.Is(err, service.ErrEmailExists):
			writeError(w, http.StatusConflict, "email_exists", "An account with this email already exists")
		case errors.Is(err, service.ErrStudentNotFound):
			writeError(w, http.StatusConflict, "student_not_found", "Linked student record not found")
		default:
			log.Error("failed to create user", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to create user")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, platformsdk.CreateUserResponse{ProfileID: id})
}

// HandleList godoc
//
//	@Summary		List Tenant Users Endpoint
//	@Description	List every user record of the tenant. Admin and executive only.
//	@Tags			Users
//	@Produce		json
//	@Param			tenantID	path		string						true	"Tenant id"
//	@Success		200			{object}	platformsdk.TenantUserList	"users"
//	@Failure		403			{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tenants/{tenantID}/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.ProvisionService.ListTenantUsers(ctx,
		httpx.IdentityIDFromContext(ctx),
		r.PathValue("tenantID"),
	)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			writeError(w, http.StatusForbidden, "forbidden", "Not permitted for this tenant")
			return
		}
		log.Error("failed to list tenant users", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list users")
		return
	}

	out := platformsdk.TenantUserList{Users: make([]platformsdk.TenantUser, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, platformsdk.TenantUser{
			ProfileID: u.ProfileID,
			Email:     u.Email,
			FullName:  u.FullName,
			Roles:     u.Roles.String(),
			Status:    string(u.Status),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdateRoles godoc
//
//	@Summary		Update User Roles Endpoint
//	@Description	Replace a user's role set. Admin-only; super is never grantable.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			tenantID	path	string							true	"Tenant id"
//	@Param			profileID	path	string							true	"Profile id"
//	@Param			request		body	platformsdk.UpdateRolesRequest	true	"New role set"
//	@Success		204			"no content"
//	@Failure		400			{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	platformsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/tenants/{tenantID}/users/{profileID}/roles [patch].
func (h *UsersHandler) HandleUpdateRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req platformsdk.UpdateRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	// Roles arrive as strings; normalization to the known set happens here,
	// at the boundary, so the service sees only domain values.
	roles := domain.ParseRoleSet(strings.Join(req.Roles, " "))

	err := h.ProvisionService.UpdateRoles(ctx,
		httpx.IdentityIDFromContext(ctx),
		r.PathValue("tenantID"),
		r.PathValue("profileID"),
		roles,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserInput):
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid role set")
		case errors.Is(err, service.ErrUnauthorized):
			writeError(w, http.StatusForbidden, "forbidden", "Not permitted for this tenant")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "No such user")
		default:
			log.Error("failed to update roles", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to update roles")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
