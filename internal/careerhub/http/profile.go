package http

import (
	"net/http"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/pkg/httpx"
	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
)

// ProfileHandler serves the caller's own account.
type ProfileHandler struct {
	UserService *service.UserService
}

// HandleGet handles GET /api/user/profile
//
//	@Summary	Get own profile
//	@Tags		Profile
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	hubsdk.UserResponse
//	@Failure	401	{object}	hubsdk.ErrorResponse	"Invalid or missing token"
//	@Failure	403	{object}	hubsdk.ErrorResponse	"Account inactive"
//	@Router		/api/user/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)
	body, err := toUserResponse(currentUser(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, body)
}

// HandleUpdate handles PATCH /api/user/update-profile
//
//	@Summary		Update own profile
//	@Description	Only the supplied fields change. An empty phoneNumber removes the number on file.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	hubsdk.UserResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"Validation failed"
//	@Failure		409		{object}	hubsdk.ErrorResponse	"Email already in use"
//	@Router			/api/user/update-profile [patch].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	var req hubsdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	updated, err := h.UserService.UpdateProfile(r.Context(), u.ID, profileUpdate(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	body, err := toUserResponse(updated)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, body)
}

// HandleChangePassword handles PATCH /api/user/change-password
//
//	@Summary	Change own password
//	@Tags		Profile
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		hubsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success	200		{object}	hubsdk.MessageResponse
//	@Failure	400		{object}	hubsdk.ErrorResponse	"Validation failed"
//	@Failure	401		{object}	hubsdk.ErrorResponse	"Invalid current password"
//	@Router		/api/user/change-password [patch].
func (h *ProfileHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	var req hubsdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), u.ID, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hubsdk.MessageResponse{Message: "password changed successfully"})
}

// HandleResetPassword handles PATCH /api/user/reset-password
//
//	@Summary		Reset own password
//	@Description	Sets a new password without the current one. The caller is already authenticated.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.ResetPasswordRequest	true	"New password"
//	@Success		200		{object}	hubsdk.MessageResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"Validation failed"
//	@Router			/api/user/reset-password [patch].
func (h *ProfileHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	var req hubsdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	if err := h.UserService.ResetPassword(r.Context(), u.ID, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hubsdk.MessageResponse{Message: "password reset successfully"})
}

func profileUpdate(req hubsdk.UpdateProfileRequest) service.ProfileUpdate {
	upd := service.ProfileUpdate{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if req.TwoFactorMethod != nil {
		m := domain.TwoFactorMethod(*req.TwoFactorMethod)
		upd.TwoFactorMethod = &m
	}
	return upd
}
