package http

import (
	"net/http"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/pkg/httpx"
	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
)

// UserManagementHandler lets admins manage accounts.
type UserManagementHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /api/user-management/users
//
//	@Summary	List users
//	@Tags		User Management
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		hubsdk.UserResponse
//	@Failure	403	{object}	hubsdk.ErrorResponse	"Admin access required"
//	@Router		/api/user-management/users [get].
func (h *UserManagementHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoCache(w)
	body, err := toUserResponses(users)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, body)
}

// HandleGet handles GET /api/user-management/user/{id}
//
//	@Summary	Get a user
//	@Tags		User Management
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	hubsdk.UserResponse
//	@Failure	404	{object}	hubsdk.ErrorResponse	"User not found"
//	@Router		/api/user-management/user/{id} [get].
func (h *UserManagementHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.GetUserByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	body, err := toUserResponse(u)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, body)
}

// HandleCreate handles POST /api/user-management/create
//
//	@Summary		Create a user
//	@Description	The new account always has the user role. Status defaults to Active.
//	@Tags			User Management
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.CreateUserRequest	true	"Account details"
//	@Success		201		{object}	hubsdk.UserResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"Validation failed"
//	@Failure		409		{object}	hubsdk.ErrorResponse	"User already exists"
//	@Router			/api/user-management/create [post].
func (h *UserManagementHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hubsdk.CreateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	u, err := h.UserService.CreateUser(r.Context(), service.CreateUserInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Status:      domain.Status(req.Status),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	body, err := toUserResponse(u)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, body)
}

// HandleUpdate handles PUT /api/user-management/user/{id}
//
//	@Summary		Update a user
//	@Description	Only the supplied fields change. Role, status and password may be set here.
//	@Tags			User Management
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID"
//	@Param			request	body		hubsdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	hubsdk.UserResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"Validation failed"
//	@Failure		404		{object}	hubsdk.ErrorResponse	"User not found"
//	@Failure		409		{object}	hubsdk.ErrorResponse	"Email already in use"
//	@Router			/api/user-management/user/{id} [put].
func (h *UserManagementHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req hubsdk.UpdateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	upd := service.AdminUserUpdate{
		ProfileUpdate: profileUpdate(hubsdk.UpdateProfileRequest{
			FullName:        req.FullName,
			Email:           req.Email,
			PhoneNumber:     req.PhoneNumber,
			TwoFactorMethod: req.TwoFactorMethod,
		}),
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		upd.Role = &role
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		upd.Status = &status
	}

	u, err := h.UserService.UpdateUser(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	body, err := toUserResponse(u)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, body)
}

// HandleDelete handles DELETE /api/user-management/user/{id}
//
//	@Summary		Delete a user
//	@Description	Tasks assigned to the user are deleted with them.
//	@Tags			User Management
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	hubsdk.MessageResponse
//	@Failure		404	{object}	hubsdk.ErrorResponse	"User not found"
//	@Router			/api/user-management/user/{id} [delete].
func (h *UserManagementHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hubsdk.MessageResponse{Message: "user deleted successfully"})
}
