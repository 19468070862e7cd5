package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/pkg/httpx"
	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

// AdminHandler serves the admin dashboard and task board.
type AdminHandler struct {
	TaskService *service.TaskService
	UserService *service.UserService
}

// HandleStats handles GET /api/admin/stats
//
//	@Summary	User counters
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	hubsdk.StatsResponse
//	@Failure	403	{object}	hubsdk.ErrorResponse	"Admin access required"
//	@Router		/api/admin/stats [get].
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.UserService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, hubsdk.StatsResponse{
		TotalUsers:    counts.Total,
		ActiveUsers:   counts.Active,
		InactiveUsers: counts.Inactive,
	})
}

// HandleCreateTask handles POST /api/admin/task
//
//	@Summary		Assign a task
//	@Description	Creates a Pending task for the user with the given email.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.CreateTaskRequest	true	"Task"
//	@Success		201		{object}	hubsdk.TaskResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"Validation failed"
//	@Failure		404		{object}	hubsdk.ErrorResponse	"No user found with email"
//	@Router			/api/admin/task [post].
func (h *AdminHandler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	admin := currentUser(ctx)

	var req hubsdk.CreateTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	t, err := h.TaskService.Create(ctx, admin.ID, service.NewTask{
		Title:         req.Title,
		Description:   req.Description,
		AssignToEmail: req.AssignToEmail,
	})
	if errors.Is(err, service.ErrAssigneeNotFound) {
		email := strings.ToLower(strings.TrimSpace(req.AssignToEmail))
		hubsdk.NewAPIError(http.StatusNotFound, hubsdk.ErrorCodeNotFound,
			"No user found with email: "+email).WriteError(w)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("task assigned", "task_id", t.ID, "assignee_id", t.AssignedTo.ID)
	body, err := toTaskResponse(t)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, body)
}

// HandleListTasks handles GET /api/admin/tasks
//
//	@Summary	List every task
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		hubsdk.TaskResponse	"Newest first"
//	@Failure	403	{object}	hubsdk.ErrorResponse	"Admin access required"
//	@Router		/api/admin/tasks [get].
func (h *AdminHandler) HandleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.NoCache(w)
	body, err := toTaskResponses(tasks)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, body)
}

// HandleUpdateTask handles PATCH /api/admin/task/{id}
//
//	@Summary	Edit a task's title or description
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Task ID"
//	@Param		request	body		hubsdk.UpdateTaskRequest	true	"Fields to change"
//	@Success	200		{object}	hubsdk.TaskResponse
//	@Failure	400		{object}	hubsdk.ErrorResponse	"Nothing to update"
//	@Failure	404		{object}	hubsdk.ErrorResponse	"Task not found"
//	@Router		/api/admin/task/{id} [patch].
func (h *AdminHandler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req hubsdk.UpdateTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	t, err := h.TaskService.UpdateContent(r.Context(), r.PathValue("id"), req.Title, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	body, err := toTaskResponse(t)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, body)
}

// HandleUpdateTaskStatus handles PATCH /api/admin/task/{id}/status
//
//	@Summary	Set a task's status
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Task ID"
//	@Param		request	body		hubsdk.UpdateTaskStatusRequest	true	"Pending or Completed"
//	@Success	200		{object}	hubsdk.TaskResponse
//	@Failure	400		{object}	hubsdk.ErrorResponse	"Invalid status"
//	@Failure	404		{object}	hubsdk.ErrorResponse	"Task not found"
//	@Router		/api/admin/task/{id}/status [patch].
func (h *AdminHandler) HandleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req hubsdk.UpdateTaskStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	t, err := h.TaskService.UpdateStatus(r.Context(), r.PathValue("id"), domain.TaskStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	body, err := toTaskResponse(t)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, body)
}

// HandleDeleteTask handles DELETE /api/admin/task/{id}
//
//	@Summary	Delete a task
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Task ID"
//	@Success	200	{object}	hubsdk.MessageResponse
//	@Failure	404	{object}	hubsdk.ErrorResponse	"Task not found"
//	@Router		/api/admin/task/{id} [delete].
func (h *AdminHandler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.TaskService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hubsdk.MessageResponse{Message: "task deleted successfully"})
}
