package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/pkg/httpx"
	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
)

// UserTaskHandler serves the tasks assigned to the caller.
type UserTaskHandler struct {
	TaskService *service.TaskService
}

var errTaskNotAssigned = hubsdk.NewAPIError(http.StatusNotFound, hubsdk.ErrorCodeNotFound,
	"task not found or not assigned to you")

// HandleList handles GET /api/user/tasks
//
//	@Summary	List own tasks
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		hubsdk.TaskResponse	"Newest first"
//	@Failure	401	{object}	hubsdk.ErrorResponse
//	@Router		/api/user/tasks [get].
func (h *UserTaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	tasks, err := h.TaskService.ListForUser(r.Context(), u.ID)
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

// HandleGet handles GET /api/user/tasks/{id}
//
//	@Summary	Get one of own tasks
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Task ID"
//	@Success	200	{object}	hubsdk.TaskResponse
//	@Failure	404	{object}	hubsdk.ErrorResponse	"Task not found or not assigned to you"
//	@Router		/api/user/tasks/{id} [get].
func (h *UserTaskHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	t, err := h.TaskService.GetForUser(r.Context(), r.PathValue("id"), u.ID)
	if errors.Is(err, service.ErrTaskNotFound) {
		errTaskNotAssigned.WriteError(w)
		return
	}
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

// HandleComplete handles PATCH /api/user/tasks/{id}/complete
//
//	@Summary	Mark own task completed
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Task ID"
//	@Success	200	{object}	hubsdk.TaskResponse
//	@Failure	404	{object}	hubsdk.ErrorResponse	"Task not found or not assigned to you"
//	@Router		/api/user/tasks/{id}/complete [patch].
func (h *UserTaskHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	t, err := h.TaskService.Complete(r.Context(), r.PathValue("id"), u.ID)
	if errors.Is(err, service.ErrTaskNotFound) {
		errTaskNotAssigned.WriteError(w)
		return
	}
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
