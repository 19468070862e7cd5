package hubsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Admin operations. The session's user must have the admin role.

func (s *Session) Stats(ctx context.Context) (*StatsResponse, error) {
	var out StatsResponse
	if err := s.call(ctx, http.MethodGet, "/api/admin/stats", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error) {
	var out TaskResponse
	if err := s.call(ctx, http.MethodPost, "/api/admin/task", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListTasks(ctx context.Context) ([]TaskResponse, error) {
	var out []TaskResponse
	if err := s.call(ctx, http.MethodGet, "/api/admin/tasks", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*TaskResponse, error) {
	var out TaskResponse
	if err := s.call(ctx, http.MethodPatch, "/api/admin/task/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateTaskStatus(ctx context.Context, id, status string) (*TaskResponse, error) {
	var out TaskResponse
	path := "/api/admin/task/" + url.PathEscape(id) + "/status"
	if err := s.call(ctx, http.MethodPatch, path, UpdateTaskStatusRequest{Status: status}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteTask(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/api/admin/task/"+url.PathEscape(id), nil, nil, http.StatusOK)
}

func (s *Session) ListUsers(ctx context.Context) ([]UserResponse, error) {
	var out []UserResponse
	if err := s.call(ctx, http.MethodGet, "/api/user-management/users", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	var out UserResponse
	if err := s.call(ctx, http.MethodGet, "/api/user-management/user/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	var out UserResponse
	if err := s.call(ctx, http.MethodPost, "/api/user-management/create", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error) {
	var out UserResponse
	if err := s.call(ctx, http.MethodPut, "/api/user-management/user/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteUser(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/api/user-management/user/"+url.PathEscape(id), nil, nil, http.StatusOK)
}
