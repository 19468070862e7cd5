package hubsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Profile returns the signed-in user.
func (s *Session) Profile(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := s.call(ctx, http.MethodGet, "/api/user/profile", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UserResponse, error) {
	var out UserResponse
	if err := s.call(ctx, http.MethodPatch, "/api/user/update-profile", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	req := ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	return s.call(ctx, http.MethodPatch, "/api/user/change-password", req, nil, http.StatusOK)
}

func (s *Session) ResetPassword(ctx context.Context, next string) error {
	req := ResetPasswordRequest{NewPassword: next}
	return s.call(ctx, http.MethodPatch, "/api/user/reset-password", req, nil, http.StatusOK)
}

// EnableTwoFactor starts (or restarts) authenticator enrollment.
func (s *Session) EnableTwoFactor(ctx context.Context) (*TwoFactorSetupResponse, error) {
	var out TwoFactorSetupResponse
	if err := s.call(ctx, http.MethodPost, "/api/auth/enable-2fa", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTwoFactorSetup finishes enrollment started with EnableTwoFactor.
func (s *Session) VerifyTwoFactorSetup(ctx context.Context, code string) error {
	return s.call(ctx, http.MethodPost, "/api/auth/verify-2fa-setup", VerifySetupRequest{Token: code}, nil, http.StatusOK)
}

// MyTasks lists the tasks assigned to the signed-in user, newest first.
func (s *Session) MyTasks(ctx context.Context) ([]TaskResponse, error) {
	var out []TaskResponse
	if err := s.call(ctx, http.MethodGet, "/api/user/tasks", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) MyTask(ctx context.Context, id string) (*TaskResponse, error) {
	var out TaskResponse
	if err := s.call(ctx, http.MethodGet, "/api/user/tasks/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CompleteTask(ctx context.Context, id string) (*TaskResponse, error) {
	var out TaskResponse
	path := "/api/user/tasks/" + url.PathEscape(id) + "/complete"
	if err := s.call(ctx, http.MethodPatch, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
