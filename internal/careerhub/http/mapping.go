package http

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
)

// toUserResponse copies the public fields of u. Secrets, the password hash
// and OTP state have no counterpart in the response and are never copied.
func toUserResponse(u domain.User) (hubsdk.UserResponse, error) {
	var out hubsdk.UserResponse
	if err := copier.Copy(&out, &u); err != nil {
		return hubsdk.UserResponse{}, fmt.Errorf("map user %s: %w", u.ID, err)
	}
	out.TwoFactorEnabled = u.TwoFactor.Enabled
	out.TwoFactorMethod = string(u.TwoFactor.Method)
	return out, nil
}

func toUserResponses(users []domain.User) ([]hubsdk.UserResponse, error) {
	out := make([]hubsdk.UserResponse, 0, len(users))
	for _, u := range users {
		resp, err := toUserResponse(u)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func toTaskResponse(t domain.Task) (hubsdk.TaskResponse, error) {
	var out hubsdk.TaskResponse
	if err := copier.Copy(&out, &t); err != nil {
		return hubsdk.TaskResponse{}, fmt.Errorf("map task %s: %w", t.ID, err)
	}
	out.AssignedTo = hubsdk.UserRef(t.AssignedTo)
	out.AssignedBy = nil
	if t.AssignedBy != nil {
		ref := hubsdk.UserRef(*t.AssignedBy)
		out.AssignedBy = &ref
	}
	return out, nil
}

func toTaskResponses(tasks []domain.Task) ([]hubsdk.TaskResponse, error) {
	out := make([]hubsdk.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp, err := toTaskResponse(t)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
