package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

// writeServiceError maps service errors onto the API error taxonomy. Anything
// unrecognised is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest, verr.Reason).WriteError(w)
		return
	}

	if apiErr := apiError(err); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	hubsdk.ErrServerError.WriteError(w)
}

func apiError(err error) *hubsdk.APIError {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return hubsdk.ErrInvalidCredentials
	case errors.Is(err, service.ErrAccountInactive):
		return hubsdk.ErrAccountInactive
	case errors.Is(err, service.ErrUserExists):
		return hubsdk.ErrUserExists
	case errors.Is(err, service.ErrUserNotFound):
		return hubsdk.ErrUserNotFound
	case errors.Is(err, service.ErrInvalidCurrentPassword):
		return hubsdk.NewAPIError(http.StatusUnauthorized, hubsdk.ErrorCodeInvalidCredentials, "invalid current password")

	case errors.Is(err, service.ErrNotEnrolled):
		return hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeNotEnrolled, "2FA setup not initiated")
	case errors.Is(err, service.ErrTwoFactorDisabled):
		return hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeTwoFactorDisabled, "2FA is not enabled for this user")
	case errors.Is(err, service.ErrInvalidCode):
		return hubsdk.NewAPIError(http.StatusUnauthorized, hubsdk.ErrorCodeInvalidCode, "invalid verification code")

	case errors.Is(err, service.ErrNoChannel):
		return hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeNoChannel, "WhatsApp number not registered for this user")
	case errors.Is(err, service.ErrNoCodeRequested):
		return hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeNoCodeRequested, "no OTP requested")
	case errors.Is(err, service.ErrCodeExpired):
		return hubsdk.NewAPIError(http.StatusUnauthorized, hubsdk.ErrorCodeCodeExpired, "OTP has expired")
	case errors.Is(err, service.ErrTooManyAttempts):
		return hubsdk.NewAPIError(http.StatusUnauthorized, hubsdk.ErrorCodeTooManyAttempts, "too many failed attempts, request a new code")

	case errors.Is(err, service.ErrTaskNotFound):
		return hubsdk.NewAPIError(http.StatusNotFound, hubsdk.ErrorCodeNotFound, "task not found")
	case errors.Is(err, service.ErrAssigneeNotFound):
		return hubsdk.NewAPIError(http.StatusNotFound, hubsdk.ErrorCodeNotFound, err.Error())
	case errors.Is(err, service.ErrNothingToUpdate):
		return hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest, "Please provide at least a title or description to update")
	}
	return nil
}
