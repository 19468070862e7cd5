package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccountInactive        = errors.New("account is inactive, contact an administrator")
	ErrUserExists             = errors.New("user already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCurrentPassword = errors.New("invalid current password")

	ErrNotEnrolled       = errors.New("2FA setup not initiated")
	ErrTwoFactorDisabled = errors.New("2FA is not enabled for this user")
	ErrInvalidCode       = errors.New("invalid verification code")

	ErrNoChannel       = errors.New("WhatsApp number not registered for this user")
	ErrNoCodeRequested = errors.New("no OTP requested")
	ErrCodeExpired     = errors.New("OTP has expired")
	ErrTooManyAttempts = errors.New("too many failed attempts, request a new code")

	ErrTaskNotFound     = errors.New("task not found")
	ErrAssigneeNotFound = errors.New("no user found with email")
	ErrNothingToUpdate  = errors.New("nothing to update")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
