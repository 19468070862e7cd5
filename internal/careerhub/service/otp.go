package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/notify"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/pkg/cryptox"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

const otpMessage = "Your CareerHub verification code is: %s. It expires in 5 minutes."

// OTPService issues and checks one-time codes sent over WhatsApp.
type OTPService struct {
	Store    *store.Handle
	Notifier notify.Notifier
	Now      func() time.Time

	// Debug logs plaintext codes. Never set in production.
	Debug bool
}

// OTPIssue is the outcome of a successful Issue. The code is valid even when
// DeliveryErr is set.
type OTPIssue struct {
	Code        string
	ExpiresAt   time.Time
	DeliveryErr error
}

func (s *OTPService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Issue replaces any outstanding code for the user with a fresh one and
// dispatches it.
func (s *OTPService) Issue(ctx context.Context, userID string) (OTPIssue, error) {
	log := slogx.FromContext(ctx)

	st, err := s.Store.Get(ctx)
	if err != nil {
		return OTPIssue{}, err
	}
	u, err := getUser(ctx, st, userID)
	if err != nil {
		return OTPIssue{}, err
	}
	if !u.HasPhone() {
		return OTPIssue{}, ErrNoChannel
	}

	code, err := cryptox.GenerateNumericCode()
	if err != nil {
		return OTPIssue{}, err
	}
	hash, err := cryptox.HashCode(code)
	if err != nil {
		return OTPIssue{}, err
	}

	challenge := domain.OTPChallenge{
		CodeHash:  hash,
		ExpiresAt: s.now().Add(domain.OTPTTL),
		Attempts:  0,
	}
	if err := st.Users().SetOTPChallenge(ctx, u.ID, challenge); err != nil {
		return OTPIssue{}, fmt.Errorf("failed to store OTP: %w", err)
	}

	if s.Debug {
		log.Debug("generated OTP", "user_id", u.ID, "otp", code)
	}

	issue := OTPIssue{Code: code, ExpiresAt: challenge.ExpiresAt}

	notifier := s.Notifier
	if notifier == nil {
		notifier = notify.Disabled{}
	}
	err = notifier.Send(ctx, notify.Message{
		To:   u.PhoneNumber,
		Body: fmt.Sprintf(otpMessage, code),
	})
	if err != nil {
		log.Warn("failed to deliver OTP", "user_id", u.ID, "error", err)
		issue.DeliveryErr = err
	}

	return issue, nil
}

// Verify consumes the outstanding code. Each mismatch counts against the
// attempt limit; once the limit is reached even the right code is refused.
func (s *OTPService) Verify(ctx context.Context, userID, code string) (domain.User, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.User{}, err
	}
	u, err := getUser(ctx, st, userID)
	if err != nil {
		return domain.User{}, err
	}

	c := u.OTP
	switch {
	case c == nil:
		return domain.User{}, ErrNoCodeRequested
	case c.Expired(s.now()):
		return domain.User{}, ErrCodeExpired
	case c.Exhausted(domain.OTPMaxAttempts):
		return domain.User{}, ErrTooManyAttempts
	}

	if err := cryptox.VerifyCode(code, c.CodeHash); err != nil {
		if !errors.Is(err, cryptox.ErrCodeMismatch) {
			return domain.User{}, err
		}
		if err := st.Users().IncrementOTPAttempts(ctx, u.ID); err != nil {
			return domain.User{}, fmt.Errorf("failed to record attempt: %w", err)
		}
		return domain.User{}, ErrInvalidCode
	}

	if err := st.Users().ClearOTPChallenge(ctx, u.ID); err != nil {
		return domain.User{}, fmt.Errorf("failed to clear OTP: %w", err)
	}
	u.OTP = nil
	return u, nil
}
