package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/notify"
)

var sixDigits = regexp.MustCompile(`\d{6}`)

func codeFrom(t *testing.T, body string) string {
	t.Helper()
	code := sixDigits.FindString(body)
	require.NotEmpty(t, code, "no code in %q", body)
	return code
}

// wrongCode returns a six digit code that differs from code.
func wrongCode(code string) string {
	if code == "111111" {
		return "222222"
	}
	return "111111"
}

func TestOTPIssue(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)

	t.Run("requires a phone", func(t *testing.T) {
		u := env.register(t, "nophone@x.com", "")
		_, err := env.otp.Issue(ctx, u.ID)
		require.ErrorIs(t, err, ErrNoChannel)
	})

	t.Run("stores hash and dispatches code", func(t *testing.T) {
		u := env.register(t, "a@x.com", "9876543210")
		issue, err := env.otp.Issue(ctx, u.ID)
		require.NoError(t, err)
		require.NoError(t, issue.DeliveryErr)
		require.Len(t, issue.Code, 6)
		require.Equal(t, env.clock.Now().Add(5*time.Minute), issue.ExpiresAt)

		msg, ok := env.notifier.Last()
		require.True(t, ok)
		require.Equal(t, "9876543210", msg.To)
		require.Equal(t, "Your CareerHub verification code is: "+issue.Code+". It expires in 5 minutes.", msg.Body)

		got := env.user(t, u.ID)
		require.NotNil(t, got.OTP)
		require.NotEqual(t, issue.Code, got.OTP.CodeHash)
		require.Zero(t, got.OTP.Attempts)
	})

	t.Run("delivery failure keeps the code", func(t *testing.T) {
		u := env.register(t, "fail@x.com", "9876543210")
		svc := &OTPService{Store: env.handle, Notifier: notify.Disabled{}, Now: env.clock.Now}

		issue, err := svc.Issue(ctx, u.ID)
		require.NoError(t, err)
		require.ErrorIs(t, issue.DeliveryErr, notify.ErrNotConfigured)

		_, err = svc.Verify(ctx, u.ID, issue.Code)
		require.NoError(t, err)
	})
}

func TestOTPVerify(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)

	t.Run("no code requested", func(t *testing.T) {
		u := env.register(t, "none@x.com", "9876543210")
		_, err := env.otp.Verify(ctx, u.ID, "123456")
		require.ErrorIs(t, err, ErrNoCodeRequested)
	})

	t.Run("expires exactly after five minutes", func(t *testing.T) {
		u := env.register(t, "expiry@x.com", "9876543210")
		issue, err := env.otp.Issue(ctx, u.ID)
		require.NoError(t, err)

		env.clock.Advance(5*time.Minute + time.Second)
		defer env.clock.Advance(-(5*time.Minute + time.Second))

		_, err = env.otp.Verify(ctx, u.ID, issue.Code)
		require.ErrorIs(t, err, ErrCodeExpired)
	})

	t.Run("valid at the expiry instant", func(t *testing.T) {
		u := env.register(t, "edge@x.com", "9876543210")
		issue, err := env.otp.Issue(ctx, u.ID)
		require.NoError(t, err)

		env.clock.Advance(5 * time.Minute)
		defer env.clock.Advance(-5 * time.Minute)

		_, err = env.otp.Verify(ctx, u.ID, issue.Code)
		require.NoError(t, err)
	})

	t.Run("attempt limit then reissue", func(t *testing.T) {
		u := env.register(t, "attempts@x.com", "9876543210")
		issue, err := env.otp.Issue(ctx, u.ID)
		require.NoError(t, err)

		for range domain.OTPMaxAttempts {
			_, err := env.otp.Verify(ctx, u.ID, wrongCode(issue.Code))
			require.ErrorIs(t, err, ErrInvalidCode)
		}
		_, err = env.otp.Verify(ctx, u.ID, issue.Code)
		require.ErrorIs(t, err, ErrTooManyAttempts)

		fresh, err := env.otp.Issue(ctx, u.ID)
		require.NoError(t, err)
		require.Zero(t, env.user(t, u.ID).OTP.Attempts)

		issued, err := env.auth.CompleteOTPLogin(ctx, u.ID, fresh.Code)
		require.NoError(t, err)
		require.NotEmpty(t, issued.Token)
		require.Nil(t, env.user(t, u.ID).OTP)
	})

	t.Run("new code invalidates the old one", func(t *testing.T) {
		u := env.register(t, "rotate@x.com", "9876543210")
		first, err := env.otp.Issue(ctx, u.ID)
		require.NoError(t, err)
		second, err := env.otp.Issue(ctx, u.ID)
		require.NoError(t, err)

		if first.Code != second.Code {
			_, err = env.otp.Verify(ctx, u.ID, first.Code)
			require.ErrorIs(t, err, ErrInvalidCode)
		}
		_, err = env.otp.Verify(ctx, u.ID, second.Code)
		require.NoError(t, err)
	})

	t.Run("code is single use", func(t *testing.T) {
		u := env.register(t, "once@x.com", "9876543210")
		issue, err := env.otp.Issue(ctx, u.ID)
		require.NoError(t, err)

		_, err = env.otp.Verify(ctx, u.ID, issue.Code)
		require.NoError(t, err)
		_, err = env.otp.Verify(ctx, u.ID, issue.Code)
		require.True(t, errors.Is(err, ErrNoCodeRequested))
	})
}

func TestHousekeepingClearsExpiredCodes(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)

	u := env.register(t, "hk@x.com", "9876543210")
	_, err := env.otp.Issue(ctx, u.ID)
	require.NoError(t, err)

	hk := NewHousekeepingService(env.handle, discardLogger(), time.Hour, 0)
	require.Equal(t, DefaultOTPRetention, hk.Retention)
	hk.Now = env.clock.Now
	require.Zero(t, hk.Cleanup(ctx))

	env.clock.Advance(6 * time.Minute)
	require.Zero(t, hk.Cleanup(ctx), "recently expired codes are kept")
	_, err = env.otp.Verify(ctx, u.ID, "000000")
	require.True(t, errors.Is(err, ErrCodeExpired), "got %v", err)

	env.clock.Advance(DefaultOTPRetention)
	require.EqualValues(t, 1, hk.Cleanup(ctx))
	require.Nil(t, env.user(t, u.ID).OTP)
}

func TestHousekeepingRunStopsWithContext(t *testing.T) {
	env := newEnv(t)
	hk := NewHousekeepingService(env.handle, discardLogger(), 0, 0)
	require.Equal(t, DefaultHousekeepingInterval, hk.Interval)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hk.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("housekeeping did not stop")
	}
}
