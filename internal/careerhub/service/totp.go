package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/pkg/idx"
)

const (
	totpPeriod     = 30
	totpSkew       = 1
	totpSecretSize = 20
	qrCodeSize     = 200
)

// TOTPService enrolls and verifies authenticator-app codes.
type TOTPService struct {
	Store  *store.Handle
	Issuer string
	Now    func() time.Time
}

func (s *TOTPService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Generate creates and persists a new secret for the user. Any previous secret
// is replaced; the enabled flag is left alone.
func (s *TOTPService) Generate(ctx context.Context, userID string) (domain.SetupRequired, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.SetupRequired{}, err
	}
	u, err := getUser(ctx, st, userID)
	if err != nil {
		return domain.SetupRequired{}, err
	}
	return s.generate(ctx, st, u)
}

func (s *TOTPService) generate(ctx context.Context, st store.Store, u domain.User) (domain.SetupRequired, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: u.Email,
		Period:      totpPeriod,
		SecretSize:  totpSecretSize,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.SetupRequired{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	qr, err := qrDataURL(key)
	if err != nil {
		return domain.SetupRequired{}, err
	}

	if err := st.Users().SetTOTPSecret(ctx, u.ID, key.Secret()); err != nil {
		return domain.SetupRequired{}, fmt.Errorf("failed to store TOTP secret: %w", err)
	}

	return domain.SetupRequired{
		UserID:     u.ID,
		Secret:     key.Secret(),
		OTPAuthURL: key.URL(),
		QRCode:     qr,
	}, nil
}

// VerifySetup enables 2FA once the user proves they hold the secret. A wrong
// code keeps the secret so the user can try again.
func (s *TOTPService) VerifySetup(ctx context.Context, userID, code string) (domain.User, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.User{}, err
	}
	u, err := getUser(ctx, st, userID)
	if err != nil {
		return domain.User{}, err
	}
	if !u.TwoFactor.Enrolled() {
		return domain.User{}, ErrNotEnrolled
	}
	if !s.valid(code, *u.TwoFactor.Secret) {
		return domain.User{}, ErrInvalidCode
	}
	if err := st.Users().EnableTOTP(ctx, u.ID); err != nil {
		return domain.User{}, fmt.Errorf("failed to enable 2FA: %w", err)
	}
	u.TwoFactor.Enabled = true
	return u, nil
}

// VerifyLogin checks a code for a user who has finished enrollment.
func (s *TOTPService) VerifyLogin(ctx context.Context, userID, code string) (domain.User, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.User{}, err
	}
	u, err := getUser(ctx, st, userID)
	if err != nil {
		return domain.User{}, err
	}
	if !u.TwoFactor.Enabled || !u.TwoFactor.Enrolled() {
		return domain.User{}, ErrTwoFactorDisabled
	}
	if !s.valid(code, *u.TwoFactor.Secret) {
		return domain.User{}, ErrInvalidCode
	}
	return u, nil
}

// valid accepts codes from one step either side of now.
func (s *TOTPService) valid(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, s.now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

func qrDataURL(key *otp.Key) (string, error) {
	img, err := key.Image(qrCodeSize, qrCodeSize)
	if err != nil {
		return "", fmt.Errorf("failed to render QR code: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func getUser(ctx context.Context, st store.Store, userID string) (domain.User, error) {
	if !idx.Valid(userID) {
		return domain.User{}, ErrUserNotFound
	}
	u, err := st.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return u, nil
}
