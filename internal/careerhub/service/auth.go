package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/pkg/cryptox"
	"github.com/aussiebroadwan/careerhub/pkg/idx"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

// AuthService runs registration and the multi-step login protocol.
type AuthService struct {
	Store  *store.Handle
	Tokens *TokenIssuer
	TOTP   *TOTPService
	OTP    *OTPService
	Now    func() time.Time
}

type RegisterInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register creates an active account with the user role and signs the new
// user in. Admins are only created by seeding or by another admin.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.TokenIssued, error) {
	u, err := newUser(in.FullName, in.Email, in.PhoneNumber, in.Password, domain.RoleUser, domain.StatusActive, s.now())
	if err != nil {
		return domain.TokenIssued{}, err
	}

	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.TokenIssued{}, err
	}
	if err := st.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.TokenIssued{}, ErrUserExists
		}
		return domain.TokenIssued{}, fmt.Errorf("failed to create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", u.ID, "role", u.Role)
	return s.issue(u)
}

// Login checks credentials and decides what the caller must do next. Errors
// are reserved for infrastructure failures; a refused login is a Rejected
// result.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return nil, err
	}

	u, err := st.Users().GetUserByEmail(ctx, normalizeLogin(email))
	if errors.Is(err, store.ErrNotFound) {
		// Burn the same hashing work as a real check.
		_ = cryptox.VerifyPassword(password, dummyPasswordHash())
		return domain.Rejected{Reason: ErrInvalidCredentials}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.Rejected{Reason: ErrInvalidCredentials}, nil
	}

	if domain.Authorize(u.Role, u.Status, domain.RoleUser) == domain.DenyInactive {
		return domain.Rejected{Reason: ErrAccountInactive}, nil
	}

	if u.IsAdmin() {
		issued, err := s.issue(u)
		if err != nil {
			return nil, err
		}
		return issued, nil
	}

	if !u.TwoFactor.Enabled {
		setup, err := s.TOTP.generate(ctx, st, u)
		if err != nil {
			return nil, err
		}
		return setup, nil
	}

	return domain.ChallengeRequired{
		UserID:      u.ID,
		Methods:     domain.AvailableMethods(&u),
		MaskedPhone: domain.MaskPhone(u.PhoneNumber),
	}, nil
}

// CompleteTOTPSetupLogin finishes a login that returned SetupRequired.
func (s *AuthService) CompleteTOTPSetupLogin(ctx context.Context, userID, code string) (domain.TokenIssued, error) {
	u, err := s.TOTP.VerifySetup(ctx, userID, code)
	if err != nil {
		return domain.TokenIssued{}, err
	}
	return s.finish(u)
}

// CompleteTOTPLogin finishes a challenge with an authenticator code.
func (s *AuthService) CompleteTOTPLogin(ctx context.Context, userID, code string) (domain.TokenIssued, error) {
	u, err := s.TOTP.VerifyLogin(ctx, userID, code)
	if err != nil {
		return domain.TokenIssued{}, err
	}
	return s.finish(u)
}

// CompleteOTPLogin finishes a challenge with a WhatsApp code.
func (s *AuthService) CompleteOTPLogin(ctx context.Context, userID, code string) (domain.TokenIssued, error) {
	u, err := s.OTP.Verify(ctx, userID, code)
	if err != nil {
		return domain.TokenIssued{}, err
	}
	return s.finish(u)
}

// finish re-applies the status rule before a follow-up step mints a token.
func (s *AuthService) finish(u domain.User) (domain.TokenIssued, error) {
	if domain.Authorize(u.Role, u.Status, domain.RoleUser) == domain.DenyInactive {
		return domain.TokenIssued{}, ErrAccountInactive
	}
	return s.issue(u)
}

func (s *AuthService) issue(u domain.User) (domain.TokenIssued, error) {
	token, err := s.Tokens.Issue(u)
	if err != nil {
		return domain.TokenIssued{}, err
	}
	return domain.TokenIssued{User: u, Token: token}, nil
}

// newUser validates input and builds a user ready for insertion.
func newUser(fullName, email, phone, password string, role domain.Role, status domain.Status, now time.Time) (domain.User, error) {
	name, err := normalizeFullName(fullName)
	if err != nil {
		return domain.User{}, err
	}
	email, err = normalizeEmail(email)
	if err != nil {
		return domain.User{}, err
	}
	if err := validatePassword("password", password); err != nil {
		return domain.User{}, err
	}
	if !role.Valid() {
		return domain.User{}, invalid("role", "role must be user or admin")
	}
	if !status.Valid() {
		return domain.User{}, invalid("status", "status must be Active or Inactive")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now = now.UTC().Truncate(time.Millisecond)
	return domain.User{
		ID:           idx.NewAt(now).String(),
		FullName:     name,
		Email:        email,
		PhoneNumber:  normalizePhone(phone),
		PasswordHash: hash,
		Role:         role,
		Status:       status,
		TwoFactor:    domain.TwoFactor{Method: domain.MethodAuthenticator},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
