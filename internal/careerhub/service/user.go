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

type UserService struct {
	Store *store.Handle
	Now   func() time.Time
}

// ProfileUpdate carries the fields a user may change on their own account.
// Nil leaves the field as is; an empty PhoneNumber removes the number.
type ProfileUpdate struct {
	FullName        *string
	Email           *string
	PhoneNumber     *string
	TwoFactorMethod *domain.TwoFactorMethod
}

// AdminUserUpdate is ProfileUpdate plus the fields only an admin may set.
type AdminUserUpdate struct {
	ProfileUpdate
	Role     *domain.Role
	Status   *domain.Status
	Password *string
}

type CreateUserInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
	Status      domain.Status // empty means Active
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return getUser(ctx, st, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (domain.User, error) {
	return s.update(ctx, userID, AdminUserUpdate{ProfileUpdate: upd})
}

func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" {
		return invalid("currentPassword", "current password is required")
	}
	if err := validatePassword("newPassword", next); err != nil {
		return err
	}

	st, err := s.Store.Get(ctx)
	if err != nil {
		return err
	}
	u, err := getUser(ctx, st, userID)
	if err != nil {
		return err
	}
	if err := cryptox.VerifyPassword(current, u.PasswordHash); err != nil {
		return ErrInvalidCurrentPassword
	}
	return s.setPassword(ctx, st, u.ID, next)
}

// ResetPassword sets a new password for an already authenticated user.
func (s *UserService) ResetPassword(ctx context.Context, userID, next string) error {
	if err := validatePassword("newPassword", next); err != nil {
		return err
	}
	st, err := s.Store.Get(ctx)
	if err != nil {
		return err
	}
	if _, err := getUser(ctx, st, userID); err != nil {
		return err
	}
	return s.setPassword(ctx, st, userID, next)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return st.Users().ListUsers(ctx)
}

// CreateUser is the admin path. The new account is always a plain user.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	if in.Status == "" {
		in.Status = domain.StatusActive
	}
	u, err := newUser(in.FullName, in.Email, in.PhoneNumber, in.Password, domain.RoleUser, in.Status, s.now())
	if err != nil {
		return domain.User{}, err
	}

	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if err := st.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user created by admin", "target_user_id", u.ID)
	return u, nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID string, upd AdminUserUpdate) (domain.User, error) {
	return s.update(ctx, userID, upd)
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if !idx.Valid(userID) {
		return ErrUserNotFound
	}
	st, err := s.Store.Get(ctx)
	if err != nil {
		return err
	}
	if err := st.Users().DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	slogx.FromContext(ctx).Info("user deleted", "target_user_id", userID)
	return nil
}

// Stats returns the admin dashboard counters.
func (s *UserService) Stats(ctx context.Context) (domain.UserCounts, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.UserCounts{}, err
	}
	return st.Users().CountUsers(ctx)
}

func (s *UserService) update(ctx context.Context, userID string, upd AdminUserUpdate) (domain.User, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.User{}, err
	}
	u, err := getUser(ctx, st, userID)
	if err != nil {
		return domain.User{}, err
	}

	if err := applyUpdate(&u, upd); err != nil {
		return domain.User{}, err
	}
	if upd.Password != nil {
		if err := validatePassword("password", *upd.Password); err != nil {
			return domain.User{}, err
		}
	}

	err = st.WithTx(ctx, func(tx store.Repos) error {
		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			return err
		}
		if upd.Password != nil {
			hash, err := cryptox.HashPassword(*upd.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			if err := tx.Users().UpdatePasswordHash(ctx, u.ID, hash); err != nil {
				return err
			}
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, ErrUserExists
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, ErrUserNotFound
	case err != nil:
		return domain.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	u.UpdatedAt = s.now().UTC()
	return u, nil
}

func applyUpdate(u *domain.User, upd AdminUserUpdate) error {
	if upd.FullName != nil {
		name, err := normalizeFullName(*upd.FullName)
		if err != nil {
			return err
		}
		u.FullName = name
	}
	if upd.Email != nil {
		email, err := normalizeEmail(*upd.Email)
		if err != nil {
			return err
		}
		u.Email = email
	}
	if upd.PhoneNumber != nil {
		u.PhoneNumber = normalizePhone(*upd.PhoneNumber)
	}
	if upd.TwoFactorMethod != nil {
		if !upd.TwoFactorMethod.Valid() {
			return invalid("twoFactorMethod", "method must be authenticator or whatsapp")
		}
		u.TwoFactor.Method = *upd.TwoFactorMethod
	}
	if upd.Role != nil {
		if !upd.Role.Valid() {
			return invalid("role", "role must be user or admin")
		}
		u.Role = *upd.Role
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return invalid("status", "status must be Active or Inactive")
		}
		u.Status = *upd.Status
	}
	return nil
}

func (s *UserService) setPassword(ctx context.Context, st store.Store, userID, password string) error {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := st.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	slogx.FromContext(ctx).Info("password updated", "user_id", userID)
	return nil
}
