package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/pkg/cryptox"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

type AdminSeed struct {
	Email    string
	Password string // generated and logged when empty
	FullName string
}

type BootstrapService struct {
	Store *store.Handle
	Now   func() time.Time
}

// SeedAdmin creates the admin account unless a user with that email exists.
// It reports whether an account was created.
func (s *BootstrapService) SeedAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	l := slogx.FromContext(ctx)

	password := seed.Password
	generated := false
	if password == "" {
		var err error
		if password, err = cryptox.GeneratePassword(); err != nil {
			return false, err
		}
		generated = true
	}
	if seed.FullName == "" {
		seed.FullName = "System Admin"
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	u, err := newUser(seed.FullName, seed.Email, "", password, domain.RoleAdmin, domain.StatusActive, now)
	if err != nil {
		return false, err
	}

	st, err := s.Store.Get(ctx)
	if err != nil {
		return false, err
	}

	if _, err := st.Users().GetUserByEmail(ctx, u.Email); err == nil {
		l.Info("admin already exists", "email", u.Email)
		return false, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := st.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create admin: %w", err)
	}

	if generated {
		l.Warn("admin created with generated password", "email", u.Email, "password", password)
	} else {
		l.Info("admin created", "email", u.Email, "user_id", u.ID)
	}
	return true, nil
}
