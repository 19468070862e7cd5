package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
)

func ptr[T any](v T) *T { return &v }

func TestProfile(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	u := env.register(t, "a@x.com", "9876543210")
	env.register(t, "taken@x.com", "")

	t.Run("partial update", func(t *testing.T) {
		got, err := env.users.UpdateProfile(ctx, u.ID, ProfileUpdate{FullName: ptr("Alice B")})
		require.NoError(t, err)
		require.Equal(t, "Alice B", got.FullName)
		require.Equal(t, "9876543210", got.PhoneNumber)
		require.Equal(t, "a@x.com", got.Email)
	})

	t.Run("clear phone and switch method", func(t *testing.T) {
		_, err := env.users.UpdateProfile(ctx, u.ID, ProfileUpdate{
			PhoneNumber:     ptr(""),
			TwoFactorMethod: ptr(domain.MethodWhatsApp),
		})
		require.NoError(t, err)
		got := env.user(t, u.ID)
		require.Empty(t, got.PhoneNumber)
		require.Equal(t, domain.MethodWhatsApp, got.TwoFactor.Method)
	})

	t.Run("email collision", func(t *testing.T) {
		_, err := env.users.UpdateProfile(ctx, u.ID, ProfileUpdate{Email: ptr("TAKEN@x.com")})
		require.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("invalid method", func(t *testing.T) {
		_, err := env.users.UpdateProfile(ctx, u.ID, ProfileUpdate{TwoFactorMethod: ptr(domain.TwoFactorMethod("sms"))})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "twoFactorMethod", verr.Field)
	})
}

func TestPasswords(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	u := env.register(t, "a@x.com", "")

	err := env.users.ChangePassword(ctx, u.ID, "wrong", "new-secret")
	require.ErrorIs(t, err, ErrInvalidCurrentPassword)

	require.NoError(t, env.users.ChangePassword(ctx, u.ID, "p1-secret", "new-secret"))
	res, err := env.auth.Login(ctx, "a@x.com", "p1-secret")
	require.NoError(t, err)
	require.IsType(t, domain.Rejected{}, res)

	require.NoError(t, env.users.ResetPassword(ctx, u.ID, "reset-secret"))
	res, err = env.auth.Login(ctx, "a@x.com", "reset-secret")
	require.NoError(t, err)
	require.IsType(t, domain.SetupRequired{}, res)

	var verr *ValidationError
	require.ErrorAs(t, env.users.ResetPassword(ctx, u.ID, "123"), &verr)
}

func TestAdminUserManagement(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	env.seedAdmin(t)

	created, err := env.users.CreateUser(ctx, CreateUserInput{
		FullName: "Bob",
		Email:    "bob@x.com",
		Password: "bob-secret",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, created.Role)
	require.Equal(t, domain.StatusActive, created.Status)

	_, err = env.users.CreateUser(ctx, CreateUserInput{FullName: "Bob", Email: "bob@x.com", Password: "bob-secret"})
	require.ErrorIs(t, err, ErrUserExists)

	t.Run("update role status and password", func(t *testing.T) {
		_, err := env.users.UpdateUser(ctx, created.ID, AdminUserUpdate{
			Role:     ptr(domain.RoleAdmin),
			Status:   ptr(domain.StatusInactive),
			Password: ptr("changed-secret"),
		})
		require.NoError(t, err)

		got := env.user(t, created.ID)
		require.Equal(t, domain.RoleAdmin, got.Role)
		require.Equal(t, domain.StatusInactive, got.Status)

		res, err := env.auth.Login(ctx, "bob@x.com", "changed-secret")
		require.NoError(t, err)
		require.IsType(t, domain.TokenIssued{}, res)
	})

	t.Run("stats", func(t *testing.T) {
		c, err := env.users.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.UserCounts{Total: 2, Active: 1, Inactive: 1}, c)
	})

	t.Run("list and delete", func(t *testing.T) {
		list, err := env.users.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)

		require.NoError(t, env.users.DeleteUser(ctx, created.ID))
		require.ErrorIs(t, env.users.DeleteUser(ctx, created.ID), ErrUserNotFound)
		_, err = env.users.GetUserByID(ctx, created.ID)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)

	created, err := env.boot.SeedAdmin(ctx, AdminSeed{Email: "sarman@gmail.com", Password: "admin1234"})
	require.NoError(t, err)
	require.True(t, created)

	created, err = env.boot.SeedAdmin(ctx, AdminSeed{Email: "sarman@gmail.com", Password: "admin1234"})
	require.NoError(t, err)
	require.False(t, created)

	list, err := env.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "System Admin", list[0].FullName)
	require.Equal(t, domain.RoleAdmin, list[0].Role)
}
