package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUser(row))
	}
	return users, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:              u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		PhoneNumber:     mapStringNull(u.PhoneNumber),
		PasswordHash:    u.PasswordHash,
		Role:            string(u.Role),
		Status:          string(u.Status),
		TwoFactorMethod: string(u.TwoFactor.Method),
		CreatedAt:       toMillis(u.CreatedAt),
		UpdatedAt:       toMillis(u.UpdatedAt),
	})
	return mapWriteError(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	return requireRow(r.q.UpdateUser(ctx, gen.UpdateUserParams{
		FullName:        u.FullName,
		Email:           u.Email,
		PhoneNumber:     mapStringNull(u.PhoneNumber),
		Role:            string(u.Role),
		Status:          string(u.Status),
		TwoFactorMethod: string(u.TwoFactor.Method),
		UpdatedAt:       toMillis(time.Now()),
		ID:              u.ID,
	}))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return requireRow(r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: newHash,
		UpdatedAt:    toMillis(time.Now()),
		ID:           userID,
	}))
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return requireRow(r.q.DeleteUser(ctx, userID))
}

func (r *usersRepo) CountUsers(ctx context.Context) (domain.UserCounts, error) {
	row, err := r.q.CountUsers(ctx)
	if err != nil {
		return domain.UserCounts{}, err
	}
	return domain.UserCounts{Total: row.Total, Active: row.Active, Inactive: row.Inactive}, nil
}

func (r *usersRepo) SetTOTPSecret(ctx context.Context, userID string, secret string) error {
	return requireRow(r.q.SetUserTOTPSecret(ctx, gen.SetUserTOTPSecretParams{
		TwoFactorSecret: mapStringNull(secret),
		UpdatedAt:       toMillis(time.Now()),
		ID:              userID,
	}))
}

func (r *usersRepo) EnableTOTP(ctx context.Context, userID string) error {
	return requireRow(r.q.EnableUserTOTP(ctx, gen.EnableUserTOTPParams{
		UpdatedAt: toMillis(time.Now()),
		ID:        userID,
	}))
}

func (r *usersRepo) SetOTPChallenge(ctx context.Context, userID string, c domain.OTPChallenge) error {
	return requireRow(r.q.SetUserOTPChallenge(ctx, gen.SetUserOTPChallengeParams{
		OtpCodeHash:  mapStringNull(c.CodeHash),
		OtpExpiresAt: sql.NullInt64{Int64: toMillis(c.ExpiresAt), Valid: true},
		OtpAttempts:  int64(c.Attempts),
		UpdatedAt:    toMillis(time.Now()),
		ID:           userID,
	}))
}

func (r *usersRepo) IncrementOTPAttempts(ctx context.Context, userID string) error {
	return requireRow(r.q.IncrementUserOTPAttempts(ctx, userID))
}

func (r *usersRepo) ClearOTPChallenge(ctx context.Context, userID string) error {
	return requireRow(r.q.ClearUserOTPChallenge(ctx, gen.ClearUserOTPChallengeParams{
		UpdatedAt: toMillis(time.Now()),
		ID:        userID,
	}))
}

func (r *usersRepo) DeleteExpiredOTPChallenges(ctx context.Context, before time.Time) (int64, error) {
	return r.q.DeleteExpiredOTPChallenges(ctx, sql.NullInt64{Int64: toMillis(before), Valid: true})
}
