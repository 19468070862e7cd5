package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
)

const userColumns = `id, full_name, email, phone_number, password_hash, role, status,
	two_factor_method, two_factor_enabled, two_factor_secret,
	otp_code_hash, otp_expires_at, otp_attempts, created_at, updated_at`

type userRow struct {
	ID               string     `db:"id"`
	FullName         string     `db:"full_name"`
	Email            string     `db:"email"`
	PhoneNumber      *string    `db:"phone_number"`
	PasswordHash     string     `db:"password_hash"`
	Role             string     `db:"role"`
	Status           string     `db:"status"`
	TwoFactorMethod  string     `db:"two_factor_method"`
	TwoFactorEnabled bool       `db:"two_factor_enabled"`
	TwoFactorSecret  *string    `db:"two_factor_secret"`
	OTPCodeHash      *string    `db:"otp_code_hash"`
	OTPExpiresAt     *time.Time `db:"otp_expires_at"`
	OTPAttempts      int        `db:"otp_attempts"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (row userRow) toDomain() domain.User {
	u := domain.User{
		ID:           row.ID,
		FullName:     row.FullName,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		Status:       domain.Status(row.Status),
		TwoFactor: domain.TwoFactor{
			Enabled: row.TwoFactorEnabled,
			Secret:  row.TwoFactorSecret,
			Method:  domain.TwoFactorMethod(row.TwoFactorMethod),
		},
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
	if row.PhoneNumber != nil {
		u.PhoneNumber = *row.PhoneNumber
	}
	if row.OTPCodeHash != nil && row.OTPExpiresAt != nil {
		u.OTP = &domain.OTPChallenge{
			CodeHash:  *row.OTPCodeHash,
			ExpiresAt: row.OTPExpiresAt.UTC(),
			Attempts:  row.OTPAttempts,
		}
	}
	return u
}

type usersRepo struct {
	db querier
}

func (r *usersRepo) getOne(ctx context.Context, query string, args ...any) (domain.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return domain.User{}, err
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(list))
	for _, row := range list {
		users = append(users, row.toDomain())
	}
	return users, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, full_name, email, phone_number, password_hash, role, status,
			two_factor_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.FullName, u.Email, nullable(u.PhoneNumber), u.PasswordHash,
		string(u.Role), string(u.Status), string(u.TwoFactor.Method),
		u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapWriteError(err)
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	return requireRow(r.db.Exec(ctx, `
		UPDATE users
		SET full_name = $1, email = $2, phone_number = $3, role = $4, status = $5,
			two_factor_method = $6, updated_at = now()
		WHERE id = $7`,
		u.FullName, u.Email, nullable(u.PhoneNumber), string(u.Role), string(u.Status),
		string(u.TwoFactor.Method), u.ID,
	))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return requireRow(r.db.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`,
		newHash, userID,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return requireRow(r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID))
}

func (r *usersRepo) CountUsers(ctx context.Context) (domain.UserCounts, error) {
	var c domain.UserCounts
	err := r.db.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE status = 'Active'),
			count(*) FILTER (WHERE status = 'Inactive')
		FROM users`,
	).Scan(&c.Total, &c.Active, &c.Inactive)
	return c, err
}

func (r *usersRepo) SetTOTPSecret(ctx context.Context, userID string, secret string) error {
	return requireRow(r.db.Exec(ctx,
		`UPDATE users SET two_factor_secret = $1, updated_at = now() WHERE id = $2`,
		secret, userID,
	))
}

func (r *usersRepo) EnableTOTP(ctx context.Context, userID string) error {
	return requireRow(r.db.Exec(ctx,
		`UPDATE users SET two_factor_enabled = TRUE, updated_at = now() WHERE id = $1`,
		userID,
	))
}

func (r *usersRepo) SetOTPChallenge(ctx context.Context, userID string, c domain.OTPChallenge) error {
	return requireRow(r.db.Exec(ctx, `
		UPDATE users
		SET otp_code_hash = $1, otp_expires_at = $2, otp_attempts = $3, updated_at = now()
		WHERE id = $4`,
		c.CodeHash, c.ExpiresAt.UTC(), c.Attempts, userID,
	))
}

func (r *usersRepo) IncrementOTPAttempts(ctx context.Context, userID string) error {
	return requireRow(r.db.Exec(ctx,
		`UPDATE users SET otp_attempts = otp_attempts + 1 WHERE id = $1`,
		userID,
	))
}

func (r *usersRepo) ClearOTPChallenge(ctx context.Context, userID string) error {
	return requireRow(r.db.Exec(ctx, `
		UPDATE users
		SET otp_code_hash = NULL, otp_expires_at = NULL, otp_attempts = 0, updated_at = now()
		WHERE id = $1`,
		userID,
	))
}

func (r *usersRepo) DeleteExpiredOTPChallenges(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET otp_code_hash = NULL, otp_expires_at = NULL, otp_attempts = 0
		WHERE otp_expires_at IS NOT NULL AND otp_expires_at < $1`,
		before.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
