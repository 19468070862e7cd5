package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store/drivers/sqlite/gen"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Every pooled connection to ":memory:" would be its own database.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx runs fn in one transaction. A failed fn or commit leaves the
// database untouched.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Repos) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, ignoreDone(tx.Rollback()))
		}
	}()

	if err := fn(repos{q: s.q.WithTx(tx)}); err != nil {
		return err
	}
	return tx.Commit()
}

func ignoreDone(err error) error {
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

// repos binds the repositories to a transaction.
type repos struct{ q *gen.Queries }

func (r repos) Users() store.Users { return &usersRepo{q: r.q} }
func (r repos) Tasks() store.Tasks { return &tasksRepo{q: r.q} }

func (s *Store) Users() store.Users { return &usersRepo{q: s.q} }
func (s *Store) Tasks() store.Tasks { return &tasksRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapWriteError turns unique-constraint violations into ErrAlreadyExists.
func mapWriteError(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

// requireRow maps a zero rows-affected result to ErrNotFound.
func requireRow(n int64, err error) error {
	if err != nil {
		return mapWriteError(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

func mapUser(row gen.User) domain.User {
	u := domain.User{
		ID:           row.ID,
		FullName:     row.FullName,
		Email:        row.Email,
		PhoneNumber:  mapNullString(row.PhoneNumber),
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		Status:       domain.Status(row.Status),
		TwoFactor: domain.TwoFactor{
			Enabled: row.TwoFactorEnabled,
			Secret:  mapNullStringPtr(row.TwoFactorSecret),
			Method:  domain.TwoFactorMethod(row.TwoFactorMethod),
		},
		CreatedAt: fromMillis(row.CreatedAt),
		UpdatedAt: fromMillis(row.UpdatedAt),
	}

	if row.OtpCodeHash.Valid && row.OtpExpiresAt.Valid {
		u.OTP = &domain.OTPChallenge{
			CodeHash:  row.OtpCodeHash.String,
			ExpiresAt: fromMillis(row.OtpExpiresAt.Int64),
			Attempts:  int(row.OtpAttempts),
		}
	}

	return u
}

func mapTask(row gen.TaskView) domain.Task {
	t := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		AssignedTo: domain.UserRef{
			ID:       row.AssignedTo,
			FullName: row.AssigneeName,
			Email:    row.AssigneeEmail,
		},
		CreatedAt: fromMillis(row.CreatedAt),
	}

	if row.AssignedBy.Valid {
		t.AssignedBy = &domain.UserRef{
			ID:       row.AssignedBy.String,
			FullName: mapNullString(row.AssignerName),
			Email:    mapNullString(row.AssignerEmail),
		}
	}

	return t
}
