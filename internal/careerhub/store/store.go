package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Repos groups the repositories. Outside WithTx they run on the connection
// pool; inside, every call joins the one transaction.
type Repos interface {
	Users() Users
	Tasks() Tasks
}

// Store is implemented by the sqlite and postgres drivers.
type Store interface {
	Repos

	// WithTx runs fn in a single transaction, committed when fn returns nil
	// and rolled back otherwise.
	WithTx(ctx context.Context, fn func(tx Repos) error) error

	ApplyMigrations() error
	Ping(ctx context.Context) error
	Close() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the lower-cased email exactly.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns every user, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user. Duplicate emails yield ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser writes the profile, role, status and preferred 2FA method.
	// Secrets, password and OTP state are left alone.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// DeleteUser removes the user; their assigned tasks go with them.
	DeleteUser(ctx context.Context, userID string) error

	// CountUsers returns total/active/inactive counts.
	CountUsers(ctx context.Context) (domain.UserCounts, error)

	// SetTOTPSecret stores a freshly generated secret. Enabled is untouched.
	SetTOTPSecret(ctx context.Context, userID string, secret string) error

	// EnableTOTP flips two_factor_enabled on.
	EnableTOTP(ctx context.Context, userID string) error

	// SetOTPChallenge replaces any outstanding code with c.
	SetOTPChallenge(ctx context.Context, userID string, c domain.OTPChallenge) error

	// IncrementOTPAttempts atomically adds one failed attempt.
	IncrementOTPAttempts(ctx context.Context, userID string) error

	// ClearOTPChallenge removes the outstanding code.
	ClearOTPChallenge(ctx context.Context, userID string) error

	// DeleteExpiredOTPChallenges clears codes that expired before the cutoff.
	DeleteExpiredOTPChallenges(ctx context.Context, before time.Time) (int64, error)
}

type Tasks interface {
	// CreateTask inserts t; AssignedTo.ID and AssignedBy.ID must reference users.
	CreateTask(ctx context.Context, t domain.Task) error

	// GetTaskByID returns a task with its assignee and assigner populated.
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// ListTasks returns every task, newest first.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// ListTasksByAssignee returns the user's tasks, newest first.
	ListTasksByAssignee(ctx context.Context, userID string) ([]domain.Task, error)

	// GetTaskForAssignee returns ErrNotFound unless the task exists and is
	// assigned to userID.
	GetTaskForAssignee(ctx context.Context, id, userID string) (domain.Task, error)

	// UpdateTaskContent rewrites title and description.
	UpdateTaskContent(ctx context.Context, id, title, description string) error

	// UpdateTaskStatus sets any valid status (admin path).
	UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) error

	// CompleteAssignedTask marks the task Completed if it is assigned to userID.
	CompleteAssignedTask(ctx context.Context, id, userID string) error

	// DeleteTask removes the task.
	DeleteTask(ctx context.Context, id string) error
}
