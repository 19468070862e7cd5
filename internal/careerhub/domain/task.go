package domain

import (
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "Pending"
	TaskCompleted TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool { return s == TaskPending || s == TaskCompleted }

// MaxTaskTitle is the longest accepted task title, in characters.
const MaxTaskTitle = 200

type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	AssignedTo  UserRef
	AssignedBy  *UserRef // nil once the assigning admin has been deleted
	CreatedAt   time.Time
}

// NormalizeText trims surrounding whitespace from user-supplied text fields.
func NormalizeText(s string) string { return strings.TrimSpace(s) }
