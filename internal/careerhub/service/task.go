package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store"
	"github.com/aussiebroadwan/careerhub/pkg/idx"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

// TaskService covers both the admin task board and a user's own task list.
type TaskService struct {
	Store *store.Handle
	Now   func() time.Time
}

type NewTask struct {
	Title         string
	Description   string
	AssignToEmail string
}

func (s *TaskService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create assigns a new Pending task to the user with the given email.
func (s *TaskService) Create(ctx context.Context, adminID string, in NewTask) (domain.Task, error) {
	title, err := validateTitle(in.Title)
	if err != nil {
		return domain.Task{}, err
	}
	desc, err := validateDescription(in.Description)
	if err != nil {
		return domain.Task{}, err
	}
	email, err := normalizeEmail(in.AssignToEmail)
	if err != nil {
		return domain.Task{}, err
	}

	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	assignee, err := st.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Task{}, fmt.Errorf("%w: %s", ErrAssigneeNotFound, email)
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to load assignee: %w", err)
	}
	admin, err := getUser(ctx, st, adminID)
	if err != nil {
		return domain.Task{}, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	assigner := admin.Ref()
	t := domain.Task{
		ID:          idx.NewAt(now).String(),
		Title:       title,
		Description: desc,
		Status:      domain.TaskPending,
		AssignedTo:  assignee.Ref(),
		AssignedBy:  &assigner,
		CreatedAt:   now,
	}
	if err := st.Tasks().CreateTask(ctx, t); err != nil {
		return domain.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	slogx.FromContext(ctx).Info("task assigned", "task_id", t.ID, "assignee_id", assignee.ID)
	return t, nil
}

// List returns every task, newest first.
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return st.Tasks().ListTasks(ctx)
}

// ListForUser returns the tasks assigned to userID, newest first.
func (s *TaskService) ListForUser(ctx context.Context, userID string) ([]domain.Task, error) {
	st, err := s.Store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return st.Tasks().ListTasksByAssignee(ctx, userID)
}

// GetForUser returns ErrTaskNotFound for tasks assigned to someone else.
func (s *TaskService) GetForUser(ctx context.Context, taskID, userID string) (domain.Task, error) {
	if !idx.Valid(taskID) {
		return domain.Task{}, ErrTaskNotFound
	}
	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	t, err := st.Tasks().GetTaskForAssignee(ctx, taskID, userID)
	if err != nil {
		return domain.Task{}, mapTaskError(err)
	}
	return t, nil
}

// Complete marks the user's own task Completed. Completing twice is a no-op.
func (s *TaskService) Complete(ctx context.Context, taskID, userID string) (domain.Task, error) {
	if !idx.Valid(taskID) {
		return domain.Task{}, ErrTaskNotFound
	}
	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	if err := st.Tasks().CompleteAssignedTask(ctx, taskID, userID); err != nil {
		return domain.Task{}, mapTaskError(err)
	}
	t, err := st.Tasks().GetTaskForAssignee(ctx, taskID, userID)
	if err != nil {
		return domain.Task{}, mapTaskError(err)
	}
	return t, nil
}

// UpdateContent changes title and/or description. At least one is required;
// omitted fields keep their current value.
func (s *TaskService) UpdateContent(ctx context.Context, taskID string, title, description *string) (domain.Task, error) {
	if title == nil && description == nil {
		return domain.Task{}, ErrNothingToUpdate
	}
	if !idx.Valid(taskID) {
		return domain.Task{}, ErrTaskNotFound
	}

	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	t, err := st.Tasks().GetTaskByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, mapTaskError(err)
	}

	if title != nil {
		if t.Title, err = validateTitle(*title); err != nil {
			return domain.Task{}, err
		}
	}
	if description != nil {
		if t.Description, err = validateDescription(*description); err != nil {
			return domain.Task{}, err
		}
	}

	if err := st.Tasks().UpdateTaskContent(ctx, t.ID, t.Title, t.Description); err != nil {
		return domain.Task{}, mapTaskError(err)
	}
	return t, nil
}

// UpdateStatus sets any valid status. Admin only.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) (domain.Task, error) {
	if !status.Valid() {
		return domain.Task{}, invalid("status", "status must be Pending or Completed")
	}
	if !idx.Valid(taskID) {
		return domain.Task{}, ErrTaskNotFound
	}
	st, err := s.Store.Get(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	if err := st.Tasks().UpdateTaskStatus(ctx, taskID, status); err != nil {
		return domain.Task{}, mapTaskError(err)
	}
	t, err := st.Tasks().GetTaskByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, mapTaskError(err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	if !idx.Valid(taskID) {
		return ErrTaskNotFound
	}
	st, err := s.Store.Get(ctx)
	if err != nil {
		return err
	}
	if err := st.Tasks().DeleteTask(ctx, taskID); err != nil {
		return mapTaskError(err)
	}
	slogx.FromContext(ctx).Info("task deleted", "task_id", taskID)
	return nil
}

func validateTitle(title string) (string, error) {
	title = domain.NormalizeText(title)
	if title == "" {
		return "", invalid("title", "title is required")
	}
	if utf8.RuneCountInString(title) > domain.MaxTaskTitle {
		return "", invalid("title", "title cannot be more than 200 characters")
	}
	return title, nil
}

func validateDescription(desc string) (string, error) {
	desc = domain.NormalizeText(desc)
	if desc == "" {
		return "", invalid("description", "description is required")
	}
	return desc, nil
}

func mapTaskError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}
