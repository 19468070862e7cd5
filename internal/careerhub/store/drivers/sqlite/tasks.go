package sqlite

import (
	"context"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/store/drivers/sqlite/gen"
)

type tasksRepo struct {
	q *gen.Queries
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	params := gen.CreateTaskParams{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  t.AssignedTo.ID,
		Status:      string(t.Status),
		CreatedAt:   toMillis(t.CreatedAt),
	}
	if t.AssignedBy != nil {
		params.AssignedBy = mapStringNull(t.AssignedBy.ID)
	}
	return mapWriteError(r.q.CreateTask(ctx, params))
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row, err := r.q.GetTaskByID(ctx, id)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return mapTask(row), nil
}

func (r *tasksRepo) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.q.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return mapTasks(rows), nil
}

func (r *tasksRepo) ListTasksByAssignee(ctx context.Context, userID string) ([]domain.Task, error) {
	rows, err := r.q.ListTasksByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapTasks(rows), nil
}

func (r *tasksRepo) GetTaskForAssignee(ctx context.Context, id, userID string) (domain.Task, error) {
	row, err := r.q.GetTaskForAssignee(ctx, gen.GetTaskForAssigneeParams{ID: id, AssignedTo: userID})
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return mapTask(row), nil
}

func (r *tasksRepo) UpdateTaskContent(ctx context.Context, id, title, description string) error {
	return requireRow(r.q.UpdateTaskContent(ctx, gen.UpdateTaskContentParams{
		Title:       title,
		Description: description,
		ID:          id,
	}))
}

func (r *tasksRepo) UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	return requireRow(r.q.UpdateTaskStatus(ctx, gen.UpdateTaskStatusParams{
		Status: string(status),
		ID:     id,
	}))
}

func (r *tasksRepo) CompleteAssignedTask(ctx context.Context, id, userID string) error {
	return requireRow(r.q.CompleteAssignedTask(ctx, gen.CompleteAssignedTaskParams{
		ID:         id,
		AssignedTo: userID,
	}))
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	return requireRow(r.q.DeleteTask(ctx, id))
}

func mapTasks(rows []gen.TaskView) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTask(row))
	}
	return tasks
}
