package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
)

const taskSelect = `
	SELECT t.id, t.title, t.description, t.status, t.created_at,
		t.assigned_to, a.full_name AS assignee_name, a.email AS assignee_email,
		t.assigned_by, b.full_name AS assigner_name, b.email AS assigner_email
	FROM tasks t
	JOIN users a ON a.id = t.assigned_to
	LEFT JOIN users b ON b.id = t.assigned_by`

const taskOrder = ` ORDER BY t.created_at DESC, t.id DESC`

type taskRow struct {
	ID            string    `db:"id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	AssignedTo    string    `db:"assigned_to"`
	AssigneeName  string    `db:"assignee_name"`
	AssigneeEmail string    `db:"assignee_email"`
	AssignedBy    *string   `db:"assigned_by"`
	AssignerName  *string   `db:"assigner_name"`
	AssignerEmail *string   `db:"assigner_email"`
}

func (row taskRow) toDomain() domain.Task {
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
		CreatedAt: row.CreatedAt.UTC(),
	}
	if row.AssignedBy != nil {
		ref := domain.UserRef{ID: *row.AssignedBy}
		if row.AssignerName != nil {
			ref.FullName = *row.AssignerName
		}
		if row.AssignerEmail != nil {
			ref.Email = *row.AssignerEmail
		}
		t.AssignedBy = &ref
	}
	return t
}

type tasksRepo struct {
	db querier
}

func (r *tasksRepo) getOne(ctx context.Context, query string, args ...any) (domain.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return domain.Task{}, err
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[taskRow])
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *tasksRepo) list(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[taskRow])
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(list))
	for _, row := range list {
		tasks = append(tasks, row.toDomain())
	}
	return tasks, nil
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	var assignedBy *string
	if t.AssignedBy != nil {
		assignedBy = nullable(t.AssignedBy.ID)
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO tasks (id, title, description, assigned_to, assigned_by, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Title, t.Description, t.AssignedTo.ID, assignedBy, string(t.Status), t.CreatedAt.UTC(),
	)
	return mapWriteError(err)
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	return r.getOne(ctx, taskSelect+` WHERE t.id = $1`, id)
}

func (r *tasksRepo) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return r.list(ctx, taskSelect+taskOrder)
}

func (r *tasksRepo) ListTasksByAssignee(ctx context.Context, userID string) ([]domain.Task, error) {
	return r.list(ctx, taskSelect+` WHERE t.assigned_to = $1`+taskOrder, userID)
}

func (r *tasksRepo) GetTaskForAssignee(ctx context.Context, id, userID string) (domain.Task, error) {
	return r.getOne(ctx, taskSelect+` WHERE t.id = $1 AND t.assigned_to = $2`, id, userID)
}

func (r *tasksRepo) UpdateTaskContent(ctx context.Context, id, title, description string) error {
	return requireRow(r.db.Exec(ctx,
		`UPDATE tasks SET title = $1, description = $2 WHERE id = $3`,
		title, description, id,
	))
}

func (r *tasksRepo) UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	return requireRow(r.db.Exec(ctx,
		`UPDATE tasks SET status = $1 WHERE id = $2`,
		string(status), id,
	))
}

func (r *tasksRepo) CompleteAssignedTask(ctx context.Context, id, userID string) error {
	return requireRow(r.db.Exec(ctx,
		`UPDATE tasks SET status = 'Completed' WHERE id = $1 AND assigned_to = $2`,
		id, userID,
	))
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	return requireRow(r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id))
}
