package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
)

func TestTasks(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	admin := env.seedAdmin(t)
	a := env.register(t, "a@x.com", "")
	b := env.register(t, "b@x.com", "")

	task, err := env.tasks.Create(ctx, admin.ID, NewTask{
		Title:         "  Prepare CV ",
		Description:   "One page",
		AssignToEmail: "A@X.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Prepare CV", task.Title)
	require.Equal(t, domain.TaskPending, task.Status)
	require.Equal(t, a.ID, task.AssignedTo.ID)
	require.Equal(t, admin.ID, task.AssignedBy.ID)

	t.Run("unknown assignee", func(t *testing.T) {
		_, err := env.tasks.Create(ctx, admin.ID, NewTask{Title: "x", Description: "y", AssignToEmail: "ghost@x.com"})
		require.ErrorIs(t, err, ErrAssigneeNotFound)
		require.Contains(t, err.Error(), "ghost@x.com")
	})

	t.Run("validation", func(t *testing.T) {
		_, err := env.tasks.Create(ctx, admin.ID, NewTask{Title: strings.Repeat("t", 201), Description: "y", AssignToEmail: "a@x.com"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "title", verr.Field)

		_, err = env.tasks.Create(ctx, admin.ID, NewTask{Title: "x", Description: " ", AssignToEmail: "a@x.com"})
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "description", verr.Field)
	})

	t.Run("assignee visibility", func(t *testing.T) {
		mine, err := env.tasks.ListForUser(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)

		theirs, err := env.tasks.ListForUser(ctx, b.ID)
		require.NoError(t, err)
		require.Empty(t, theirs)

		_, err = env.tasks.GetForUser(ctx, task.ID, b.ID)
		require.ErrorIs(t, err, ErrTaskNotFound)
		_, err = env.tasks.Complete(ctx, task.ID, b.ID)
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("assignee completes", func(t *testing.T) {
		done, err := env.tasks.Complete(ctx, task.ID, a.ID)
		require.NoError(t, err)
		require.Equal(t, domain.TaskCompleted, done.Status)
		require.Equal(t, "Prepare CV", done.Title)
	})

	t.Run("content update", func(t *testing.T) {
		_, err := env.tasks.UpdateContent(ctx, task.ID, nil, nil)
		require.ErrorIs(t, err, ErrNothingToUpdate)

		updated, err := env.tasks.UpdateContent(ctx, task.ID, nil, ptr("Two pages"))
		require.NoError(t, err)
		require.Equal(t, "Prepare CV", updated.Title)
		require.Equal(t, "Two pages", updated.Description)

		_, err = env.tasks.UpdateContent(ctx, "missing", ptr("x"), nil)
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("admin status", func(t *testing.T) {
		got, err := env.tasks.UpdateStatus(ctx, task.ID, domain.TaskPending)
		require.NoError(t, err)
		require.Equal(t, domain.TaskPending, got.Status)

		_, err = env.tasks.UpdateStatus(ctx, task.ID, "Archived")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("newest first", func(t *testing.T) {
		env.clock.Advance(time.Second)
		second, err := env.tasks.Create(ctx, admin.ID, NewTask{Title: "Mock interview", Description: "Friday", AssignToEmail: "a@x.com"})
		require.NoError(t, err)

		all, err := env.tasks.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, second.ID, all[0].ID)
		require.Equal(t, task.ID, all[1].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, env.tasks.Delete(ctx, task.ID))
		require.ErrorIs(t, env.tasks.Delete(ctx, task.ID), ErrTaskNotFound)
	})
}
