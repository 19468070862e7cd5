package careerhub_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
)

func TestTaskLifecycle(t *testing.T) {
	client := setupContainer(t, nil)
	ctx := t.Context()

	admin := adminSession(t, client)
	user, userID, _ := enrolledUser(t, client, "meera@example.com", "")

	task, err := admin.CreateTask(ctx, hubsdk.CreateTaskRequest{
		Title:         "Mock interview",
		Description:   "Book a slot with the placement cell",
		AssignToEmail: "meera@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Pending", task.Status)
	require.Equal(t, userID, task.AssignedTo.ID)

	_, err = admin.CreateTask(ctx, hubsdk.CreateTaskRequest{
		Title: "x", Description: "y", AssignToEmail: "nobody@example.com",
	})
	assertAPIError(t, err, http.StatusNotFound, hubsdk.ErrorCodeNotFound)

	title := "Mock interview round 1"
	edited, err := admin.UpdateTask(ctx, task.ID, hubsdk.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, edited.Title)

	mine, err := user.MyTasks(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	one, err := user.MyTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, title, one.Title)
	require.NotNil(t, one.AssignedBy)
	require.Equal(t, adminEmail, one.AssignedBy.Email)

	done, err := user.CompleteTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, "Completed", done.Status)

	_, err = user.Stats(ctx)
	assertAPIError(t, err, http.StatusForbidden, hubsdk.ErrorCodeForbidden)

	stats, err := admin.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.TotalUsers)

	// Deleting the user removes their tasks and ends their session.
	require.NoError(t, admin.DeleteUser(ctx, userID))

	tasks, err := admin.ListTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)

	_, err = user.Profile(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, hubsdk.ErrorCodeInvalidToken)
}

func TestDeactivatedUser(t *testing.T) {
	client := setupContainer(t, nil)
	ctx := t.Context()

	admin := adminSession(t, client)
	user, userID, _ := enrolledUser(t, client, "kiran@example.com", "")

	found, err := admin.GetUser(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Active", found.Status)

	inactive := "Inactive"
	_, err = admin.UpdateUser(ctx, userID, hubsdk.UpdateUserRequest{Status: &inactive})
	require.NoError(t, err)

	_, err = user.Profile(ctx)
	assertAPIError(t, err, http.StatusForbidden, hubsdk.ErrorCodeAccountInactive)

	_, err = client.Login(ctx, "kiran@example.com", userPassword)
	assertAPIError(t, err, http.StatusForbidden, hubsdk.ErrorCodeAccountInactive)
}
