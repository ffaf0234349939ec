package memory_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blazehue/TaskMasterV1/internal/models"
	"github.com/Blazehue/TaskMasterV1/internal/storage"
	"github.com/Blazehue/TaskMasterV1/internal/storage/memory"
)

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func str(s string) *string { return &s }

func TestNotFoundErrors(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.GetProject(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.UpdateTask(ctx, 1, map[string]any{"title": "x"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.DeleteCalendarEvent(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIDsAreSequentialPerResource(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	p1, err := store.CreateProject(ctx, models.Project{Title: "a"}, nil)
	require.NoError(t, err)
	p2, err := store.CreateProject(ctx, models.Project{Title: "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, p1.ID+1, p2.ID)

	task, err := store.CreateTask(ctx, models.Task{Title: "t", Status: "todo", Priority: "medium"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, task.ID)
}

func TestCreateProjectLinksUpcomingBatch(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	p, err := store.CreateProject(ctx, models.Project{Title: "Launch"}, []models.UpcomingTask{
		{Title: "one", Priority: "medium"},
		{Title: "two", Priority: "high"},
	})
	require.NoError(t, err)

	list, err := store.ListUpcomingTasks(ctx, storage.ListQuery{Limit: 50, Order: "asc"}, storage.UpcomingFilter{ProjectID: &p.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestSearchIsCaseInsensitiveOverBothFields(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.CreateTask(ctx, models.Task{Title: "Fix LOGIN page", Status: "todo", Priority: "medium"})
	require.NoError(t, err)
	_, err = store.CreateTask(ctx, models.Task{Title: "Release", Description: str("blocked on login"), Status: "todo", Priority: "medium"})
	require.NoError(t, err)
	_, err = store.CreateTask(ctx, models.Task{Title: "Other", Status: "todo", Priority: "medium"})
	require.NoError(t, err)

	got, err := store.ListTasks(ctx, storage.ListQuery{Limit: 10, Search: "login"}, storage.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSortingAndPagination(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	titles := []string{"charlie", "alpha", "bravo"}
	for _, title := range titles {
		_, err := store.CreateProject(ctx, models.Project{Title: title}, nil)
		require.NoError(t, err)
	}

	got, err := store.ListProjects(ctx, storage.ListQuery{Limit: 10, Sort: "title", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "alpha", got[0].Title)
	assert.Equal(t, "charlie", got[2].Title)

	got, err = store.ListProjects(ctx, storage.ListQuery{Limit: 2, Offset: 2, Sort: "title", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "charlie", got[0].Title)

	got, err = store.ListProjects(ctx, storage.ListQuery{Limit: 2, Offset: 10, Sort: "title", Order: "asc"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNilDueDatesSortFirstAscending(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.CreateUpcomingTask(ctx, models.UpcomingTask{Title: "dated", DueDate: str("2026-09-10T00:00:00.000Z"), Priority: "medium"})
	require.NoError(t, err)
	_, err = store.CreateUpcomingTask(ctx, models.UpcomingTask{Title: "undated", Priority: "medium"})
	require.NoError(t, err)

	got, err := store.ListUpcomingTasks(ctx, storage.ListQuery{Limit: 50, Order: "asc"}, storage.UpcomingFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "undated", got[0].Title)
}

func TestPartialUpdateAppliesOnlyPresentKeys(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, models.Task{
		Title:       "original",
		Description: str("keep"),
		Status:      "todo",
		Priority:    "high",
		XPReward:    100,
	})
	require.NoError(t, err)

	updated, err := store.UpdateTask(ctx, task.ID, map[string]any{
		"status":   "complete",
		"xpReward": int64(300),
	})
	require.NoError(t, err)
	assert.Equal(t, "complete", updated.Status)
	assert.EqualValues(t, 300, updated.XPReward)
	assert.Equal(t, "original", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "keep", *updated.Description)

	updated, err = store.UpdateTask(ctx, task.ID, map[string]any{"description": (*string)(nil)})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
}

func TestDeleteReturnsPriorContent(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	e, err := store.CreateCalendarEvent(ctx, models.CalendarEvent{Title: "gone soon", StartDate: "2026-09-10T09:00:00.000Z"})
	require.NoError(t, err)

	deleted, err := store.DeleteCalendarEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, deleted)

	_, err = store.GetCalendarEvent(ctx, e.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
