package server_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blazehue/TaskMasterV1/internal/models"
)

func TestCreateTaskDefaults(t *testing.T) {
	srv := newTestServer(t)

	task := createTask(t, srv, map[string]any{"title": "Write docs", "dueDate": "2026-10-01T00:00:00.000Z"})
	assert.Equal(t, "todo", task.Status)
	assert.Equal(t, "medium", task.Priority)
	assert.EqualValues(t, 100, task.XPReward)
	assert.EqualValues(t, 0, task.Position)
	assert.Nil(t, task.ProjectID)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-10-01T00:00:00.000Z", *task.DueDate)

	// The row reads back exactly as it was returned on create.
	w := do(t, srv, http.MethodGet, fmt.Sprintf("/api/tasks/%d", task.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, task, decodeBody[models.Task](t, w))
}

func TestCreateTaskZeroXPRewardGetsDefault(t *testing.T) {
	srv := newTestServer(t)

	task := createTask(t, srv, map[string]any{"title": "Cheap", "xpReward": 0})
	assert.EqualValues(t, 100, task.XPReward)

	task = createTask(t, srv, map[string]any{"title": "Custom", "xpReward": 250})
	assert.EqualValues(t, 250, task.XPReward)
}

func TestCreateTaskInvalidStatus(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/tasks", map[string]any{
		"title":   "Bad",
		"dueDate": "2026-10-01T00:00:00.000Z",
		"status":  "doing",
	})
	requireError(t, w, http.StatusBadRequest, "INVALID_STATUS")

	w = do(t, srv, http.MethodGet, "/api/tasks", nil)
	assert.Empty(t, decodeBody[[]models.Task](t, w))
}

func TestCreateTaskMissingDueDate(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/tasks", map[string]any{"title": "No deadline"})
	requireError(t, w, http.StatusBadRequest, "MISSING_REQUIRED_FIELD")

	w = do(t, srv, http.MethodGet, "/api/tasks", nil)
	assert.Empty(t, decodeBody[[]models.Task](t, w))
}

func TestCreateTaskProjectReference(t *testing.T) {
	srv := newTestServer(t)
	p := createProject(t, srv, map[string]any{"title": "Home"})

	due := "2026-10-01T00:00:00.000Z"
	w := do(t, srv, http.MethodPost, "/api/tasks", map[string]any{"title": "x", "dueDate": due, "projectId": 999})
	requireError(t, w, http.StatusBadRequest, "PROJECT_NOT_FOUND")

	w = do(t, srv, http.MethodPost, "/api/tasks", map[string]any{"title": "x", "dueDate": due, "projectId": "abc"})
	requireError(t, w, http.StatusBadRequest, "INVALID_PROJECT_ID")

	// Zero and null both mean "no project".
	task := createTask(t, srv, map[string]any{"title": "unlinked", "projectId": 0})
	assert.Nil(t, task.ProjectID)
	task = createTask(t, srv, map[string]any{"title": "also unlinked", "projectId": nil})
	assert.Nil(t, task.ProjectID)

	task = createTask(t, srv, map[string]any{"title": "linked", "projectId": p.ID})
	require.NotNil(t, task.ProjectID)
	assert.Equal(t, p.ID, *task.ProjectID)
}

func TestUpdateTaskPartial(t *testing.T) {
	srv := newTestServer(t)

	task := createTask(t, srv, map[string]any{
		"title":       "Refactor parser",
		"description": "split the lexer out",
		"priority":    "high",
	})

	time.Sleep(10 * time.Millisecond)
	w := do(t, srv, http.MethodPut, fmt.Sprintf("/api/tasks?id=%d", task.ID), map[string]any{"status": "inprogress"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[models.Task](t, w)

	assert.Equal(t, "inprogress", updated.Status)
	assert.Equal(t, "Refactor parser", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "split the lexer out", *updated.Description)
	assert.Equal(t, "high", updated.Priority)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, task.UpdatedAt)
}

func TestUpdateTaskClearsProjectReference(t *testing.T) {
	srv := newTestServer(t)
	p := createProject(t, srv, map[string]any{"title": "Home"})
	task := createTask(t, srv, map[string]any{"title": "linked", "projectId": p.ID})

	w := do(t, srv, http.MethodPut, fmt.Sprintf("/api/tasks?id=%d", task.ID), map[string]any{"projectId": nil})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody[models.Task](t, w).ProjectID)

	w = do(t, srv, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), map[string]any{"projectId": p.ID})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, srv, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), map[string]any{"projectId": 0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody[models.Task](t, w).ProjectID)
}

func TestUpdateTaskInvalidStatusLeavesRowUntouched(t *testing.T) {
	srv := newTestServer(t)
	task := createTask(t, srv, map[string]any{"title": "steady"})

	w := do(t, srv, http.MethodPut, fmt.Sprintf("/api/tasks?id=%d", task.ID), map[string]any{"status": "finished"})
	requireError(t, w, http.StatusBadRequest, "INVALID_STATUS")

	w = do(t, srv, http.MethodGet, fmt.Sprintf("/api/tasks/%d", task.ID), nil)
	got := decodeBody[models.Task](t, w)
	assert.Equal(t, "todo", got.Status)
	assert.Equal(t, task.UpdatedAt, got.UpdatedAt)
}

func TestUpdateTaskStatusEndpoint(t *testing.T) {
	srv := newTestServer(t)
	task := createTask(t, srv, map[string]any{"title": "move me"})

	w := do(t, srv, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", task.ID), map[string]any{"status": "complete"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "complete", decodeBody[models.Task](t, w).Status)

	// Board column ids are not statuses.
	w = do(t, srv, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", task.ID), map[string]any{"status": "doing"})
	requireError(t, w, http.StatusBadRequest, "INVALID_STATUS")

	w = do(t, srv, http.MethodGet, fmt.Sprintf("/api/tasks/%d", task.ID), nil)
	assert.Equal(t, "complete", decodeBody[models.Task](t, w).Status)

	w = do(t, srv, http.MethodPatch, "/api/tasks/999/status", map[string]any{"status": "todo"})
	requireError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestDeleteTaskByPath(t *testing.T) {
	srv := newTestServer(t)
	task := createTask(t, srv, map[string]any{"title": "goner"})

	w := do(t, srv, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[struct {
		Message string      `json:"message"`
		Task    models.Task `json:"task"`
	}](t, w)
	assert.Equal(t, "Task deleted successfully", resp.Message)
	assert.Equal(t, "goner", resp.Task.Title)

	w = do(t, srv, http.MethodGet, fmt.Sprintf("/api/tasks/%d", task.ID), nil)
	requireError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestListTasksFilters(t *testing.T) {
	srv := newTestServer(t)
	p := createProject(t, srv, map[string]any{"title": "Home"})

	createTask(t, srv, map[string]any{"title": "a", "projectId": p.ID, "status": "todo", "priority": "high"})
	createTask(t, srv, map[string]any{"title": "b", "projectId": p.ID, "status": "complete"})
	createTask(t, srv, map[string]any{"title": "c", "status": "todo"})

	w := do(t, srv, http.MethodGet, fmt.Sprintf("/api/tasks?projectId=%d", p.ID), nil)
	assert.Len(t, decodeBody[[]models.Task](t, w), 2)

	w = do(t, srv, http.MethodGet, "/api/tasks?status=todo", nil)
	assert.Len(t, decodeBody[[]models.Task](t, w), 2)

	w = do(t, srv, http.MethodGet, fmt.Sprintf("/api/tasks?projectId=%d&status=todo&priority=high", p.ID), nil)
	got := decodeBody[[]models.Task](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
}

func TestListTasksSearch(t *testing.T) {
	srv := newTestServer(t)

	createTask(t, srv, map[string]any{"title": "Fix login bug"})
	createTask(t, srv, map[string]any{"title": "Ship release", "description": "blocked by login issue"})
	createTask(t, srv, map[string]any{"title": "Unrelated"})

	w := do(t, srv, http.MethodGet, "/api/tasks?search=login", nil)
	assert.Len(t, decodeBody[[]models.Task](t, w), 2)
}
