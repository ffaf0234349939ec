package server_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blazehue/TaskMasterV1/internal/models"
)

func TestCreateUpcomingTaskDefaults(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/upcoming-tasks", map[string]any{"title": "Plan sprint"})
	require.Equal(t, http.StatusCreated, w.Code)
	u := decodeBody[models.UpcomingTask](t, w)
	assert.Equal(t, "medium", u.Priority)
	assert.Nil(t, u.ProjectID)
	assert.Nil(t, u.DueDate)

	w = do(t, srv, http.MethodPost, "/api/upcoming-tasks", map[string]any{"description": "untitled"})
	requireError(t, w, http.StatusBadRequest, "MISSING_REQUIRED_FIELD")
}

func TestListUpcomingTasksOrderedByDueDate(t *testing.T) {
	srv := newTestServer(t)

	mk := func(title, due string) {
		body := map[string]any{"title": title}
		if due != "" {
			body["dueDate"] = due
		}
		w := do(t, srv, http.MethodPost, "/api/upcoming-tasks", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	mk("later", "2026-10-20T00:00:00.000Z")
	mk("soon", "2026-09-05T00:00:00.000Z")
	mk("middle", "2026-09-20T00:00:00.000Z")

	w := do(t, srv, http.MethodGet, "/api/upcoming-tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[[]models.UpcomingTask](t, w)
	require.Len(t, got, 3)
	assert.Equal(t, "soon", got[0].Title)
	assert.Equal(t, "middle", got[1].Title)
	assert.Equal(t, "later", got[2].Title)
}

func TestUpcomingTaskProjectValidated(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/upcoming-tasks", map[string]any{"title": "x", "projectId": 42})
	requireError(t, w, http.StatusBadRequest, "PROJECT_NOT_FOUND")

	p := createProject(t, srv, map[string]any{"title": "Home"})
	w = do(t, srv, http.MethodPost, "/api/upcoming-tasks", map[string]any{"title": "x", "projectId": p.ID})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateAndDeleteUpcomingTask(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/upcoming-tasks", map[string]any{"title": "old name"})
	require.Equal(t, http.StatusCreated, w.Code)
	u := decodeBody[models.UpcomingTask](t, w)

	w = do(t, srv, http.MethodPut, fmt.Sprintf("/api/upcoming-tasks?id=%d", u.ID), map[string]any{"priority": "high"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[models.UpcomingTask](t, w)
	assert.Equal(t, "high", updated.Priority)
	assert.Equal(t, "old name", updated.Title)

	w = do(t, srv, http.MethodDelete, fmt.Sprintf("/api/upcoming-tasks?id=%d", u.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[struct {
		Message      string              `json:"message"`
		UpcomingTask models.UpcomingTask `json:"upcomingTask"`
	}](t, w)
	assert.Equal(t, "Upcoming task deleted successfully", resp.Message)
	assert.Equal(t, u.ID, resp.UpcomingTask.ID)

	w = do(t, srv, http.MethodDelete, fmt.Sprintf("/api/upcoming-tasks?id=%d", u.ID), nil)
	requireError(t, w, http.StatusNotFound, "NOT_FOUND")
}
