package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blazehue/TaskMasterV1/internal/models"
	"github.com/Blazehue/TaskMasterV1/internal/server"
	"github.com/Blazehue/TaskMasterV1/internal/storage/memory"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return server.New(memory.New(logger), logger, "", nil)
}

func do(t *testing.T, srv *server.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func requireError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, w.Code, "body: %s", w.Body.String())
	e := decodeBody[errorBody](t, w)
	assert.Equal(t, code, e.Code)
	assert.NotEmpty(t, e.Error)
}

func createProject(t *testing.T, srv *server.Server, body map[string]any) models.Project {
	t.Helper()
	w := do(t, srv, http.MethodPost, "/api/projects", body)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	return decodeBody[models.Project](t, w)
}

// createTask fills in the required dueDate when the test does not care about
// it.
func createTask(t *testing.T, srv *server.Server, body map[string]any) models.Task {
	t.Helper()
	if _, ok := body["dueDate"]; !ok {
		body["dueDate"] = "2026-09-15T00:00:00.000Z"
	}
	w := do(t, srv, http.MethodPost, "/api/tasks", body)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	return decodeBody[models.Task](t, w)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/api/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestUnknownAPIEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodGet, "/api/nonsense", nil)
	requireError(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestInvalidJSONBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	requireError(t, w, http.StatusBadRequest, "INVALID_BODY")
}
