package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Blazehue/TaskMasterV1/internal/models"
	"github.com/Blazehue/TaskMasterV1/internal/storage"
)

// resolveProjectRef reads the nullable projectId field and verifies that a
// non-null reference points at an existing project. It writes the response
// itself when validation fails.
func (s *Server) resolveProjectRef(c *gin.Context, body map[string]any) (id *int64, present, ok bool) {
	pid, present, valid := optionalID(body, "projectId")
	if !present {
		return nil, false, true
	}
	if !valid {
		respondError(c, http.StatusBadRequest, codeInvalidProjectID, "Invalid project ID")
		return nil, true, false
	}
	if pid != nil {
		exists, err := s.store.ProjectExists(c.Request.Context(), *pid)
		if err != nil {
			s.respondInternal(c, err)
			return nil, true, false
		}
		if !exists {
			respondError(c, http.StatusBadRequest, codeProjectNotFound, "Project not found")
			return nil, true, false
		}
	}
	return pid, true, true
}

// resolveTaskRef is resolveProjectRef for the taskId field.
func (s *Server) resolveTaskRef(c *gin.Context, body map[string]any) (id *int64, present, ok bool) {
	tid, present, valid := optionalID(body, "taskId")
	if !present {
		return nil, false, true
	}
	if !valid {
		respondError(c, http.StatusBadRequest, codeInvalidTaskID, "Invalid task ID")
		return nil, true, false
	}
	if tid != nil {
		exists, err := s.store.TaskExists(c.Request.Context(), *tid)
		if err != nil {
			s.respondInternal(c, err)
			return nil, true, false
		}
		if !exists {
			respondError(c, http.StatusBadRequest, codeTaskNotFound, "Task not found")
			return nil, true, false
		}
	}
	return tid, true, true
}

// handleListTasks returns a page of tasks, or a single task when the id
// query parameter is present. Supports projectId, status and priority
// filters alongside search.
func (s *Server) handleListTasks(c *gin.Context) {
	if c.Query("id") != "" {
		id, ok := queryID(c)
		if !ok {
			return
		}
		s.getTask(c, id)
		return
	}

	q := parseListQuery(c, taskListDefaults)
	f := storage.TaskFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
	if raw := c.Query("projectId"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, codeInvalidProjectID, "Invalid project ID")
			return
		}
		f.ProjectID = &n
	}

	tasks, err := s.store.ListTasks(c.Request.Context(), q, f)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleGetTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.getTask(c, id)
}

func (s *Server) getTask(c *gin.Context, id int64) {
	task, err := s.store.GetTask(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Task")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// handleCreateTask creates a task. Status defaults to todo, priority to
// medium and xpReward to 100; a projectId is checked against the projects
// table before anything is written.
func (s *Server) handleCreateTask(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	title, _ := textValue(body, "title")
	if title == "" {
		respondError(c, http.StatusBadRequest, codeMissingField, "Title is required")
		return
	}
	due, _ := optionalText(body, "dueDate")
	if due == nil {
		respondError(c, http.StatusBadRequest, codeMissingField, "Due date is required")
		return
	}

	t := models.Task{
		Title:    title,
		Status:   models.StatusTodo,
		Priority: models.PriorityMedium,
		XPReward: 100,
		DueDate:  due,
	}
	t.Description, _ = optionalText(body, "description")

	pid, present, ok := s.resolveProjectRef(c, body)
	if !ok {
		return
	}
	if present {
		t.ProjectID = pid
	}

	if st, _ := textValue(body, "status"); st != "" {
		if !models.ValidStatus(st) {
			respondError(c, http.StatusBadRequest, codeInvalidStatus, "Status must be one of: backlog, todo, inprogress, complete")
			return
		}
		t.Status = st
	}
	if pr, _ := textValue(body, "priority"); pr != "" {
		t.Priority = pr
	}
	if n, ok := intValue(body, "xpReward"); ok && n != 0 {
		t.XPReward = n
	}
	if n, ok := intValue(body, "position"); ok {
		t.Position = n
	}

	created, err := s.store.CreateTask(c.Request.Context(), t)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateTaskByQuery(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s.updateTask(c, id)
}

func (s *Server) handleUpdateTaskByPath(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.updateTask(c, id)
}

// updateTask applies a partial update shared by the query- and
// path-addressed routes.
func (s *Server) updateTask(c *gin.Context, id int64) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	changes := map[string]any{}
	if _, exists := body["title"]; exists {
		title, _ := textValue(body, "title")
		if title == "" {
			respondError(c, http.StatusBadRequest, codeInvalidTitle, "Title cannot be empty")
			return
		}
		changes["title"] = title
	}
	if v, present := optionalText(body, "description"); present {
		changes["description"] = v
	}

	pid, present, ok := s.resolveProjectRef(c, body)
	if !ok {
		return
	}
	if present {
		changes["projectId"] = pid
	}

	if _, exists := body["status"]; exists {
		st, _ := textValue(body, "status")
		if !models.ValidStatus(st) {
			respondError(c, http.StatusBadRequest, codeInvalidStatus, "Status must be one of: backlog, todo, inprogress, complete")
			return
		}
		changes["status"] = st
	}
	if _, exists := body["priority"]; exists {
		if pr, _ := textValue(body, "priority"); pr != "" {
			changes["priority"] = pr
		}
	}
	if _, exists := body["xpReward"]; exists {
		if n, ok := intValue(body, "xpReward"); ok {
			changes["xpReward"] = n
		}
	}
	if v, present := optionalText(body, "dueDate"); present {
		changes["dueDate"] = v
	}
	if _, exists := body["position"]; exists {
		if n, ok := intValue(body, "position"); ok {
			changes["position"] = n
		}
	}

	updated, err := s.store.UpdateTask(c.Request.Context(), id, changes)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Task")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// handleUpdateTaskStatus changes only the status of the addressed task, the
// board's drag-between-columns operation.
func (s *Server) handleUpdateTaskStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	body, ok := bindBody(c)
	if !ok {
		return
	}

	st, _ := textValue(body, "status")
	if !models.ValidStatus(st) {
		respondError(c, http.StatusBadRequest, codeInvalidStatus, "Status must be one of: backlog, todo, inprogress, complete")
		return
	}

	task, err := s.store.UpdateTaskStatus(c.Request.Context(), id, st)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Task")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTaskByQuery(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s.deleteTask(c, id)
}

func (s *Server) handleDeleteTaskByPath(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.deleteTask(c, id)
}

func (s *Server) deleteTask(c *gin.Context, id int64) {
	deleted, err := s.store.DeleteTask(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Task")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully", "task": deleted})
}
