package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Blazehue/TaskMasterV1/internal/models"
	"github.com/Blazehue/TaskMasterV1/internal/storage"
)

// handleListUpcomingTasks returns a page of upcoming tasks, soonest due date
// first by default, or a single row when the id query parameter is present.
func (s *Server) handleListUpcomingTasks(c *gin.Context) {
	if c.Query("id") != "" {
		id, ok := queryID(c)
		if !ok {
			return
		}
		task, err := s.store.GetUpcomingTask(c.Request.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Upcoming task")
			return
		}
		if err != nil {
			s.respondInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, task)
		return
	}

	q := parseListQuery(c, upcomingListDefaults)
	f := storage.UpcomingFilter{Priority: c.Query("priority")}
	if raw := c.Query("projectId"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, codeInvalidProjectID, "Invalid project ID")
			return
		}
		f.ProjectID = &n
	}

	tasks, err := s.store.ListUpcomingTasks(c.Request.Context(), q, f)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// handleCreateUpcomingTask creates an upcoming task with priority defaulting
// to medium.
func (s *Server) handleCreateUpcomingTask(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	title, _ := textValue(body, "title")
	if title == "" {
		respondError(c, http.StatusBadRequest, codeMissingField, "Title is required")
		return
	}

	t := models.UpcomingTask{Title: title, Priority: models.PriorityMedium}
	t.Description, _ = optionalText(body, "description")

	pid, present, ok := s.resolveProjectRef(c, body)
	if !ok {
		return
	}
	if present {
		t.ProjectID = pid
	}

	if pr, _ := textValue(body, "priority"); pr != "" {
		t.Priority = pr
	}
	t.DueDate, _ = optionalText(body, "dueDate")

	created, err := s.store.CreateUpcomingTask(c.Request.Context(), t)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleUpdateUpcomingTask applies a partial update to the row addressed by
// the id query parameter.
func (s *Server) handleUpdateUpcomingTask(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
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

	if _, exists := body["priority"]; exists {
		if pr, _ := textValue(body, "priority"); pr != "" {
			changes["priority"] = pr
		}
	}
	if v, present := optionalText(body, "dueDate"); present {
		changes["dueDate"] = v
	}

	updated, err := s.store.UpdateUpcomingTask(c.Request.Context(), id, changes)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Upcoming task")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// handleDeleteUpcomingTask removes an upcoming task and echoes its prior
// content.
func (s *Server) handleDeleteUpcomingTask(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	deleted, err := s.store.DeleteUpcomingTask(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Upcoming task")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Upcoming task deleted successfully", "upcomingTask": deleted})
}
