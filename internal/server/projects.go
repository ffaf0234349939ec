package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Blazehue/TaskMasterV1/internal/models"
	"github.com/Blazehue/TaskMasterV1/internal/storage"
)

// handleListProjects returns a page of projects, or a single project when
// the id query parameter is present.
func (s *Server) handleListProjects(c *gin.Context) {
	if c.Query("id") != "" {
		s.handleGetProject(c)
		return
	}

	q := parseListQuery(c, projectListDefaults)
	projects, err := s.store.ListProjects(c.Request.Context(), q)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (s *Server) handleGetProject(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	project, err := s.store.GetProject(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Project")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// handleCreateProject creates a project, optionally together with a batch of
// upcoming tasks that land linked to the new project.
func (s *Server) handleCreateProject(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	title, _ := textValue(body, "title")
	if title == "" {
		respondError(c, http.StatusBadRequest, codeMissingField, "Title is required")
		return
	}

	p := models.Project{Title: title}
	p.Description, _ = optionalText(body, "description")
	if n, ok := intValue(body, "taskCount"); ok {
		p.TaskCount = n
	}
	if n, ok := intValue(body, "completedTasks"); ok {
		p.CompletedTasks = n
	}
	p.DueDate, _ = optionalText(body, "dueDate")
	p.Category, _ = optionalText(body, "category")

	upcoming, ok := parseUpcomingBatch(c, body)
	if !ok {
		return
	}

	created, err := s.store.CreateProject(c.Request.Context(), p, upcoming)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// parseUpcomingBatch validates the optional upcomingTasks array on project
// creation. Every entry needs a title; defaults mirror the standalone
// upcoming-task endpoint.
func parseUpcomingBatch(c *gin.Context, body map[string]any) ([]models.UpcomingTask, bool) {
	raw, exists := body["upcomingTasks"]
	if !exists || raw == nil {
		return nil, true
	}
	items, ok := raw.([]any)
	if !ok {
		respondError(c, http.StatusBadRequest, codeInvalidBody, "upcomingTasks must be an array")
		return nil, false
	}

	batch := make([]models.UpcomingTask, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			respondError(c, http.StatusBadRequest, codeInvalidBody, "upcomingTasks entries must be objects")
			return nil, false
		}
		title, _ := textValue(m, "title")
		if title == "" {
			respondError(c, http.StatusBadRequest, codeMissingField, "Upcoming task title is required")
			return nil, false
		}
		u := models.UpcomingTask{Title: title, Priority: models.PriorityMedium}
		u.Description, _ = optionalText(m, "description")
		u.DueDate, _ = optionalText(m, "dueDate")
		if pr, _ := textValue(m, "priority"); pr != "" {
			u.Priority = pr
		}
		batch = append(batch, u)
	}
	return batch, true
}

// handleUpdateProject applies a partial update to the project addressed by
// the id query parameter.
func (s *Server) handleUpdateProject(c *gin.Context) {
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
	if _, exists := body["taskCount"]; exists {
		if n, ok := intValue(body, "taskCount"); ok {
			changes["taskCount"] = n
		}
	}
	if _, exists := body["completedTasks"]; exists {
		if n, ok := intValue(body, "completedTasks"); ok {
			changes["completedTasks"] = n
		}
	}
	if v, present := optionalText(body, "dueDate"); present {
		changes["dueDate"] = v
	}
	if v, present := optionalText(body, "category"); present {
		changes["category"] = v
	}

	updated, err := s.store.UpdateProject(c.Request.Context(), id, changes)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Project")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// handleDeleteProject removes a project and echoes its last known content.
// Tasks pointing at the project are left in place with their stale reference.
func (s *Server) handleDeleteProject(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	deleted, err := s.store.DeleteProject(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Project")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully", "project": deleted})
}
