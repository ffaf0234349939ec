package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Blazehue/TaskMasterV1/internal/models"
	"github.com/Blazehue/TaskMasterV1/internal/storage"
)

// handleListCalendarEvents returns events ordered by start date ascending.
// startDate and endDate query parameters bound the range inclusively; either
// side may be given alone.
func (s *Server) handleListCalendarEvents(c *gin.Context) {
	if c.Query("id") != "" {
		id, ok := queryID(c)
		if !ok {
			return
		}
		event, err := s.store.GetCalendarEvent(c.Request.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c, "Calendar event")
			return
		}
		if err != nil {
			s.respondInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, event)
		return
	}

	limit := eventListDefaults.limit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > eventListDefaults.maxLimit {
		limit = eventListDefaults.maxLimit
	}
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			offset = n
		}
	}

	f := storage.EventFilter{
		StartDate: strings.TrimSpace(c.Query("startDate")),
		EndDate:   strings.TrimSpace(c.Query("endDate")),
	}
	if raw := c.Query("taskId"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, codeInvalidTaskID, "Invalid task ID")
			return
		}
		f.TaskID = &n
	}

	events, err := s.store.ListCalendarEvents(c.Request.Context(), limit, offset, f)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// handleCreateCalendarEvent creates an event. Title and start date are
// required; a taskId is checked against the tasks table before anything is
// written.
func (s *Server) handleCreateCalendarEvent(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	title, _ := textValue(body, "title")
	if title == "" {
		respondError(c, http.StatusBadRequest, codeMissingField, "Title is required")
		return
	}
	start, _ := textValue(body, "startDate")
	if start == "" {
		respondError(c, http.StatusBadRequest, codeMissingField, "Start date is required")
		return
	}

	e := models.CalendarEvent{Title: title, StartDate: start}
	e.Description, _ = optionalText(body, "description")

	tid, present, ok := s.resolveTaskRef(c, body)
	if !ok {
		return
	}
	if present {
		e.TaskID = tid
	}

	e.EndDate, _ = optionalText(body, "endDate")
	if v, ok := boolValue(body, "allDay"); ok {
		e.AllDay = v
	}

	created, err := s.store.CreateCalendarEvent(c.Request.Context(), e)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleUpdateCalendarEvent applies a partial update; a changed taskId goes
// through the same existence check as on create.
func (s *Server) handleUpdateCalendarEvent(c *gin.Context) {
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

	tid, present, ok := s.resolveTaskRef(c, body)
	if !ok {
		return
	}
	if present {
		changes["taskId"] = tid
	}

	if _, exists := body["startDate"]; exists {
		start, _ := textValue(body, "startDate")
		if start == "" {
			respondError(c, http.StatusBadRequest, codeMissingField, "Start date cannot be empty")
			return
		}
		changes["startDate"] = start
	}
	if v, present := optionalText(body, "endDate"); present {
		changes["endDate"] = v
	}
	if _, exists := body["allDay"]; exists {
		if v, ok := boolValue(body, "allDay"); ok {
			changes["allDay"] = v
		}
	}

	updated, err := s.store.UpdateCalendarEvent(c.Request.Context(), id, changes)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Calendar event")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// handleDeleteCalendarEvent removes an event and echoes its prior content.
func (s *Server) handleDeleteCalendarEvent(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	deleted, err := s.store.DeleteCalendarEvent(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		notFound(c, "Calendar event")
		return
	}
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Calendar event deleted successfully", "event": deleted})
}
