// Package storage defines the repository interface shared by the SQLite and
// in-memory adapters, plus the query types the REST layer feeds into it.
package storage

import (
	"context"
	"errors"

	"github.com/Blazehue/TaskMasterV1/internal/models"
)

// ErrNotFound is returned when a row does not exist for the given id.
var ErrNotFound = errors.New("not found")

// ListQuery carries pagination, search and sorting for collection reads.
// Limit and Offset arrive pre-clamped by the HTTP layer; Sort falls back to
// the resource default when it is not in the resource's allow-list; Order is
// "asc" or "desc".
type ListQuery struct {
	Limit  int
	Offset int
	Search string
	Sort   string
	Order  string
}

// TaskFilter narrows a task listing. Zero values mean "no filter".
type TaskFilter struct {
	ProjectID *int64
	Status    string
	Priority  string
}

// UpcomingFilter narrows an upcoming-task listing.
type UpcomingFilter struct {
	ProjectID *int64
	Priority  string
}

// EventFilter narrows a calendar-event listing. StartDate/EndDate bound the
// event's start date inclusively; a single bound yields a one-sided range.
type EventFilter struct {
	TaskID    *int64
	StartDate string
	EndDate   string
}

// Sort allow-lists per resource, mapping API field names to columns.
// Unlisted sort values fall back to the resource default.
var (
	ProjectSortFields = map[string]string{
		"id":        "id",
		"title":     "title",
		"category":  "category",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"dueDate":   "due_date",
	}
	TaskSortFields = map[string]string{
		"title":     "title",
		"status":    "status",
		"priority":  "priority",
		"dueDate":   "due_date",
		"updatedAt": "updated_at",
		"createdAt": "created_at",
	}
	UpcomingSortFields = map[string]string{
		"title":     "title",
		"priority":  "priority",
		"dueDate":   "due_date",
		"updatedAt": "updated_at",
		"createdAt": "created_at",
	}
)

// Store is the persistence contract behind the REST handlers. Partial updates
// travel as maps keyed by API field name; only present keys are written, and
// every successful mutation refreshes updatedAt. Update, delete and
// status-change operations are conditional on the row existing at write time
// and return ErrNotFound otherwise.
type Store interface {
	Ping(ctx context.Context) error
	Close() error

	ListProjects(ctx context.Context, q ListQuery) ([]models.Project, error)
	GetProject(ctx context.Context, id int64) (models.Project, error)
	ProjectExists(ctx context.Context, id int64) (bool, error)
	// CreateProject inserts the project and, atomically with it, the given
	// batch of upcoming tasks linked to the new project's id.
	CreateProject(ctx context.Context, p models.Project, upcoming []models.UpcomingTask) (models.Project, error)
	UpdateProject(ctx context.Context, id int64, changes map[string]any) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) (models.Project, error)

	ListTasks(ctx context.Context, q ListQuery, f TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	TaskExists(ctx context.Context, id int64) (bool, error)
	CreateTask(ctx context.Context, t models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, id int64, changes map[string]any) (models.Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, status string) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) (models.Task, error)

	ListUpcomingTasks(ctx context.Context, q ListQuery, f UpcomingFilter) ([]models.UpcomingTask, error)
	GetUpcomingTask(ctx context.Context, id int64) (models.UpcomingTask, error)
	CreateUpcomingTask(ctx context.Context, t models.UpcomingTask) (models.UpcomingTask, error)
	UpdateUpcomingTask(ctx context.Context, id int64, changes map[string]any) (models.UpcomingTask, error)
	DeleteUpcomingTask(ctx context.Context, id int64) (models.UpcomingTask, error)

	ListCalendarEvents(ctx context.Context, limit, offset int, f EventFilter) ([]models.CalendarEvent, error)
	GetCalendarEvent(ctx context.Context, id int64) (models.CalendarEvent, error)
	CreateCalendarEvent(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error)
	UpdateCalendarEvent(ctx context.Context, id int64, changes map[string]any) (models.CalendarEvent, error)
	DeleteCalendarEvent(ctx context.Context, id int64) (models.CalendarEvent, error)
}
