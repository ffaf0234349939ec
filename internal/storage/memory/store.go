// Package memory implements storage.Store on mutex-guarded maps. It backs
// demo and test setups where no database file is wanted, behind the same
// repository interface as the SQLite store.
package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/Blazehue/TaskMasterV1/internal/models"
	"github.com/Blazehue/TaskMasterV1/internal/storage"
)

// Store holds all rows in process memory.
type Store struct {
	mu     sync.RWMutex
	logger *slog.Logger

	projects map[int64]models.Project
	tasks    map[int64]models.Task
	upcoming map[int64]models.UpcomingTask
	events   map[int64]models.CalendarEvent

	nextProjectID  int64
	nextTaskID     int64
	nextUpcomingID int64
	nextEventID    int64
}

var _ storage.Store = (*Store)(nil)

// New returns an empty in-memory store.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		logger:         logger,
		projects:       make(map[int64]models.Project),
		tasks:          make(map[int64]models.Task),
		upcoming:       make(map[int64]models.UpcomingTask),
		events:         make(map[int64]models.CalendarEvent),
		nextProjectID:  1,
		nextTaskID:     1,
		nextUpcomingID: 1,
		nextEventID:    1,
	}
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(ctx context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() error { return nil }

// matches mimics the SQLite LIKE semantics the REST search relies on:
// case-insensitive substring match with implicit wildcards on both sides.
func matches(search, title string, secondary *string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(title), needle) {
		return true
	}
	return secondary != nil && strings.Contains(strings.ToLower(*secondary), needle)
}

// cmpText orders like a SQLite text column: NULLs sort before values.
func cmpText(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return strings.Compare(*a, *b)
	}
}

func page[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return make([]T, 0)
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	out := make([]T, end-offset)
	copy(out, rows[offset:end])
	return out
}

// ordered applies a single-key sort with the row id as stable tie-break.
func ordered[T any](rows []T, id func(T) int64, cmp func(a, b T) int, asc bool) {
	sort.SliceStable(rows, func(i, j int) bool { return id(rows[i]) < id(rows[j]) })
	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(rows[i], rows[j])
		if asc {
			return c < 0
		}
		return c > 0
	})
}

// ---- projects ----

// ListProjects returns a page of projects matching the query.
func (s *Store) ListProjects(ctx context.Context, q storage.ListQuery) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if q.Search != "" && !matches(q.Search, p.Title, p.Category) {
			continue
		}
		rows = append(rows, p)
	}

	field := q.Sort
	if _, ok := storage.ProjectSortFields[field]; !ok {
		field = "createdAt"
	}
	ordered(rows, func(p models.Project) int64 { return p.ID }, func(a, b models.Project) int {
		switch field {
		case "id":
			return int(a.ID - b.ID)
		case "title":
			return strings.Compare(a.Title, b.Title)
		case "category":
			return cmpText(a.Category, b.Category)
		case "dueDate":
			return cmpText(a.DueDate, b.DueDate)
		case "updatedAt":
			return strings.Compare(a.UpdatedAt, b.UpdatedAt)
		default:
			return strings.Compare(a.CreatedAt, b.CreatedAt)
		}
	}, q.Order == "asc")

	return page(rows, q.Limit, q.Offset), nil
}

// GetProject fetches a single project by id.
func (s *Store) GetProject(ctx context.Context, id int64) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, storage.ErrNotFound
	}
	return p, nil
}

// ProjectExists reports whether a project exists for the id.
func (s *Store) ProjectExists(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.projects[id]
	return ok, nil
}

// CreateProject inserts the project and its batch of upcoming tasks under a
// single lock, so both land together.
func (s *Store) CreateProject(ctx context.Context, p models.Project, upcoming []models.UpcomingTask) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := models.Now()
	p.ID = s.nextProjectID
	s.nextProjectID++
	p.CreatedAt = now
	p.UpdatedAt = now
	s.projects[p.ID] = p

	for _, u := range upcoming {
		u.ID = s.nextUpcomingID
		s.nextUpcomingID++
		u.ProjectID = &p.ID
		u.CreatedAt = now
		u.UpdatedAt = now
		s.upcoming[u.ID] = u
	}
	return p, nil
}

// UpdateProject applies a partial update and returns the updated row.
func (s *Store) UpdateProject(ctx context.Context, id int64, changes map[string]any) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, storage.ErrNotFound
	}
	if v, ok := changes["title"].(string); ok {
		p.Title = v
	}
	if v, ok := changes["description"]; ok {
		p.Description, _ = v.(*string)
	}
	if v, ok := changes["taskCount"].(int64); ok {
		p.TaskCount = v
	}
	if v, ok := changes["completedTasks"].(int64); ok {
		p.CompletedTasks = v
	}
	if v, ok := changes["dueDate"]; ok {
		p.DueDate, _ = v.(*string)
	}
	if v, ok := changes["category"]; ok {
		p.Category, _ = v.(*string)
	}
	p.UpdatedAt = models.Now()
	s.projects[id] = p
	return p, nil
}

// DeleteProject removes a project and returns its prior content. Tasks and
// upcoming tasks that reference it keep their stale projectId.
func (s *Store) DeleteProject(ctx context.Context, id int64) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return models.Project{}, storage.ErrNotFound
	}
	delete(s.projects, id)
	return p, nil
}

// ---- tasks ----

// ListTasks returns a page of tasks matching the query and filter.
func (s *Store) ListTasks(ctx context.Context, q storage.ListQuery, f storage.TaskFilter) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if q.Search != "" && !matches(q.Search, t.Title, t.Description) {
			continue
		}
		if f.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *f.ProjectID) {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		rows = append(rows, t)
	}

	field := q.Sort
	if _, ok := storage.TaskSortFields[field]; !ok {
		field = "createdAt"
	}
	ordered(rows, func(t models.Task) int64 { return t.ID }, func(a, b models.Task) int {
		switch field {
		case "title":
			return strings.Compare(a.Title, b.Title)
		case "status":
			return strings.Compare(a.Status, b.Status)
		case "priority":
			return strings.Compare(a.Priority, b.Priority)
		case "dueDate":
			return cmpText(a.DueDate, b.DueDate)
		case "updatedAt":
			return strings.Compare(a.UpdatedAt, b.UpdatedAt)
		default:
			return strings.Compare(a.CreatedAt, b.CreatedAt)
		}
	}, q.Order == "asc")

	return page(rows, q.Limit, q.Offset), nil
}

// GetTask retrieves a task by id.
func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, storage.ErrNotFound
	}
	return t, nil
}

// TaskExists reports whether a task exists for the id.
func (s *Store) TaskExists(ctx context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tasks[id]
	return ok, nil
}

// CreateTask inserts a new task and returns it with its generated id.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := models.Now()
	t.ID = s.nextTaskID
	s.nextTaskID++
	t.CreatedAt = now
	t.UpdatedAt = now
	s.tasks[t.ID] = t
	return t, nil
}

func applyTaskChanges(t *models.Task, changes map[string]any) {
	if v, ok := changes["title"].(string); ok {
		t.Title = v
	}
	if v, ok := changes["description"]; ok {
		t.Description, _ = v.(*string)
	}
	if v, ok := changes["projectId"]; ok {
		t.ProjectID, _ = v.(*int64)
	}
	if v, ok := changes["status"].(string); ok {
		t.Status = v
	}
	if v, ok := changes["priority"].(string); ok {
		t.Priority = v
	}
	if v, ok := changes["xpReward"].(int64); ok {
		t.XPReward = v
	}
	if v, ok := changes["dueDate"]; ok {
		t.DueDate, _ = v.(*string)
	}
	if v, ok := changes["position"].(int64); ok {
		t.Position = v
	}
}

// UpdateTask applies a partial update and returns the updated row.
func (s *Store) UpdateTask(ctx context.Context, id int64, changes map[string]any) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, storage.ErrNotFound
	}
	applyTaskChanges(&t, changes)
	t.UpdatedAt = models.Now()
	s.tasks[id] = t
	return t, nil
}

// UpdateTaskStatus changes only the task's status.
func (s *Store) UpdateTaskStatus(ctx context.Context, id int64, status string) (models.Task, error) {
	return s.UpdateTask(ctx, id, map[string]any{"status": status})
}

// DeleteTask removes a task and returns its prior content.
func (s *Store) DeleteTask(ctx context.Context, id int64) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, storage.ErrNotFound
	}
	delete(s.tasks, id)
	return t, nil
}

// ---- upcoming tasks ----

// ListUpcomingTasks returns a page of upcoming tasks matching the query.
func (s *Store) ListUpcomingTasks(ctx context.Context, q storage.ListQuery, f storage.UpcomingFilter) ([]models.UpcomingTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.UpcomingTask, 0, len(s.upcoming))
	for _, t := range s.upcoming {
		if q.Search != "" && !matches(q.Search, t.Title, t.Description) {
			continue
		}
		if f.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *f.ProjectID) {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		rows = append(rows, t)
	}

	field := q.Sort
	if _, ok := storage.UpcomingSortFields[field]; !ok {
		field = "dueDate"
	}
	ordered(rows, func(t models.UpcomingTask) int64 { return t.ID }, func(a, b models.UpcomingTask) int {
		switch field {
		case "title":
			return strings.Compare(a.Title, b.Title)
		case "priority":
			return strings.Compare(a.Priority, b.Priority)
		case "updatedAt":
			return strings.Compare(a.UpdatedAt, b.UpdatedAt)
		case "createdAt":
			return strings.Compare(a.CreatedAt, b.CreatedAt)
		default:
			return cmpText(a.DueDate, b.DueDate)
		}
	}, q.Order == "asc")

	return page(rows, q.Limit, q.Offset), nil
}

// GetUpcomingTask retrieves an upcoming task by id.
func (s *Store) GetUpcomingTask(ctx context.Context, id int64) (models.UpcomingTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.upcoming[id]
	if !ok {
		return models.UpcomingTask{}, storage.ErrNotFound
	}
	return t, nil
}

// CreateUpcomingTask inserts a new upcoming task.
func (s *Store) CreateUpcomingTask(ctx context.Context, t models.UpcomingTask) (models.UpcomingTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := models.Now()
	t.ID = s.nextUpcomingID
	s.nextUpcomingID++
	t.CreatedAt = now
	t.UpdatedAt = now
	s.upcoming[t.ID] = t
	return t, nil
}

// UpdateUpcomingTask applies a partial update and returns the updated row.
func (s *Store) UpdateUpcomingTask(ctx context.Context, id int64, changes map[string]any) (models.UpcomingTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.upcoming[id]
	if !ok {
		return models.UpcomingTask{}, storage.ErrNotFound
	}
	if v, ok := changes["title"].(string); ok {
		t.Title = v
	}
	if v, ok := changes["description"]; ok {
		t.Description, _ = v.(*string)
	}
	if v, ok := changes["projectId"]; ok {
		t.ProjectID, _ = v.(*int64)
	}
	if v, ok := changes["priority"].(string); ok {
		t.Priority = v
	}
	if v, ok := changes["dueDate"]; ok {
		t.DueDate, _ = v.(*string)
	}
	t.UpdatedAt = models.Now()
	s.upcoming[id] = t
	return t, nil
}

// DeleteUpcomingTask removes an upcoming task and returns its prior content.
func (s *Store) DeleteUpcomingTask(ctx context.Context, id int64) (models.UpcomingTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.upcoming[id]
	if !ok {
		return models.UpcomingTask{}, storage.ErrNotFound
	}
	delete(s.upcoming, id)
	return t, nil
}

// ---- calendar events ----

// ListCalendarEvents returns events ordered by start date ascending.
func (s *Store) ListCalendarEvents(ctx context.Context, limit, offset int, f storage.EventFilter) ([]models.CalendarEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.CalendarEvent, 0, len(s.events))
	for _, e := range s.events {
		if f.StartDate != "" && e.StartDate < f.StartDate {
			continue
		}
		if f.EndDate != "" && e.StartDate > f.EndDate {
			continue
		}
		if f.TaskID != nil && (e.TaskID == nil || *e.TaskID != *f.TaskID) {
			continue
		}
		rows = append(rows, e)
	}

	ordered(rows, func(e models.CalendarEvent) int64 { return e.ID }, func(a, b models.CalendarEvent) int {
		return strings.Compare(a.StartDate, b.StartDate)
	}, true)

	return page(rows, limit, offset), nil
}

// GetCalendarEvent retrieves a calendar event by id.
func (s *Store) GetCalendarEvent(ctx context.Context, id int64) (models.CalendarEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return models.CalendarEvent{}, storage.ErrNotFound
	}
	return e, nil
}

// CreateCalendarEvent inserts a new calendar event.
func (s *Store) CreateCalendarEvent(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := models.Now()
	e.ID = s.nextEventID
	s.nextEventID++
	e.CreatedAt = now
	e.UpdatedAt = now
	s.events[e.ID] = e
	return e, nil
}

// UpdateCalendarEvent applies a partial update and returns the updated row.
func (s *Store) UpdateCalendarEvent(ctx context.Context, id int64, changes map[string]any) (models.CalendarEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return models.CalendarEvent{}, storage.ErrNotFound
	}
	if v, ok := changes["title"].(string); ok {
		e.Title = v
	}
	if v, ok := changes["description"]; ok {
		e.Description, _ = v.(*string)
	}
	if v, ok := changes["taskId"]; ok {
		e.TaskID, _ = v.(*int64)
	}
	if v, ok := changes["startDate"].(string); ok {
		e.StartDate = v
	}
	if v, ok := changes["endDate"]; ok {
		e.EndDate, _ = v.(*string)
	}
	if v, ok := changes["allDay"].(bool); ok {
		e.AllDay = v
	}
	e.UpdatedAt = models.Now()
	s.events[id] = e
	return e, nil
}

// DeleteCalendarEvent removes an event and returns its prior content.
func (s *Store) DeleteCalendarEvent(ctx context.Context, id int64) (models.CalendarEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return models.CalendarEvent{}, storage.ErrNotFound
	}
	delete(s.events, id)
	return e, nil
}
