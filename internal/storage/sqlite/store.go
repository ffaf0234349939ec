// Package sqlite implements storage.Store on a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Blazehue/TaskMasterV1/internal/models"
	"github.com/Blazehue/TaskMasterV1/internal/storage"
)

// Store wraps access to the SQLite database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ storage.Store = (*Store)(nil)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open initializes the SQLite store and runs the required migrations.
// Foreign keys are declared in the schema but intentionally not enforced:
// deleting a project must leave its tasks orphaned, not fail.
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("empty database path")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := ensureDir(dbPath); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	s := &Store{db: conn, logger: logger}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return s, nil
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database resources.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureDir(dbPath string) error {
	if dbPath == ":memory:" || strings.HasPrefix(dbPath, ":memory:") {
		return nil
	}
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS projects (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            description TEXT,
            task_count INTEGER NOT NULL DEFAULT 0,
            completed_tasks INTEGER NOT NULL DEFAULT 0,
            due_date TEXT,
            category TEXT,
            created_at TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS tasks (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            description TEXT,
            project_id INTEGER REFERENCES projects(id),
            status TEXT NOT NULL DEFAULT 'todo',
            priority TEXT NOT NULL DEFAULT 'medium',
            xp_reward INTEGER NOT NULL DEFAULT 100,
            due_date TEXT,
            position INTEGER NOT NULL DEFAULT 0,
            created_at TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS upcoming_tasks (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            description TEXT,
            project_id INTEGER REFERENCES projects(id),
            due_date TEXT,
            priority TEXT NOT NULL DEFAULT 'medium',
            created_at TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS calendar_events (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            description TEXT,
            task_id INTEGER REFERENCES tasks(id),
            start_date TEXT NOT NULL,
            end_date TEXT,
            all_day INTEGER NOT NULL DEFAULT 0,
            created_at TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);`,
		`CREATE INDEX IF NOT EXISTS idx_upcoming_project ON upcoming_tasks(project_id);`,
		`CREATE INDEX IF NOT EXISTS idx_events_start ON calendar_events(start_date);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// orderClause resolves the sort field against the allow-list and the order
// direction, falling back to the given default column.
func orderClause(fields map[string]string, sort, order, fallback string) string {
	col, ok := fields[sort]
	if !ok {
		col = fallback
	}
	dir := "DESC"
	if order == "asc" {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// updateRow builds and executes a single conditional UPDATE from the changes
// map, stamping updated_at. Returns ErrNotFound when no row matched, which
// collapses the existence check and the mutation into one atomic statement.
func (s *Store) updateRow(ctx context.Context, table string, columns map[string]string, id int64, changes map[string]any) error {
	sets := []string{"updated_at = ?"}
	args := []any{models.Now()}
	for field, col := range columns {
		if v, ok := changes[field]; ok {
			sets = append(sets, col+" = ?")
			args = append(args, v)
		}
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, "UPDATE "+table+" SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) rowExists(ctx context.Context, table string, id int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", table, err)
	}
	return true, nil
}

// ---- projects ----

const projectCols = "id, title, description, task_count, completed_tasks, due_date, category, created_at, updated_at"

var projectColumns = map[string]string{
	"title":          "title",
	"description":    "description",
	"taskCount":      "task_count",
	"completedTasks": "completed_tasks",
	"dueDate":        "due_date",
	"category":       "category",
}

func scanProject(row *sql.Row) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.TaskCount, &p.CompletedTasks, &p.DueDate, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("scan project: %w", err)
	}
	return p, nil
}

// ListProjects returns a page of projects matching the query.
func (s *Store) ListProjects(ctx context.Context, q storage.ListQuery) ([]models.Project, error) {
	conds := []string{}
	args := []any{}
	if q.Search != "" {
		conds = append(conds, "(title LIKE ? OR category LIKE ?)")
		pat := "%" + q.Search + "%"
		args = append(args, pat, pat)
	}

	query := "SELECT " + projectCols + " FROM projects" + whereClause(conds) +
		orderClause(storage.ProjectSortFields, q.Sort, q.Order, "created_at") + " LIMIT ? OFFSET ?"
	args = append(args, q.Limit, q.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.TaskCount, &p.CompletedTasks, &p.DueDate, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProject fetches a single project by id.
func (s *Store) GetProject(ctx context.Context, id int64) (models.Project, error) {
	return s.getProject(ctx, s.db, id)
}

func (s *Store) getProject(ctx context.Context, q querier, id int64) (models.Project, error) {
	return scanProject(q.QueryRowContext(ctx, "SELECT "+projectCols+" FROM projects WHERE id = ?", id))
}

// ProjectExists reports whether a project row exists for the id.
func (s *Store) ProjectExists(ctx context.Context, id int64) (bool, error) {
	return s.rowExists(ctx, "projects", id)
}

// CreateProject inserts the project and its optional batch of upcoming tasks
// in one transaction, so the batch either fully commits with the project or
// not at all.
func (s *Store) CreateProject(ctx context.Context, p models.Project, upcoming []models.UpcomingTask) (models.Project, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Project{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := models.Now()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO projects (title, description, task_count, completed_tasks, due_date, category, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, p.TaskCount, p.CompletedTasks, p.DueDate, p.Category, now, now)
	if err != nil {
		return models.Project{}, fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Project{}, fmt.Errorf("project id: %w", err)
	}

	for _, u := range upcoming {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO upcoming_tasks (title, description, project_id, due_date, priority, created_at, updated_at)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			u.Title, u.Description, id, u.DueDate, u.Priority, now, now); err != nil {
			return models.Project{}, fmt.Errorf("insert upcoming task: %w", err)
		}
	}

	created, err := s.getProject(ctx, tx, id)
	if err != nil {
		return models.Project{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Project{}, fmt.Errorf("commit: %w", err)
	}
	return created, nil
}

// UpdateProject applies a partial update and returns the updated row.
func (s *Store) UpdateProject(ctx context.Context, id int64, changes map[string]any) (models.Project, error) {
	if err := s.updateRow(ctx, "projects", projectColumns, id, changes); err != nil {
		return models.Project{}, err
	}
	return s.GetProject(ctx, id)
}

// DeleteProject removes a project and returns its prior content. Dependent
// tasks are left in place with their stale project_id.
func (s *Store) DeleteProject(ctx context.Context, id int64) (models.Project, error) {
	var p models.Project
	err := s.deleteRow(ctx, "projects", id, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		p, err = s.getProject(ctx, tx, id)
		return err
	})
	return p, err
}

// deleteRow reads the row via fetch and deletes it inside one transaction.
func (s *Store) deleteRow(ctx context.Context, table string, id int64, fetch func(context.Context, *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := fetch(ctx, tx); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return tx.Commit()
}

// ---- tasks ----

const taskCols = "id, title, description, project_id, status, priority, xp_reward, due_date, position, created_at, updated_at"

var taskColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"projectId":   "project_id",
	"status":      "status",
	"priority":    "priority",
	"xpReward":    "xp_reward",
	"dueDate":     "due_date",
	"position":    "position",
}

func scanTask(row *sql.Row) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.ProjectID, &t.Status, &t.Priority, &t.XPReward, &t.DueDate, &t.Position, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("scan task: %w", err)
	}
	return t, nil
}

// ListTasks returns a page of tasks matching the query and filter.
func (s *Store) ListTasks(ctx context.Context, q storage.ListQuery, f storage.TaskFilter) ([]models.Task, error) {
	conds := []string{}
	args := []any{}
	if q.Search != "" {
		conds = append(conds, "(title LIKE ? OR description LIKE ?)")
		pat := "%" + q.Search + "%"
		args = append(args, pat, pat)
	}
	if f.ProjectID != nil {
		conds = append(conds, "project_id = ?")
		args = append(args, *f.ProjectID)
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if f.Priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, f.Priority)
	}

	query := "SELECT " + taskCols + " FROM tasks" + whereClause(conds) +
		orderClause(storage.TaskSortFields, q.Sort, q.Order, "created_at") + " LIMIT ? OFFSET ?"
	args = append(args, q.Limit, q.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.ProjectID, &t.Status, &t.Priority, &t.XPReward, &t.DueDate, &t.Position, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTask retrieves a task by id.
func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	return s.getTask(ctx, s.db, id)
}

func (s *Store) getTask(ctx context.Context, q querier, id int64) (models.Task, error) {
	return scanTask(q.QueryRowContext(ctx, "SELECT "+taskCols+" FROM tasks WHERE id = ?", id))
}

// TaskExists reports whether a task row exists for the id.
func (s *Store) TaskExists(ctx context.Context, id int64) (bool, error) {
	return s.rowExists(ctx, "tasks", id)
}

// CreateTask inserts a new task and returns it with its generated id.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	now := models.Now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, project_id, status, priority, xp_reward, due_date, position, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Title, t.Description, t.ProjectID, t.Status, t.Priority, t.XPReward, t.DueDate, t.Position, now, now)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Task{}, fmt.Errorf("task id: %w", err)
	}
	return s.GetTask(ctx, id)
}

// UpdateTask applies a partial update and returns the updated row.
func (s *Store) UpdateTask(ctx context.Context, id int64, changes map[string]any) (models.Task, error) {
	if err := s.updateRow(ctx, "tasks", taskColumns, id, changes); err != nil {
		return models.Task{}, err
	}
	return s.GetTask(ctx, id)
}

// UpdateTaskStatus changes only the task's status. Vocabulary validation
// happens at the HTTP layer; here the write is a single conditional update.
func (s *Store) UpdateTaskStatus(ctx context.Context, id int64, status string) (models.Task, error) {
	return s.UpdateTask(ctx, id, map[string]any{"status": status})
}

// DeleteTask removes a task and returns its prior content.
func (s *Store) DeleteTask(ctx context.Context, id int64) (models.Task, error) {
	var t models.Task
	err := s.deleteRow(ctx, "tasks", id, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		t, err = s.getTask(ctx, tx, id)
		return err
	})
	return t, err
}

// ---- upcoming tasks ----

const upcomingCols = "id, title, description, project_id, due_date, priority, created_at, updated_at"

var upcomingColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"projectId":   "project_id",
	"dueDate":     "due_date",
	"priority":    "priority",
}

func scanUpcoming(row *sql.Row) (models.UpcomingTask, error) {
	var t models.UpcomingTask
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.ProjectID, &t.DueDate, &t.Priority, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UpcomingTask{}, storage.ErrNotFound
	}
	if err != nil {
		return models.UpcomingTask{}, fmt.Errorf("scan upcoming task: %w", err)
	}
	return t, nil
}

// ListUpcomingTasks returns a page of upcoming tasks matching the query.
func (s *Store) ListUpcomingTasks(ctx context.Context, q storage.ListQuery, f storage.UpcomingFilter) ([]models.UpcomingTask, error) {
	conds := []string{}
	args := []any{}
	if q.Search != "" {
		conds = append(conds, "(title LIKE ? OR description LIKE ?)")
		pat := "%" + q.Search + "%"
		args = append(args, pat, pat)
	}
	if f.ProjectID != nil {
		conds = append(conds, "project_id = ?")
		args = append(args, *f.ProjectID)
	}
	if f.Priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, f.Priority)
	}

	query := "SELECT " + upcomingCols + " FROM upcoming_tasks" + whereClause(conds) +
		orderClause(storage.UpcomingSortFields, q.Sort, q.Order, "due_date") + " LIMIT ? OFFSET ?"
	args = append(args, q.Limit, q.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list upcoming tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.UpcomingTask, 0)
	for rows.Next() {
		var t models.UpcomingTask
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.ProjectID, &t.DueDate, &t.Priority, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan upcoming task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetUpcomingTask retrieves an upcoming task by id.
func (s *Store) GetUpcomingTask(ctx context.Context, id int64) (models.UpcomingTask, error) {
	return s.getUpcoming(ctx, s.db, id)
}

func (s *Store) getUpcoming(ctx context.Context, q querier, id int64) (models.UpcomingTask, error) {
	return scanUpcoming(q.QueryRowContext(ctx, "SELECT "+upcomingCols+" FROM upcoming_tasks WHERE id = ?", id))
}

// CreateUpcomingTask inserts a new upcoming task.
func (s *Store) CreateUpcomingTask(ctx context.Context, t models.UpcomingTask) (models.UpcomingTask, error) {
	now := models.Now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO upcoming_tasks (title, description, project_id, due_date, priority, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Title, t.Description, t.ProjectID, t.DueDate, t.Priority, now, now)
	if err != nil {
		return models.UpcomingTask{}, fmt.Errorf("insert upcoming task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.UpcomingTask{}, fmt.Errorf("upcoming task id: %w", err)
	}
	return s.GetUpcomingTask(ctx, id)
}

// UpdateUpcomingTask applies a partial update and returns the updated row.
func (s *Store) UpdateUpcomingTask(ctx context.Context, id int64, changes map[string]any) (models.UpcomingTask, error) {
	if err := s.updateRow(ctx, "upcoming_tasks", upcomingColumns, id, changes); err != nil {
		return models.UpcomingTask{}, err
	}
	return s.GetUpcomingTask(ctx, id)
}

// DeleteUpcomingTask removes an upcoming task and returns its prior content.
func (s *Store) DeleteUpcomingTask(ctx context.Context, id int64) (models.UpcomingTask, error) {
	var t models.UpcomingTask
	err := s.deleteRow(ctx, "upcoming_tasks", id, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		t, err = s.getUpcoming(ctx, tx, id)
		return err
	})
	return t, err
}

// ---- calendar events ----

const eventCols = "id, title, description, task_id, start_date, end_date, all_day, created_at, updated_at"

var eventColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"taskId":      "task_id",
	"startDate":   "start_date",
	"endDate":     "end_date",
	"allDay":      "all_day",
}

func scanEvent(row *sql.Row) (models.CalendarEvent, error) {
	var e models.CalendarEvent
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.TaskID, &e.StartDate, &e.EndDate, &e.AllDay, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CalendarEvent{}, storage.ErrNotFound
	}
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("scan calendar event: %w", err)
	}
	return e, nil
}

// ListCalendarEvents returns events ordered by start date ascending. The
// date bounds filter the start date inclusively; a single bound yields a
// one-sided range.
func (s *Store) ListCalendarEvents(ctx context.Context, limit, offset int, f storage.EventFilter) ([]models.CalendarEvent, error) {
	conds := []string{}
	args := []any{}
	if f.StartDate != "" {
		conds = append(conds, "start_date >= ?")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		conds = append(conds, "start_date <= ?")
		args = append(args, f.EndDate)
	}
	if f.TaskID != nil {
		conds = append(conds, "task_id = ?")
		args = append(args, *f.TaskID)
	}

	query := "SELECT " + eventCols + " FROM calendar_events" + whereClause(conds) +
		" ORDER BY start_date ASC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	defer rows.Close()

	events := make([]models.CalendarEvent, 0)
	for rows.Next() {
		var e models.CalendarEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.TaskID, &e.StartDate, &e.EndDate, &e.AllDay, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan calendar event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetCalendarEvent retrieves a calendar event by id.
func (s *Store) GetCalendarEvent(ctx context.Context, id int64) (models.CalendarEvent, error) {
	return s.getEvent(ctx, s.db, id)
}

func (s *Store) getEvent(ctx context.Context, q querier, id int64) (models.CalendarEvent, error) {
	return scanEvent(q.QueryRowContext(ctx, "SELECT "+eventCols+" FROM calendar_events WHERE id = ?", id))
}

// CreateCalendarEvent inserts a new calendar event.
func (s *Store) CreateCalendarEvent(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error) {
	now := models.Now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO calendar_events (title, description, task_id, start_date, end_date, all_day, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Title, e.Description, e.TaskID, e.StartDate, e.EndDate, e.AllDay, now, now)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("insert calendar event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("calendar event id: %w", err)
	}
	return s.GetCalendarEvent(ctx, id)
}

// UpdateCalendarEvent applies a partial update and returns the updated row.
func (s *Store) UpdateCalendarEvent(ctx context.Context, id int64, changes map[string]any) (models.CalendarEvent, error) {
	if err := s.updateRow(ctx, "calendar_events", eventColumns, id, changes); err != nil {
		return models.CalendarEvent{}, err
	}
	return s.GetCalendarEvent(ctx, id)
}

// DeleteCalendarEvent removes an event and returns its prior content.
func (s *Store) DeleteCalendarEvent(ctx context.Context, id int64) (models.CalendarEvent, error) {
	var e models.CalendarEvent
	err := s.deleteRow(ctx, "calendar_events", id, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		e, err = s.getEvent(ctx, tx, id)
		return err
	})
	return e, err
}
