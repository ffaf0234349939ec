package models

import "time"

// TimeLayout is the wire format for all server-stamped timestamps: ISO-8601
// in UTC with millisecond precision. The fixed width keeps lexicographic and
// chronological ordering identical, which the stores rely on when sorting
// timestamp columns stored as text.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Now returns the current UTC time formatted with TimeLayout.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// Project groups tasks and carries caller-maintained progress counters.
type Project struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	TaskCount      int64   `json:"taskCount"`
	CompletedTasks int64   `json:"completedTasks"`
	DueDate        *string `json:"dueDate"`
	Category       *string `json:"category"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// Task is a unit of work, optionally linked to a project.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ProjectID   *int64  `json:"projectId"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	XPReward    int64   `json:"xpReward"`
	DueDate     *string `json:"dueDate"`
	Position    int64   `json:"position"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// UpcomingTask is a task that has not been promoted to the main list yet.
type UpcomingTask struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ProjectID   *int64  `json:"projectId"`
	DueDate     *string `json:"dueDate"`
	Priority    string  `json:"priority"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CalendarEvent is a dated entry, optionally linked to a task.
type CalendarEvent struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	TaskID      *int64  `json:"taskId"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	AllDay      bool    `json:"allDay"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// Task lifecycle statuses. The set is closed: mutations carrying anything
// else are rejected.
const (
	StatusBacklog    = "backlog"
	StatusTodo       = "todo"
	StatusInProgress = "inprogress"
	StatusComplete   = "complete"
)

// ValidTaskStatuses enumerates the statuses a task may hold.
var ValidTaskStatuses = map[string]struct{}{
	StatusBacklog:    {},
	StatusTodo:       {},
	StatusInProgress: {},
	StatusComplete:   {},
}

// ValidStatus reports whether s belongs to the task status vocabulary.
func ValidStatus(s string) bool {
	_, ok := ValidTaskStatuses[s]
	return ok
}

// Priority levels. These drive sort weight and display only; no transition
// rules attach to them.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// PriorityWeight maps a priority to a sortable weight. Unknown priorities
// weigh zero so they sink below the known levels.
func PriorityWeight(p string) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// BoardColumn is one column of the kanban board view.
type BoardColumn struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

// BoardColumnIDs lists the board columns in display order.
var BoardColumnIDs = []string{"backlog", "todo", "doing", "done"}

// BoardColumnTitles maps a column id to its display title.
var BoardColumnTitles = map[string]string{
	"backlog": "BACKLOG",
	"todo":    "TO-DO",
	"doing":   "DOING",
	"done":    "DONE",
}

// ColumnForStatus maps a task status to the board column it occupies.
// Anything outside the vocabulary lands in the backlog column.
func ColumnForStatus(status string) string {
	switch status {
	case StatusTodo:
		return "todo"
	case StatusInProgress:
		return "doing"
	case StatusComplete:
		return "done"
	default:
		return "backlog"
	}
}
