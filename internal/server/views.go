package server

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Blazehue/TaskMasterV1/internal/models"
	"github.com/Blazehue/TaskMasterV1/internal/storage"
)

// boardQueryLimit caps how many tasks the board and stats views pull in one
// read.
const boardQueryLimit = 500

// handleBoard groups tasks into kanban columns, optionally scoped to one
// project. Within a column tasks keep their manual position order.
func (s *Server) handleBoard(c *gin.Context) {
	f := storage.TaskFilter{}
	if raw := c.Query("projectId"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, codeInvalidProjectID, "Invalid project ID")
			return
		}
		f.ProjectID = &n
	}

	q := storage.ListQuery{Limit: boardQueryLimit, Sort: "createdAt", Order: "asc"}
	tasks, err := s.store.ListTasks(c.Request.Context(), q, f)
	if err != nil {
		s.respondInternal(c, err)
		return
	}

	grouped := make(map[string][]models.Task, len(models.BoardColumnIDs))
	for _, t := range tasks {
		col := models.ColumnForStatus(t.Status)
		grouped[col] = append(grouped[col], t)
	}

	columns := make([]models.BoardColumn, 0, len(models.BoardColumnIDs))
	for _, id := range models.BoardColumnIDs {
		ts := grouped[id]
		if ts == nil {
			ts = make([]models.Task, 0)
		}
		sort.SliceStable(ts, func(i, j int) bool {
			if ts[i].Position != ts[j].Position {
				return ts[i].Position < ts[j].Position
			}
			return ts[i].ID < ts[j].ID
		})
		columns = append(columns, models.BoardColumn{
			ID:    id,
			Title: models.BoardColumnTitles[id],
			Tasks: ts,
		})
	}

	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

// handleStats reports task counts per status and the XP earned from
// completed tasks.
func (s *Server) handleStats(c *gin.Context) {
	q := storage.ListQuery{Limit: boardQueryLimit, Sort: "createdAt", Order: "asc"}
	tasks, err := s.store.ListTasks(c.Request.Context(), q, storage.TaskFilter{})
	if err != nil {
		s.respondInternal(c, err)
		return
	}

	byStatus := make(map[string]int, len(models.ValidTaskStatuses))
	for status := range models.ValidTaskStatuses {
		byStatus[status] = 0
	}
	var xpEarned int64
	for _, t := range tasks {
		byStatus[t.Status]++
		if t.Status == models.StatusComplete {
			xpEarned += t.XPReward
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    len(tasks),
		"byStatus": byStatus,
		"xpEarned": xpEarned,
	})
}
