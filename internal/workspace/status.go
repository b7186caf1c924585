// Package workspace implements the kanban-side behavior around tasks:
// status transition side effects and simple board statistics.
package workspace

import (
	"time"

	"github.com/editiq/editiq/internal/models"
)

// ApplyStatus sets the task's status and stamps lifecycle timestamps.
//
// Any status may be set from any other; transitions are never rejected. The
// source system works this way and the permissiveness is kept deliberately
// (see DESIGN.md). Side effects:
//
//   - first entry into WORKING stamps StartedAt
//   - entry into COMPLETED stamps CompletedAt; if StartedAt is still unset
//     it is backfilled to the same instant
//   - a timestamp that is already set is never overwritten
func ApplyStatus(t *models.WorkspaceTask, status models.TaskStatus, now time.Time) {
	t.Status = status
	millis := now.UnixMilli()

	switch status {
	case models.TaskWorking:
		if t.StartedAt == 0 {
			t.StartedAt = millis
		}
	case models.TaskCompleted:
		if t.CompletedAt == 0 {
			t.CompletedAt = millis
		}
		if t.StartedAt == 0 {
			t.StartedAt = t.CompletedAt
		}
	}
}

// Stats is the status distribution of a task list.
type Stats struct {
	Pending   int
	Working   int
	Completed int
}

func (s Stats) Total() int {
	return s.Pending + s.Working + s.Completed
}

// Count tallies tasks per status.
func Count(tasks []models.WorkspaceTask) Stats {
	var s Stats
	for _, t := range tasks {
		switch t.Status {
		case models.TaskPending:
			s.Pending++
		case models.TaskWorking:
			s.Working++
		case models.TaskCompleted:
			s.Completed++
		}
	}
	return s
}

// FilterByStatus returns the tasks in one kanban column, preserving order.
func FilterByStatus(tasks []models.WorkspaceTask, status models.TaskStatus) []models.WorkspaceTask {
	var out []models.WorkspaceTask
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
