package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaskStatus is the kanban column a workspace task sits in. Any status may
// be set from any other; transitions are not validated, only timestamped.
type TaskStatus string

const (
	TaskPending   TaskStatus = "PENDING"
	TaskWorking   TaskStatus = "WORKING"
	TaskCompleted TaskStatus = "COMPLETED"
)

// WorkspaceTask is a project/kanban item. StartedAt and CompletedAt are
// epoch milliseconds with zero meaning "not set"; they are stamped on the
// first transition into WORKING and COMPLETED respectively and never
// overwritten afterwards. ClientID is a weak reference like on Transaction.
type WorkspaceTask struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	ClientID    string              `json:"clientId,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      TaskStatus          `json:"status"`
	DueDate     string              `json:"dueDate"`
	Budget      decimal.NullDecimal `json:"budget,omitempty"`
	CreatedAt   int64               `json:"createdAt"`
	StartedAt   int64               `json:"startedAt,omitempty"`
	CompletedAt int64               `json:"completedAt,omitempty"`
}

func (t WorkspaceTask) RecordID() string    { return t.ID }
func (t WorkspaceTask) RecordOwner() string { return t.UserID }

// Validate rejects a task without a title or with an unknown status.
// An empty status is allowed; the facade defaults it to PENDING.
func (t WorkspaceTask) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("%w: task title is empty", ErrValidation)
	}
	switch t.Status {
	case "", TaskPending, TaskWorking, TaskCompleted:
		return nil
	default:
		return fmt.Errorf("%w: unknown task status %q", ErrValidation, t.Status)
	}
}
