package model

import (
	"time"

	"github.com/casaflow/casaflow/pkg/domain/types"
)

// ProcessAction represents one trackable follow-up obligation for a client.
// Its AutomatedTasks are owned exclusively by the action: they are created with
// it as a single unit and never added or removed afterwards.
type ProcessAction struct {
	ID          types.ActionID
	ClientID    types.ClientID
	Title       string
	Description string
	Type        string // category tag, informational only
	Status      types.ActionStatus
	DueDate     *time.Time
	CompletedAt *time.Time // set exactly once, when Status becomes COMPLETED
	Notes       string
	Tasks       []*AutomatedTask
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Task returns the task with the given ID, or nil if the action has none
func (a *ProcessAction) Task(id types.TaskID) *AutomatedTask {
	for _, t := range a.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AutomatedTask is one unit of automation work attached to a process action
type AutomatedTask struct {
	ID       types.TaskID
	ActionID types.ActionID
	Type     types.TaskType
	Status   types.TaskStatus
	// Error holds the cause when a derived-record write failed and the task
	// ended up FAILED. Empty otherwise.
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
