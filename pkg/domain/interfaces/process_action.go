package interfaces

import (
	"context"

	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
)

// ProcessActionRepository defines the interface for ProcessAction data access.
// An action and its automated tasks are stored as one unit: Create persists
// both in a single call, and the task set is immutable afterwards except for
// per-task status updates through UpdateTask.
type ProcessActionRepository interface {
	// Create persists a new action together with its tasks and returns the
	// stored action with IDs and timestamps assigned
	Create(ctx context.Context, action *model.ProcessAction) (*model.ProcessAction, error)

	// Get retrieves an action by ID, tasks included
	Get(ctx context.Context, id types.ActionID) (*model.ProcessAction, error)

	// ListByClient retrieves all actions of a client ordered by creation time
	// ascending, tasks included
	ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.ProcessAction, error)

	// Update rewrites the mutable fields of an existing action
	Update(ctx context.Context, action *model.ProcessAction) (*model.ProcessAction, error)

	// UpdateTask rewrites the status and error of a single task in place
	UpdateTask(ctx context.Context, task *model.AutomatedTask) (*model.AutomatedTask, error)
}
