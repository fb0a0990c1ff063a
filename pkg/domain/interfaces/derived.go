package interfaces

import (
	"context"

	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
)

// EmailQueueRepository defines the interface for the outbound email queue.
// Entries are enqueued PENDING; the external dispatcher polls and updates them.
type EmailQueueRepository interface {
	// Enqueue appends a new entry to the queue
	Enqueue(ctx context.Context, entry *model.EmailQueueEntry) (*model.EmailQueueEntry, error)

	// ListPending retrieves undelivered entries ordered by creation time
	// ascending, for the external dispatcher
	ListPending(ctx context.Context) ([]*model.EmailQueueEntry, error)
}

// DocumentRequestRepository defines the interface for DocumentRequest data access
type DocumentRequestRepository interface {
	// Create creates a new document request
	Create(ctx context.Context, req *model.DocumentRequest) (*model.DocumentRequest, error)

	// ListByClient retrieves a client's document requests ordered by creation
	// time descending
	ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.DocumentRequest, error)
}

// MeetingRepository defines the interface for Meeting data access
type MeetingRepository interface {
	// Create creates a new meeting suggestion
	Create(ctx context.Context, meeting *model.Meeting) (*model.Meeting, error)

	// ListByClient retrieves a client's meetings ordered by creation time
	// descending
	ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.Meeting, error)
}

// InteractionRepository defines the interface for the append-only interaction
// log. Entries are never updated or deleted.
type InteractionRepository interface {
	// Append adds a new interaction record
	Append(ctx context.Context, interaction *model.Interaction) (*model.Interaction, error)

	// ListByClient retrieves a client's interactions ordered by date descending
	ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.Interaction, error)
}

// ChecklistRepository defines the interface for stage checklist data access
type ChecklistRepository interface {
	// Create creates a new checklist item
	Create(ctx context.Context, item *model.ChecklistItem) (*model.ChecklistItem, error)

	// Get retrieves a checklist item by ID
	Get(ctx context.Context, id types.ChecklistItemID) (*model.ChecklistItem, error)

	// Update updates an existing checklist item
	Update(ctx context.Context, item *model.ChecklistItem) (*model.ChecklistItem, error)

	// Delete deletes a checklist item by ID
	Delete(ctx context.Context, id types.ChecklistItemID) error

	// ListByStage retrieves a stage's checklist items ordered by creation time
	// ascending
	ListByStage(ctx context.Context, stageID types.StageID) ([]*model.ChecklistItem, error)
}
