package model

import (
	"time"

	"github.com/casaflow/casaflow/pkg/domain/types"
)

// EmailQueueEntry is an outbound email waiting for the external dispatcher.
// This engine only enqueues entries with status PENDING; delivery and status
// progression belong to the dispatcher.
type EmailQueueEntry struct {
	ID        types.EmailID
	To        string `masq:"secret"`
	Subject   string
	Content   string
	Status    types.EmailStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentRequest asks a client to provide a document by a due date
type DocumentRequest struct {
	ID          types.DocumentRequestID
	ClientID    types.ClientID
	Title       string
	Description string
	Status      types.DocumentRequestStatus
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Meeting is a meeting suggestion for a client
type Meeting struct {
	ID            types.MeetingID
	ClientID      types.ClientID
	Title         string
	Description   string
	Status        types.MeetingStatus
	SuggestedDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Interaction is an append-only audit record of something that happened for a
// client. This engine appends one per successful action creation and never
// updates or deletes entries.
type Interaction struct {
	ID          types.InteractionID
	ClientID    types.ClientID
	Type        string
	Description string
	Date        time.Time
}

// InteractionTypeProcess tags interactions recorded by the process engine
const InteractionTypeProcess = "Process"
