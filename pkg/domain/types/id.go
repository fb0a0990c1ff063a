package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ClientID identifies a client in the directory
type ClientID string

// ActionID identifies a process action
type ActionID string

// TaskID identifies an automated task within an action
type TaskID string

// EmailID identifies an email queue entry
type EmailID string

// DocumentRequestID identifies a document request
type DocumentRequestID string

// MeetingID identifies a meeting suggestion
type MeetingID string

// InteractionID identifies an interaction log entry
type InteractionID string

// StageID identifies a pipeline stage
type StageID string

// ChecklistItemID identifies a stage checklist item
type ChecklistItemID string

func NewClientID() ClientID                   { return ClientID(uuid.NewString()) }
func NewActionID() ActionID                   { return ActionID(uuid.NewString()) }
func NewTaskID() TaskID                       { return TaskID(uuid.NewString()) }
func NewEmailID() EmailID                     { return EmailID(uuid.NewString()) }
func NewDocumentRequestID() DocumentRequestID { return DocumentRequestID(uuid.NewString()) }
func NewMeetingID() MeetingID                 { return MeetingID(uuid.NewString()) }
func NewInteractionID() InteractionID         { return InteractionID(uuid.NewString()) }
func NewChecklistItemID() ChecklistItemID     { return ChecklistItemID(uuid.NewString()) }

func (id ClientID) String() string          { return string(id) }
func (id ActionID) String() string          { return string(id) }
func (id TaskID) String() string            { return string(id) }
func (id EmailID) String() string           { return string(id) }
func (id DocumentRequestID) String() string { return string(id) }
func (id MeetingID) String() string         { return string(id) }
func (id InteractionID) String() string     { return string(id) }
func (id StageID) String() string           { return string(id) }
func (id ChecklistItemID) String() string   { return string(id) }

// Validate checks that the ID is non-empty
func (id ClientID) Validate() error {
	if id == "" {
		return goerr.New("client ID is empty")
	}
	return nil
}

// Validate checks that the ID is non-empty
func (id ActionID) Validate() error {
	if id == "" {
		return goerr.New("action ID is empty")
	}
	return nil
}

// Validate checks that the ID is non-empty
func (id StageID) Validate() error {
	if id == "" {
		return goerr.New("stage ID is empty")
	}
	return nil
}

// Validate checks that the ID is non-empty
func (id ChecklistItemID) Validate() error {
	if id == "" {
		return goerr.New("checklist item ID is empty")
	}
	return nil
}
