package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Not found errors
	ErrClientNotFound        = errors.New("client not found")
	ErrActionNotFound        = errors.New("process action not found")
	ErrChecklistItemNotFound = errors.New("checklist item not found")

	// Status errors
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Context keys for error values
const (
	ClientIDKey = "client_id"
	ActionIDKey = "action_id"
	TaskIDKey   = "task_id"
	ItemIDKey   = "item_id"
)
