package types

import "fmt"

// TaskType represents the kind of automation attached to a process action
type TaskType string

const (
	TaskTypeEmail           TaskType = "EMAIL"
	TaskTypeDocumentRequest TaskType = "DOCUMENT_REQUEST"
	TaskTypeCalendarInvite  TaskType = "CALENDAR_INVITE"
)

// AllTaskTypes returns all valid task types
func AllTaskTypes() []TaskType {
	return []TaskType{
		TaskTypeEmail,
		TaskTypeDocumentRequest,
		TaskTypeCalendarInvite,
	}
}

// IsValid checks if the task type is valid
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeEmail, TaskTypeDocumentRequest, TaskTypeCalendarInvite:
		return true
	default:
		return false
	}
}

// String returns the string representation of the task type
func (t TaskType) String() string {
	return string(t)
}

// ParseTaskType parses a string into a TaskType
func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid task type: %s", s)
	}
	return t, nil
}

// TaskStatus represents the dispatch state of an automated task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusDispatched TaskStatus = "DISPATCHED"
	TaskStatusFailed     TaskStatus = "FAILED"
)

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusDispatched, TaskStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the task status
func (s TaskStatus) String() string {
	return string(s)
}
