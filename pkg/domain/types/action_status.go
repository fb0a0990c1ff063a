package types

import "fmt"

// ActionStatus represents the status of a process action
type ActionStatus string

const (
	ActionStatusPending    ActionStatus = "PENDING"
	ActionStatusInProgress ActionStatus = "IN_PROGRESS"
	ActionStatusCompleted  ActionStatus = "COMPLETED"
	ActionStatusCancelled  ActionStatus = "CANCELLED"
)

// AllActionStatuses returns all valid action statuses
func AllActionStatuses() []ActionStatus {
	return []ActionStatus{
		ActionStatusPending,
		ActionStatusInProgress,
		ActionStatusCompleted,
		ActionStatusCancelled,
	}
}

// IsValid checks if the action status is valid
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending,
		ActionStatusInProgress,
		ActionStatusCompleted,
		ActionStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from the status
func (s ActionStatus) IsTerminal() bool {
	return s == ActionStatusCompleted || s == ActionStatusCancelled
}

// CanTransitionTo reports whether the status machine permits moving to next.
// PENDING may move to IN_PROGRESS, COMPLETED or CANCELLED; IN_PROGRESS may move
// to COMPLETED or CANCELLED; COMPLETED and CANCELLED are terminal.
func (s ActionStatus) CanTransitionTo(next ActionStatus) bool {
	if !next.IsValid() || s.IsTerminal() {
		return false
	}
	switch s {
	case ActionStatusPending:
		return next == ActionStatusInProgress || next == ActionStatusCompleted || next == ActionStatusCancelled
	case ActionStatusInProgress:
		return next == ActionStatusCompleted || next == ActionStatusCancelled
	default:
		return false
	}
}

// String returns the string representation of the action status
func (s ActionStatus) String() string {
	return string(s)
}

// ParseActionStatus parses a string into an ActionStatus
func ParseActionStatus(s string) (ActionStatus, error) {
	status := ActionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid action status: %s", s)
	}
	return status, nil
}
