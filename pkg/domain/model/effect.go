package model

import (
	"fmt"
	"time"

	"github.com/casaflow/casaflow/pkg/domain/types"
)

// Scheduling offsets for derived records, measured from the moment the task is
// dispatched. Fixed policy, not configurable at the call site.
const (
	DocumentRequestLeadTime = 7 * 24 * time.Hour
	MeetingLeadTime         = 3 * 24 * time.Hour
)

// EffectSpec is a tagged variant over the derived records an automated task can
// produce. Exactly one field is non-nil.
type EffectSpec struct {
	Email    *EmailQueueEntry
	Document *DocumentRequest
	Meeting  *Meeting
}

// ResolveEffect maps an automated task to the derived record it produces, if
// any. A nil result is a deliberate no-op, not a failure: an EMAIL task for a
// client without an email address resolves to nothing and the task is still
// considered dispatched.
func ResolveEffect(task *AutomatedTask, action *ProcessAction, client *Client, now time.Time) *EffectSpec {
	switch task.Type {
	case types.TaskTypeEmail:
		if client.Email == "" {
			return nil
		}
		return &EffectSpec{
			Email: &EmailQueueEntry{
				To:      client.Email,
				Subject: fmt.Sprintf("Action Required: %s", action.Title),
				Content: fmt.Sprintf("Dear %s,\n\n%s\n\nBest regards,\nYour Agent", client.Name, action.Description),
				Status:  types.EmailStatusPending,
			},
		}

	case types.TaskTypeDocumentRequest:
		return &EffectSpec{
			Document: &DocumentRequest{
				ClientID:    action.ClientID,
				Title:       action.Title,
				Description: action.Description,
				Status:      types.DocumentRequestStatusPending,
				DueDate:     now.Add(DocumentRequestLeadTime),
			},
		}

	case types.TaskTypeCalendarInvite:
		return &EffectSpec{
			Meeting: &Meeting{
				ClientID:      action.ClientID,
				Title:         action.Title,
				Description:   action.Description,
				Status:        types.MeetingStatusPending,
				SuggestedDate: now.Add(MeetingLeadTime),
			},
		}

	default:
		return nil
	}
}

// CompletionEmail builds the closing notification for a completed action.
// Returns nil when the client has no email address on file.
func CompletionEmail(action *ProcessAction, client *Client) *EmailQueueEntry {
	if client.Email == "" {
		return nil
	}
	return &EmailQueueEntry{
		To:      client.Email,
		Subject: fmt.Sprintf("%s Completed", action.Title),
		Content: fmt.Sprintf("Dear %s,\n\nThe action %q has been completed.\n\nBest regards,\nYour Agent", client.Name, action.Title),
		Status:  types.EmailStatusPending,
	}
}
