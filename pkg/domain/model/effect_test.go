package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func testAction() *model.ProcessAction {
	return &model.ProcessAction{
		ID:          types.NewActionID(),
		ClientID:    "client-1",
		Title:       "Send listing agreement",
		Description: "Please review and sign the attached agreement",
		Type:        "DOCUMENT",
		Status:      types.ActionStatusPending,
	}
}

func testClient() *model.Client {
	return &model.Client{
		ID:    "client-1",
		Name:  "Alice Archer",
		Email: "alice@example.com",
	}
}

func TestResolveEffectEmail(t *testing.T) {
	t.Run("client with email produces queue entry", func(t *testing.T) {
		action := testAction()
		client := testClient()
		task := &model.AutomatedTask{Type: types.TaskTypeEmail, ActionID: action.ID}

		spec := model.ResolveEffect(task, action, client, time.Now())
		gt.Value(t, spec).NotNil()
		gt.Value(t, spec.Document).Nil()
		gt.Value(t, spec.Meeting).Nil()

		email := spec.Email
		gt.Value(t, email).NotNil()
		gt.Value(t, email.To).Equal("alice@example.com")
		gt.Value(t, email.Subject).Equal("Action Required: Send listing agreement")
		gt.Value(t, email.Status).Equal(types.EmailStatusPending)
		gt.Bool(t, strings.Contains(email.Content, "Dear Alice Archer,")).True()
		gt.Bool(t, strings.Contains(email.Content, action.Description)).True()
	})

	t.Run("client without email is a no-op", func(t *testing.T) {
		action := testAction()
		client := testClient()
		client.Email = ""
		task := &model.AutomatedTask{Type: types.TaskTypeEmail, ActionID: action.ID}

		spec := model.ResolveEffect(task, action, client, time.Now())
		gt.Value(t, spec).Nil()
	})
}

func TestResolveEffectDocumentRequest(t *testing.T) {
	action := testAction()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	task := &model.AutomatedTask{Type: types.TaskTypeDocumentRequest, ActionID: action.ID}

	spec := model.ResolveEffect(task, action, testClient(), now)
	gt.Value(t, spec).NotNil()

	doc := spec.Document
	gt.Value(t, doc).NotNil()
	gt.Value(t, doc.ClientID).Equal(action.ClientID)
	gt.Value(t, doc.Title).Equal(action.Title)
	gt.Value(t, doc.Status).Equal(types.DocumentRequestStatusPending)
	gt.Value(t, doc.DueDate).Equal(now.Add(7 * 24 * time.Hour))
}

func TestResolveEffectCalendarInvite(t *testing.T) {
	action := testAction()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	task := &model.AutomatedTask{Type: types.TaskTypeCalendarInvite, ActionID: action.ID}

	spec := model.ResolveEffect(task, action, testClient(), now)
	gt.Value(t, spec).NotNil()

	meeting := spec.Meeting
	gt.Value(t, meeting).NotNil()
	gt.Value(t, meeting.ClientID).Equal(action.ClientID)
	gt.Value(t, meeting.Status).Equal(types.MeetingStatusPending)
	gt.Value(t, meeting.SuggestedDate).Equal(now.Add(3 * 24 * time.Hour))
}

func TestCompletionEmail(t *testing.T) {
	t.Run("client with email", func(t *testing.T) {
		action := testAction()
		email := model.CompletionEmail(action, testClient())
		gt.Value(t, email).NotNil()
		gt.Value(t, email.To).Equal("alice@example.com")
		gt.Value(t, email.Subject).Equal("Send listing agreement Completed")
		gt.Value(t, email.Status).Equal(types.EmailStatusPending)
		gt.Bool(t, strings.Contains(email.Content, action.Title)).True()
	})

	t.Run("client without email", func(t *testing.T) {
		client := testClient()
		client.Email = ""
		gt.Value(t, model.CompletionEmail(testAction(), client)).Nil()
	})
}
