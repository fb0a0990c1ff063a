package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/casaflow/casaflow/pkg/domain/interfaces"
	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/casaflow/casaflow/pkg/repository/memory"
	"github.com/casaflow/casaflow/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func seedClient(t *testing.T, repo interfaces.Repository, email string) *model.Client {
	t.Helper()
	client, err := repo.Client().Create(context.Background(), &model.Client{
		Name:  "Alice Archer",
		Email: email,
	})
	gt.NoError(t, err).Required()
	return client
}

func TestProcessUseCase_CreateAction(t *testing.T) {
	t.Run("creates one task per requested type in order", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, repo, "a@b.com")

		created, err := uc.Process.CreateAction(ctx, client.ID, usecase.CreateActionInput{
			Title:       "Send agreement",
			Description: "Please sign the listing agreement",
			Type:        "DOCUMENT",
			TaskTypes: []types.TaskType{
				types.TaskTypeCalendarInvite,
				types.TaskTypeEmail,
				types.TaskTypeDocumentRequest,
			},
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.Status).Equal(types.ActionStatusPending)
		gt.Array(t, created.Tasks).Length(3)
		gt.Value(t, created.Tasks[0].Type).Equal(types.TaskTypeCalendarInvite)
		gt.Value(t, created.Tasks[1].Type).Equal(types.TaskTypeEmail)
		gt.Value(t, created.Tasks[2].Type).Equal(types.TaskTypeDocumentRequest)
		for _, task := range created.Tasks {
			gt.Value(t, task.Status).Equal(types.TaskStatusDispatched)
			gt.Value(t, task.ActionID).Equal(created.ID)
		}
	})

	t.Run("empty title fails before any write", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, repo, "a@b.com")

		_, err := uc.Process.CreateAction(ctx, client.ID, usecase.CreateActionInput{
			Title: "",
			Type:  "DOCUMENT",
		})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)

		actions, err := uc.Process.ListActions(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, actions).Length(0)
	})

	t.Run("empty type fails", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		client := seedClient(t, repo, "a@b.com")

		_, err := uc.Process.CreateAction(context.Background(), client.ID, usecase.CreateActionInput{
			Title: "Send agreement",
		})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})

	t.Run("unknown task type fails", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		client := seedClient(t, repo, "a@b.com")

		_, err := uc.Process.CreateAction(context.Background(), client.ID, usecase.CreateActionInput{
			Title:     "Send agreement",
			Type:      "DOCUMENT",
			TaskTypes: []types.TaskType{"PHONE_CALL"},
		})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})

	t.Run("unknown client fails", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		_, err := uc.Process.CreateAction(context.Background(), "no-such-client", usecase.CreateActionInput{
			Title: "Send agreement",
			Type:  "DOCUMENT",
		})
		gt.Error(t, err).Is(usecase.ErrClientNotFound)
	})

	t.Run("email task without client email is dispatched with no queue entry", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, repo, "")

		created, err := uc.Process.CreateAction(ctx, client.ID, usecase.CreateActionInput{
			Title:     "Send agreement",
			Type:      "DOCUMENT",
			TaskTypes: []types.TaskType{types.TaskTypeEmail},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Tasks[0].Status).Equal(types.TaskStatusDispatched)

		pending, err := repo.EmailQueue().ListPending(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, pending).Length(0)
	})

	t.Run("derived records carry the fixed scheduling offsets", func(t *testing.T) {
		repo := memory.New()
		now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
		uc := usecase.New(repo, usecase.WithClock(func() time.Time { return now }))
		ctx := context.Background()
		client := seedClient(t, repo, "a@b.com")

		_, err := uc.Process.CreateAction(ctx, client.ID, usecase.CreateActionInput{
			Title:     "Collect disclosure",
			Type:      "DOCUMENT",
			TaskTypes: []types.TaskType{types.TaskTypeDocumentRequest, types.TaskTypeCalendarInvite},
		})
		gt.NoError(t, err).Required()

		requests, err := repo.DocumentRequest().ListByClient(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, requests).Length(1)
		gt.Value(t, requests[0].DueDate).Equal(now.Add(7 * 24 * time.Hour))

		meetings, err := repo.Meeting().ListByClient(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, meetings).Length(1)
		gt.Value(t, meetings[0].SuggestedDate).Equal(now.Add(3 * 24 * time.Hour))
	})

	t.Run("appends one audit interaction", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, repo, "a@b.com")

		_, err := uc.Process.CreateAction(ctx, client.ID, usecase.CreateActionInput{
			Title:     "Send agreement",
			Type:      "DOCUMENT",
			TaskTypes: []types.TaskType{types.TaskTypeEmail},
		})
		gt.NoError(t, err).Required()

		interactions, err := repo.Interaction().ListByClient(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, interactions).Length(1)
		gt.Value(t, interactions[0].Type).Equal(model.InteractionTypeProcess)
		gt.Value(t, interactions[0].Description).Equal("Added process action: Send agreement")
	})

	t.Run("full scenario: email plus document request", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, repo, "a@b.com")

		created, err := uc.Process.CreateAction(ctx, client.ID, usecase.CreateActionInput{
			Title:       "Send agreement",
			Description: "Listing agreement for 42 Main St",
			Type:        "DOCUMENT",
			TaskTypes:   []types.TaskType{types.TaskTypeEmail, types.TaskTypeDocumentRequest},
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.Status).Equal(types.ActionStatusPending)
		gt.Array(t, created.Tasks).Length(2)
		gt.Value(t, created.Tasks[0].Status).Equal(types.TaskStatusDispatched)
		gt.Value(t, created.Tasks[1].Status).Equal(types.TaskStatusDispatched)

		pending, err := repo.EmailQueue().ListPending(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, pending).Length(1)
		gt.Value(t, pending[0].To).Equal("a@b.com")
		gt.Value(t, pending[0].Subject).Equal("Action Required: Send agreement")

		requests, err := repo.DocumentRequest().ListByClient(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, requests).Length(1)

		interactions, err := repo.Interaction().ListByClient(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, interactions).Length(1)
	})
}

// failingEmailQueue simulates a downstream store whose writes fail
type failingEmailQueue struct{}

func (f *failingEmailQueue) Enqueue(ctx context.Context, entry *model.EmailQueueEntry) (*model.EmailQueueEntry, error) {
	return nil, goerr.New("email queue unavailable")
}

func (f *failingEmailQueue) ListPending(ctx context.Context) ([]*model.EmailQueueEntry, error) {
	return nil, goerr.New("email queue unavailable")
}

// repoWithFailingEmailQueue wraps a repository, replacing the email queue
type repoWithFailingEmailQueue struct {
	interfaces.Repository
}

func (r *repoWithFailingEmailQueue) EmailQueue() interfaces.EmailQueueRepository {
	return &failingEmailQueue{}
}

func TestProcessUseCase_PartialFailure(t *testing.T) {
	t.Run("one failing derived write never aborts siblings or the action", func(t *testing.T) {
		base := memory.New()
		repo := &repoWithFailingEmailQueue{Repository: base}
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, base, "a@b.com")

		created, err := uc.Process.CreateAction(ctx, client.ID, usecase.CreateActionInput{
			Title:       "Send agreement",
			Description: "Listing agreement",
			Type:        "DOCUMENT",
			TaskTypes: []types.TaskType{
				types.TaskTypeEmail,
				types.TaskTypeDocumentRequest,
				types.TaskTypeCalendarInvite,
			},
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.Tasks[0].Status).Equal(types.TaskStatusFailed)
		gt.Bool(t, strings.Contains(created.Tasks[0].Error, "email queue unavailable")).True()
		gt.Value(t, created.Tasks[1].Status).Equal(types.TaskStatusDispatched)
		gt.Value(t, created.Tasks[2].Status).Equal(types.TaskStatusDispatched)

		// Final task statuses are persisted, not just returned
		stored, err := base.ProcessAction().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, stored.Tasks[0].Status).Equal(types.TaskStatusFailed)
		gt.Value(t, stored.Tasks[1].Status).Equal(types.TaskStatusDispatched)
		gt.Value(t, stored.Tasks[2].Status).Equal(types.TaskStatusDispatched)
	})
}

// failingInteractionLog simulates an unavailable audit log
type failingInteractionLog struct{}

func (f *failingInteractionLog) Append(ctx context.Context, i *model.Interaction) (*model.Interaction, error) {
	return nil, goerr.New("interaction log unavailable")
}

func (f *failingInteractionLog) ListByClient(ctx context.Context, id types.ClientID) ([]*model.Interaction, error) {
	return nil, goerr.New("interaction log unavailable")
}

type repoWithFailingInteractionLog struct {
	interfaces.Repository
}

func (r *repoWithFailingInteractionLog) Interaction() interfaces.InteractionRepository {
	return &failingInteractionLog{}
}

func TestProcessUseCase_AuditBestEffort(t *testing.T) {
	t.Run("audit write failure does not fail creation", func(t *testing.T) {
		base := memory.New()
		repo := &repoWithFailingInteractionLog{Repository: base}
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, base, "a@b.com")

		created, err := uc.Process.CreateAction(ctx, client.ID, usecase.CreateActionInput{
			Title:     "Send agreement",
			Type:      "DOCUMENT",
			TaskTypes: []types.TaskType{types.TaskTypeEmail},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Tasks[0].Status).Equal(types.TaskStatusDispatched)
	})
}

func TestProcessUseCase_UpdateStatus(t *testing.T) {
	newAction := func(t *testing.T, uc *usecase.UseCases, clientID types.ClientID) *model.ProcessAction {
		t.Helper()
		created, err := uc.Process.CreateAction(context.Background(), clientID, usecase.CreateActionInput{
			Title:     "Send agreement",
			Type:      "DOCUMENT",
			TaskTypes: []types.TaskType{},
		})
		gt.NoError(t, err).Required()
		return created
	}

	t.Run("pending to completed sets completedAt and notifies once", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, repo, "a@b.com")
		action := newAction(t, uc, client.ID)

		updated, err := uc.Process.UpdateStatus(ctx, action.ID, types.ActionStatusCompleted, nil)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.ActionStatusCompleted)
		gt.Value(t, updated.CompletedAt).NotNil()

		pending, err := repo.EmailQueue().ListPending(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, pending).Length(1)
		gt.Bool(t, strings.Contains(pending[0].Subject, action.Title)).True()
	})

	t.Run("completion without client email is a quiet no-op", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, repo, "")
		action := newAction(t, uc, client.ID)

		updated, err := uc.Process.UpdateStatus(ctx, action.ID, types.ActionStatusCompleted, nil)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.CompletedAt).NotNil()

		pending, err := repo.EmailQueue().ListPending(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, pending).Length(0)
	})

	t.Run("completedAt stays unset outside COMPLETED", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		client := seedClient(t, repo, "a@b.com")
		action := newAction(t, uc, client.ID)
		gt.Value(t, action.CompletedAt).Nil()

		updated, err := uc.Process.UpdateStatus(context.Background(), action.ID, types.ActionStatusInProgress, nil)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.ActionStatusInProgress)
		gt.Value(t, updated.CompletedAt).Nil()
	})

	t.Run("terminal states reject any transition", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, repo, "a@b.com")

		completed := newAction(t, uc, client.ID)
		_, err := uc.Process.UpdateStatus(ctx, completed.ID, types.ActionStatusCompleted, nil)
		gt.NoError(t, err).Required()

		for _, next := range types.AllActionStatuses() {
			_, err := uc.Process.UpdateStatus(ctx, completed.ID, next, nil)
			gt.Error(t, err).Is(usecase.ErrInvalidTransition)
		}

		cancelled := newAction(t, uc, client.ID)
		_, err = uc.Process.UpdateStatus(ctx, cancelled.ID, types.ActionStatusCancelled, nil)
		gt.NoError(t, err).Required()

		for _, next := range types.AllActionStatuses() {
			_, err := uc.Process.UpdateStatus(ctx, cancelled.ID, next, nil)
			gt.Error(t, err).Is(usecase.ErrInvalidTransition)
		}
	})

	t.Run("completedAt is written once and never overwritten", func(t *testing.T) {
		repo := memory.New()
		now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		uc := usecase.New(repo, usecase.WithClock(func() time.Time { return now }))
		ctx := context.Background()
		client := seedClient(t, repo, "a@b.com")
		action := newAction(t, uc, client.ID)

		updated, err := uc.Process.UpdateStatus(ctx, action.ID, types.ActionStatusCompleted, nil)
		gt.NoError(t, err).Required()
		gt.Value(t, *updated.CompletedAt).Equal(now)

		// Double completion is rejected by the transition table
		_, err = uc.Process.UpdateStatus(ctx, action.ID, types.ActionStatusCompleted, nil)
		gt.Error(t, err).Is(usecase.ErrInvalidTransition)

		stored, err := repo.ProcessAction().Get(ctx, action.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, *stored.CompletedAt).Equal(now)
	})

	t.Run("notes are applied on update", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		client := seedClient(t, repo, "a@b.com")
		action := newAction(t, uc, client.ID)

		notes := "client asked for a delay"
		updated, err := uc.Process.UpdateStatus(context.Background(), action.ID, types.ActionStatusInProgress, &notes)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Notes).Equal(notes)
	})

	t.Run("unknown action fails", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		_, err := uc.Process.UpdateStatus(context.Background(), "no-such-action", types.ActionStatusCompleted, nil)
		gt.Error(t, err).Is(usecase.ErrActionNotFound)
	})
}

func TestProcessUseCase_ListActions(t *testing.T) {
	t.Run("ordered by creation time ascending with tasks", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()
		client := seedClient(t, repo, "a@b.com")

		titles := []string{"first", "second", "third"}
		for _, title := range titles {
			_, err := uc.Process.CreateAction(ctx, client.ID, usecase.CreateActionInput{
				Title:     title,
				Type:      "FOLLOW_UP",
				TaskTypes: []types.TaskType{types.TaskTypeEmail},
			})
			gt.NoError(t, err).Required()
		}

		actions, err := uc.Process.ListActions(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, actions).Length(3)
		for i, title := range titles {
			gt.Value(t, actions[i].Title).Equal(title)
			gt.Array(t, actions[i].Tasks).Length(1)
		}
	})

	t.Run("unknown client lists empty", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)

		actions, err := uc.Process.ListActions(context.Background(), "no-such-client")
		gt.NoError(t, err).Required()
		gt.Array(t, actions).Length(0)
	})
}
