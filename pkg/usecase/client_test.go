package usecase_test

import (
	"context"
	"testing"

	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/casaflow/casaflow/pkg/repository/memory"
	"github.com/casaflow/casaflow/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestClientUseCase(t *testing.T) {
	t.Run("create and get", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Client.Create(ctx, "Alice Archer", "alice@example.com", "555-0100")
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).NotEqual(types.ClientID(""))

		got, err := uc.Client.Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("Alice Archer")
		gt.Value(t, got.Email).Equal("alice@example.com")
	})

	t.Run("name is required", func(t *testing.T) {
		uc := usecase.New(memory.New())
		_, err := uc.Client.Create(context.Background(), "", "alice@example.com", "")
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})

	t.Run("get missing client fails", func(t *testing.T) {
		uc := usecase.New(memory.New())
		_, err := uc.Client.Get(context.Background(), "no-such-client")
		gt.Error(t, err).Is(usecase.ErrClientNotFound)
	})
}

func TestClientUseCase_Overview(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo)
	ctx := context.Background()

	client, err := uc.Client.Create(ctx, "Alice Archer", "alice@example.com", "")
	gt.NoError(t, err).Required()

	_, err = uc.Process.CreateAction(ctx, client.ID, usecase.CreateActionInput{
		Title:     "Send agreement",
		Type:      "DOCUMENT",
		TaskTypes: []types.TaskType{types.TaskTypeEmail, types.TaskTypeDocumentRequest, types.TaskTypeCalendarInvite},
	})
	gt.NoError(t, err).Required()

	overview, err := uc.Client.Overview(ctx, client.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, overview.Client.ID).Equal(client.ID)
	gt.Array(t, overview.Actions).Length(1)
	gt.Array(t, overview.Interactions).Length(1)
	gt.Array(t, overview.DocumentRequests).Length(1)
	gt.Array(t, overview.Meetings).Length(1)

	_, err = uc.Client.Overview(ctx, "no-such-client")
	gt.Error(t, err).Is(usecase.ErrClientNotFound)
}
