package usecase_test

import (
	"context"
	"testing"

	"github.com/casaflow/casaflow/pkg/repository/memory"
	"github.com/casaflow/casaflow/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestChecklistUseCase(t *testing.T) {
	t.Run("add and list items in creation order", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		ctx := context.Background()

		first, err := uc.Checklist.AddItem(ctx, "stage-1", "Order inspection")
		gt.NoError(t, err).Required()
		gt.Bool(t, first.Completed).False()

		_, err = uc.Checklist.AddItem(ctx, "stage-1", "Collect deposit")
		gt.NoError(t, err).Required()

		_, err = uc.Checklist.AddItem(ctx, "stage-2", "Unrelated stage")
		gt.NoError(t, err).Required()

		items, err := uc.Checklist.ListByStage(ctx, "stage-1")
		gt.NoError(t, err).Required()
		gt.Array(t, items).Length(2)
		gt.Value(t, items[0].Text).Equal("Order inspection")
		gt.Value(t, items[1].Text).Equal("Collect deposit")
	})

	t.Run("empty text fails", func(t *testing.T) {
		uc := usecase.New(memory.New())
		_, err := uc.Checklist.AddItem(context.Background(), "stage-1", "")
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})

	t.Run("toggle completed", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		item, err := uc.Checklist.AddItem(ctx, "stage-1", "Order inspection")
		gt.NoError(t, err).Required()

		updated, err := uc.Checklist.SetCompleted(ctx, item.ID, true)
		gt.NoError(t, err).Required()
		gt.Bool(t, updated.Completed).True()

		updated, err = uc.Checklist.SetCompleted(ctx, item.ID, false)
		gt.NoError(t, err).Required()
		gt.Bool(t, updated.Completed).False()
	})

	t.Run("toggle missing item fails", func(t *testing.T) {
		uc := usecase.New(memory.New())
		_, err := uc.Checklist.SetCompleted(context.Background(), "no-such-item", true)
		gt.Error(t, err).Is(usecase.ErrChecklistItemNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		item, err := uc.Checklist.AddItem(ctx, "stage-1", "Order inspection")
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Checklist.Delete(ctx, item.ID)).Required()

		err = uc.Checklist.Delete(ctx, item.ID)
		gt.Error(t, err).Is(usecase.ErrChecklistItemNotFound)
	})
}
