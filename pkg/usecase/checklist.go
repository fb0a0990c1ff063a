package usecase

import (
	"context"

	"github.com/casaflow/casaflow/pkg/domain/interfaces"
	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ChecklistUseCase manages per-stage checklist items
type ChecklistUseCase struct {
	repo interfaces.Repository
}

func NewChecklistUseCase(repo interfaces.Repository) *ChecklistUseCase {
	return &ChecklistUseCase{repo: repo}
}

func (uc *ChecklistUseCase) AddItem(ctx context.Context, stageID types.StageID, text string) (*model.ChecklistItem, error) {
	if err := stageID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid stage ID")
	}
	if text == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "checklist item text is required")
	}

	created, err := uc.repo.Checklist().Create(ctx, &model.ChecklistItem{
		StageID:   stageID,
		Text:      text,
		Completed: false,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create checklist item", goerr.V("stage_id", stageID))
	}

	return created, nil
}

func (uc *ChecklistUseCase) SetCompleted(ctx context.Context, id types.ChecklistItemID, completed bool) (*model.ChecklistItem, error) {
	item, err := uc.repo.Checklist().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrChecklistItemNotFound, "checklist item not found", goerr.V(ItemIDKey, id))
	}

	item.Completed = completed
	updated, err := uc.repo.Checklist().Update(ctx, item)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update checklist item", goerr.V(ItemIDKey, id))
	}

	return updated, nil
}

func (uc *ChecklistUseCase) Delete(ctx context.Context, id types.ChecklistItemID) error {
	if _, err := uc.repo.Checklist().Get(ctx, id); err != nil {
		return goerr.Wrap(ErrChecklistItemNotFound, "checklist item not found", goerr.V(ItemIDKey, id))
	}

	if err := uc.repo.Checklist().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete checklist item", goerr.V(ItemIDKey, id))
	}

	return nil
}

func (uc *ChecklistUseCase) ListByStage(ctx context.Context, stageID types.StageID) ([]*model.ChecklistItem, error) {
	items, err := uc.repo.Checklist().ListByStage(ctx, stageID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list checklist items", goerr.V("stage_id", stageID))
	}
	return items, nil
}
