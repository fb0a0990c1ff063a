package memory

import (
	"context"
	"sync"
	"time"

	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type checklistRepository struct {
	mu    sync.RWMutex
	items map[types.ChecklistItemID]*model.ChecklistItem
	order []types.ChecklistItemID
}

func newChecklistRepository() *checklistRepository {
	return &checklistRepository{
		items: make(map[types.ChecklistItemID]*model.ChecklistItem),
	}
}

func copyChecklistItem(i *model.ChecklistItem) *model.ChecklistItem {
	cp := *i
	return &cp
}

func (r *checklistRepository) Create(ctx context.Context, item *model.ChecklistItem) (*model.ChecklistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyChecklistItem(item)
	if created.ID == "" {
		created.ID = types.NewChecklistItemID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.items[created.ID] = created
	r.order = append(r.order, created.ID)
	return copyChecklistItem(created), nil
}

func (r *checklistRepository) Get(ctx context.Context, id types.ChecklistItemID) (*model.ChecklistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "checklist item not found", goerr.V("id", id))
	}

	return copyChecklistItem(item), nil
}

func (r *checklistRepository) Update(ctx context.Context, item *model.ChecklistItem) (*model.ChecklistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.items[item.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "checklist item not found", goerr.V("id", item.ID))
	}

	updated := copyChecklistItem(item)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.items[updated.ID] = updated
	return copyChecklistItem(updated), nil
}

func (r *checklistRepository) Delete(ctx context.Context, id types.ChecklistItemID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return goerr.Wrap(ErrNotFound, "checklist item not found", goerr.V("id", id))
	}

	delete(r.items, id)
	for i, itemID := range r.order {
		if itemID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *checklistRepository) ListByStage(ctx context.Context, stageID types.StageID) ([]*model.ChecklistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.ChecklistItem, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.StageID == stageID {
			result = append(result, copyChecklistItem(item))
		}
	}

	return result, nil
}
