package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type checklistRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newChecklistRepository(client *firestore.Client) *checklistRepository {
	return &checklistRepository{client: client}
}

func (r *checklistRepository) collection() string {
	return collection(r.collectionPrefix, "stage_checklists")
}

func (r *checklistRepository) Create(ctx context.Context, item *model.ChecklistItem) (*model.ChecklistItem, error) {
	now := time.Now().UTC()
	created := *item
	if created.ID == "" {
		created.ID = types.NewChecklistItemID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create checklist item", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *checklistRepository) Get(ctx context.Context, id types.ChecklistItemID) (*model.ChecklistItem, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "checklist item not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get checklist item", goerr.V("id", id))
	}

	var item model.ChecklistItem
	if err := docSnap.DataTo(&item); err != nil {
		return nil, goerr.Wrap(err, "failed to decode checklist item", goerr.V("id", id))
	}

	return &item, nil
}

func (r *checklistRepository) Update(ctx context.Context, item *model.ChecklistItem) (*model.ChecklistItem, error) {
	docRef := r.client.Collection(r.collection()).Doc(item.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "checklist item not found", goerr.V("id", item.ID))
		}
		return nil, goerr.Wrap(err, "failed to get checklist item", goerr.V("id", item.ID))
	}

	var existing model.ChecklistItem
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode checklist item", goerr.V("id", item.ID))
	}

	updated := *item
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update checklist item", goerr.V("id", item.ID))
	}

	return &updated, nil
}

func (r *checklistRepository) Delete(ctx context.Context, id types.ChecklistItemID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "checklist item not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get checklist item", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete checklist item", goerr.V("id", id))
	}

	return nil
}

func (r *checklistRepository) ListByStage(ctx context.Context, stageID types.StageID) ([]*model.ChecklistItem, error) {
	iter := r.client.Collection(r.collection()).
		Where("StageID", "==", stageID.String()).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	items := make([]*model.ChecklistItem, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate checklist items", goerr.V("stage_id", stageID))
		}

		var item model.ChecklistItem
		if err := docSnap.DataTo(&item); err != nil {
			return nil, goerr.Wrap(err, "failed to decode checklist item")
		}
		items = append(items, &item)
	}

	return items, nil
}
