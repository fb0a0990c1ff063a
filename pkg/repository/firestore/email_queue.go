package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

type emailQueueRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newEmailQueueRepository(client *firestore.Client) *emailQueueRepository {
	return &emailQueueRepository{client: client}
}

func (r *emailQueueRepository) collection() string {
	return collection(r.collectionPrefix, "email_queue")
}

func (r *emailQueueRepository) Enqueue(ctx context.Context, entry *model.EmailQueueEntry) (*model.EmailQueueEntry, error) {
	now := time.Now().UTC()
	created := *entry
	if created.ID == "" {
		created.ID = types.NewEmailID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to enqueue email", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *emailQueueRepository) ListPending(ctx context.Context) ([]*model.EmailQueueEntry, error) {
	iter := r.client.Collection(r.collection()).
		Where("Status", "==", types.EmailStatusPending).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	entries := make([]*model.EmailQueueEntry, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate email queue")
		}

		var entry model.EmailQueueEntry
		if err := docSnap.DataTo(&entry); err != nil {
			return nil, goerr.Wrap(err, "failed to decode email queue entry")
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
