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

type clientRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newClientRepository(client *firestore.Client) *clientRepository {
	return &clientRepository{client: client}
}

func (r *clientRepository) collection() string {
	return collection(r.collectionPrefix, "clients")
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	now := time.Now().UTC()
	created := *client
	if created.ID == "" {
		created.ID = types.NewClientID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create client", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *clientRepository) Get(ctx context.Context, id types.ClientID) (*model.Client, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "client not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get client", goerr.V("id", id))
	}

	var client model.Client
	if err := docSnap.DataTo(&client); err != nil {
		return nil, goerr.Wrap(err, "failed to decode client", goerr.V("id", id))
	}

	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*model.Client, error) {
	iter := r.client.Collection(r.collection()).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	clients := make([]*model.Client, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate clients")
		}

		var client model.Client
		if err := docSnap.DataTo(&client); err != nil {
			return nil, goerr.Wrap(err, "failed to decode client")
		}
		clients = append(clients, &client)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client *model.Client) (*model.Client, error) {
	docRef := r.client.Collection(r.collection()).Doc(client.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "client not found", goerr.V("id", client.ID))
		}
		return nil, goerr.Wrap(err, "failed to get client", goerr.V("id", client.ID))
	}

	var existing model.Client
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode client", goerr.V("id", client.ID))
	}

	updated := *client
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update client", goerr.V("id", client.ID))
	}

	return &updated, nil
}
