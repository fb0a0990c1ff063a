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

type documentRequestRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newDocumentRequestRepository(client *firestore.Client) *documentRequestRepository {
	return &documentRequestRepository{client: client}
}

func (r *documentRequestRepository) collection() string {
	return collection(r.collectionPrefix, "document_requests")
}

func (r *documentRequestRepository) Create(ctx context.Context, req *model.DocumentRequest) (*model.DocumentRequest, error) {
	now := time.Now().UTC()
	created := *req
	if created.ID == "" {
		created.ID = types.NewDocumentRequestID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create document request", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *documentRequestRepository) ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.DocumentRequest, error) {
	iter := r.client.Collection(r.collection()).
		Where("ClientID", "==", clientID.String()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	requests := make([]*model.DocumentRequest, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate document requests", goerr.V("client_id", clientID))
		}

		var req model.DocumentRequest
		if err := docSnap.DataTo(&req); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document request")
		}
		requests = append(requests, &req)
	}

	return requests, nil
}

type meetingRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMeetingRepository(client *firestore.Client) *meetingRepository {
	return &meetingRepository{client: client}
}

func (r *meetingRepository) collection() string {
	return collection(r.collectionPrefix, "meetings")
}

func (r *meetingRepository) Create(ctx context.Context, meeting *model.Meeting) (*model.Meeting, error) {
	now := time.Now().UTC()
	created := *meeting
	if created.ID == "" {
		created.ID = types.NewMeetingID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create meeting", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *meetingRepository) ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.Meeting, error) {
	iter := r.client.Collection(r.collection()).
		Where("ClientID", "==", clientID.String()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	meetings := make([]*model.Meeting, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate meetings", goerr.V("client_id", clientID))
		}

		var meeting model.Meeting
		if err := docSnap.DataTo(&meeting); err != nil {
			return nil, goerr.Wrap(err, "failed to decode meeting")
		}
		meetings = append(meetings, &meeting)
	}

	return meetings, nil
}

type interactionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newInteractionRepository(client *firestore.Client) *interactionRepository {
	return &interactionRepository{client: client}
}

func (r *interactionRepository) collection() string {
	return collection(r.collectionPrefix, "interactions")
}

func (r *interactionRepository) Append(ctx context.Context, interaction *model.Interaction) (*model.Interaction, error) {
	created := *interaction
	if created.ID == "" {
		created.ID = types.NewInteractionID()
	}
	if created.Date.IsZero() {
		created.Date = time.Now().UTC()
	}

	// Create, not Set: the interaction log is append-only
	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Create(ctx, created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append interaction", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *interactionRepository) ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.Interaction, error) {
	iter := r.client.Collection(r.collection()).
		Where("ClientID", "==", clientID.String()).
		OrderBy("Date", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	interactions := make([]*model.Interaction, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate interactions", goerr.V("client_id", clientID))
		}

		var interaction model.Interaction
		if err := docSnap.DataTo(&interaction); err != nil {
			return nil, goerr.Wrap(err, "failed to decode interaction")
		}
		interactions = append(interactions, &interaction)
	}

	return interactions, nil
}
