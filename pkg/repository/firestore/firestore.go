package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/casaflow/casaflow/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// Firestore is a Firestore-backed implementation of interfaces.Repository
type Firestore struct {
	client          *firestore.Client
	clientRepo      *clientRepository
	processAction   *processActionRepository
	emailQueue      *emailQueueRepository
	documentRequest *documentRequestRepository
	meeting         *meetingRepository
	interaction     *interactionRepository
	checklist       *checklistRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests sharing a
// project
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.clientRepo.collectionPrefix = prefix
		f.processAction.collectionPrefix = prefix
		f.emailQueue.collectionPrefix = prefix
		f.documentRequest.collectionPrefix = prefix
		f.meeting.collectionPrefix = prefix
		f.interaction.collectionPrefix = prefix
		f.checklist.collectionPrefix = prefix
	}
}

// New creates a new Firestore repository. The caller is responsible for
// calling Close.
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:          client,
		clientRepo:      newClientRepository(client),
		processAction:   newProcessActionRepository(client),
		emailQueue:      newEmailQueueRepository(client),
		documentRequest: newDocumentRequestRepository(client),
		meeting:         newMeetingRepository(client),
		interaction:     newInteractionRepository(client),
		checklist:       newChecklistRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Client() interfaces.ClientRepository { return f.clientRepo }
func (f *Firestore) ProcessAction() interfaces.ProcessActionRepository { return f.processAction }
func (f *Firestore) EmailQueue() interfaces.EmailQueueRepository { return f.emailQueue }
func (f *Firestore) DocumentRequest() interfaces.DocumentRequestRepository { return f.documentRequest }
func (f *Firestore) Meeting() interfaces.MeetingRepository { return f.meeting }
func (f *Firestore) Interaction() interfaces.InteractionRepository { return f.interaction }
func (f *Firestore) Checklist() interfaces.ChecklistRepository { return f.checklist }

// Close closes the underlying Firestore client
func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}

func collection(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}
