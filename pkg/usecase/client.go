package usecase

import (
	"context"

	"github.com/casaflow/casaflow/pkg/domain/interfaces"
	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// ClientUseCase manages the client directory
type ClientUseCase struct {
	repo interfaces.Repository
}

func NewClientUseCase(repo interfaces.Repository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (uc *ClientUseCase) Create(ctx context.Context, name, email, phone string) (*model.Client, error) {
	if name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "client name is required")
	}

	created, err := uc.repo.Client().Create(ctx, &model.Client{
		Name:  name,
		Email: email,
		Phone: phone,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create client")
	}

	return created, nil
}

func (uc *ClientUseCase) Get(ctx context.Context, id types.ClientID) (*model.Client, error) {
	client, err := uc.repo.Client().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrClientNotFound, "client not found", goerr.V(ClientIDKey, id))
	}
	return client, nil
}

func (uc *ClientUseCase) List(ctx context.Context) ([]*model.Client, error) {
	clients, err := uc.repo.Client().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list clients")
	}
	return clients, nil
}

// ClientOverview aggregates everything the back office shows on a client page
type ClientOverview struct {
	Client           *model.Client
	Actions          []*model.ProcessAction
	Interactions     []*model.Interaction
	DocumentRequests []*model.DocumentRequest
	Meetings         []*model.Meeting
}

// Overview fetches a client's records concurrently
func (uc *ClientUseCase) Overview(ctx context.Context, id types.ClientID) (*ClientOverview, error) {
	client, err := uc.repo.Client().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrClientNotFound, "client not found", goerr.V(ClientIDKey, id))
	}

	overview := &ClientOverview{Client: client}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		actions, err := uc.repo.ProcessAction().ListByClient(ctx, id)
		if err != nil {
			return goerr.Wrap(err, "failed to list process actions")
		}
		overview.Actions = actions
		return nil
	})
	eg.Go(func() error {
		interactions, err := uc.repo.Interaction().ListByClient(ctx, id)
		if err != nil {
			return goerr.Wrap(err, "failed to list interactions")
		}
		overview.Interactions = interactions
		return nil
	})
	eg.Go(func() error {
		requests, err := uc.repo.DocumentRequest().ListByClient(ctx, id)
		if err != nil {
			return goerr.Wrap(err, "failed to list document requests")
		}
		overview.DocumentRequests = requests
		return nil
	})
	eg.Go(func() error {
		meetings, err := uc.repo.Meeting().ListByClient(ctx, id)
		if err != nil {
			return goerr.Wrap(err, "failed to list meetings")
		}
		overview.Meetings = meetings
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to build client overview", goerr.V(ClientIDKey, id))
	}

	return overview, nil
}

// ListInteractions returns a client's interaction history, newest first
func (uc *ClientUseCase) ListInteractions(ctx context.Context, id types.ClientID) ([]*model.Interaction, error) {
	if _, err := uc.repo.Client().Get(ctx, id); err != nil {
		return nil, goerr.Wrap(ErrClientNotFound, "client not found", goerr.V(ClientIDKey, id))
	}

	interactions, err := uc.repo.Interaction().ListByClient(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list interactions", goerr.V(ClientIDKey, id))
	}
	return interactions, nil
}
