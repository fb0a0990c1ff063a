package interfaces

import (
	"context"

	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
)

// ClientRepository defines the interface for Client data access
type ClientRepository interface {
	// Create creates a new client
	Create(ctx context.Context, client *model.Client) (*model.Client, error)

	// Get retrieves a client by ID
	Get(ctx context.Context, id types.ClientID) (*model.Client, error)

	// List retrieves all clients
	List(ctx context.Context) ([]*model.Client, error)

	// Update updates an existing client
	Update(ctx context.Context, client *model.Client) (*model.Client, error)
}
