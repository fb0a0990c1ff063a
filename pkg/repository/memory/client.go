package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type clientEntry struct {
	client *model.Client
	seq    int64
}

type clientRepository struct {
	mu      sync.RWMutex
	clients map[types.ClientID]*clientEntry
	nextSeq int64
}

func newClientRepository() *clientRepository {
	return &clientRepository{
		clients: make(map[types.ClientID]*clientEntry),
	}
}

func copyClient(c *model.Client) *model.Client {
	cp := *c
	return &cp
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyClient(client)
	if created.ID == "" {
		created.ID = types.NewClientID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.nextSeq++
	r.clients[created.ID] = &clientEntry{client: created, seq: r.nextSeq}
	return copyClient(created), nil
}

func (r *clientRepository) Get(ctx context.Context, id types.ClientID) (*model.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.clients[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "client not found", goerr.V("id", id))
	}

	return copyClient(entry.client), nil
}

func (r *clientRepository) List(ctx context.Context) ([]*model.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*clientEntry, 0, len(r.clients))
	for _, entry := range r.clients {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	clients := make([]*model.Client, len(entries))
	for i, entry := range entries {
		clients[i] = copyClient(entry.client)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client *model.Client) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.clients[client.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "client not found", goerr.V("id", client.ID))
	}

	updated := copyClient(client)
	updated.CreatedAt = entry.client.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	entry.client = updated
	return copyClient(updated), nil
}
