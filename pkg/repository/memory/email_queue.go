package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
)

type emailEntry struct {
	email *model.EmailQueueEntry
	seq   int64
}

type emailQueueRepository struct {
	mu      sync.RWMutex
	entries map[types.EmailID]*emailEntry
	nextSeq int64
}

func newEmailQueueRepository() *emailQueueRepository {
	return &emailQueueRepository{
		entries: make(map[types.EmailID]*emailEntry),
	}
}

func copyEmail(e *model.EmailQueueEntry) *model.EmailQueueEntry {
	cp := *e
	return &cp
}

func (r *emailQueueRepository) Enqueue(ctx context.Context, entry *model.EmailQueueEntry) (*model.EmailQueueEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyEmail(entry)
	if created.ID == "" {
		created.ID = types.NewEmailID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.nextSeq++
	r.entries[created.ID] = &emailEntry{email: created, seq: r.nextSeq}
	return copyEmail(created), nil
}

func (r *emailQueueRepository) ListPending(ctx context.Context) ([]*model.EmailQueueEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pending := make([]*emailEntry, 0)
	for _, entry := range r.entries {
		if entry.email.Status == types.EmailStatusPending {
			pending = append(pending, entry)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].seq < pending[j].seq })

	result := make([]*model.EmailQueueEntry, len(pending))
	for i, entry := range pending {
		result[i] = copyEmail(entry.email)
	}

	return result, nil
}
