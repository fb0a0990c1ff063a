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

type actionEntry struct {
	action *model.ProcessAction
	seq    int64
}

type processActionRepository struct {
	mu      sync.RWMutex
	actions map[types.ActionID]*actionEntry
	nextSeq int64
}

func newProcessActionRepository() *processActionRepository {
	return &processActionRepository{
		actions: make(map[types.ActionID]*actionEntry),
	}
}

func copyTask(t *model.AutomatedTask) *model.AutomatedTask {
	cp := *t
	return &cp
}

// copyAction creates a deep copy of an action including its tasks
func copyAction(a *model.ProcessAction) *model.ProcessAction {
	cp := *a
	cp.Tasks = make([]*model.AutomatedTask, len(a.Tasks))
	for i, t := range a.Tasks {
		cp.Tasks[i] = copyTask(t)
	}
	if a.DueDate != nil {
		due := *a.DueDate
		cp.DueDate = &due
	}
	if a.CompletedAt != nil {
		completed := *a.CompletedAt
		cp.CompletedAt = &completed
	}
	return &cp
}

func (r *processActionRepository) Create(ctx context.Context, action *model.ProcessAction) (*model.ProcessAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyAction(action)
	if created.ID == "" {
		created.ID = types.NewActionID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	for _, task := range created.Tasks {
		if task.ID == "" {
			task.ID = types.NewTaskID()
		}
		task.ActionID = created.ID
		task.CreatedAt = now
		task.UpdatedAt = now
	}

	r.nextSeq++
	r.actions[created.ID] = &actionEntry{action: created, seq: r.nextSeq}
	return copyAction(created), nil
}

func (r *processActionRepository) Get(ctx context.Context, id types.ActionID) (*model.ProcessAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.actions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "process action not found", goerr.V("id", id))
	}

	return copyAction(entry.action), nil
}

func (r *processActionRepository) ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.ProcessAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*actionEntry, 0)
	for _, entry := range r.actions {
		if entry.action.ClientID == clientID {
			entries = append(entries, entry)
		}
	}
	// Creation time ascending; insertion order breaks ties within the same
	// clock reading
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].action.CreatedAt.Equal(entries[j].action.CreatedAt) {
			return entries[i].seq < entries[j].seq
		}
		return entries[i].action.CreatedAt.Before(entries[j].action.CreatedAt)
	})

	actions := make([]*model.ProcessAction, len(entries))
	for i, entry := range entries {
		actions[i] = copyAction(entry.action)
	}

	return actions, nil
}

func (r *processActionRepository) Update(ctx context.Context, action *model.ProcessAction) (*model.ProcessAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.actions[action.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "process action not found", goerr.V("id", action.ID))
	}

	updated := copyAction(action)
	updated.CreatedAt = entry.action.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	entry.action = updated
	return copyAction(updated), nil
}

func (r *processActionRepository) UpdateTask(ctx context.Context, task *model.AutomatedTask) (*model.AutomatedTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.actions[task.ActionID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "process action not found", goerr.V("action_id", task.ActionID))
	}

	for i, existing := range entry.action.Tasks {
		if existing.ID == task.ID {
			updated := copyTask(task)
			updated.CreatedAt = existing.CreatedAt
			updated.UpdatedAt = time.Now().UTC()
			entry.action.Tasks[i] = updated
			return copyTask(updated), nil
		}
	}

	return nil, goerr.Wrap(ErrNotFound, "automated task not found",
		goerr.V("action_id", task.ActionID), goerr.V("task_id", task.ID))
}
