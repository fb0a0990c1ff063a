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

type processActionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newProcessActionRepository(client *firestore.Client) *processActionRepository {
	return &processActionRepository{client: client}
}

func (r *processActionRepository) collection() string {
	return collection(r.collectionPrefix, "process_actions")
}

// actionDoc is the stored shape of a process action. Tasks are embedded in the
// document so the action and its task set are written as one unit.
type actionDoc struct {
	ID          types.ActionID
	ClientID    types.ClientID
	Title       string
	Description string
	Type        string
	Status      types.ActionStatus
	DueDate     *time.Time
	CompletedAt *time.Time
	Notes       string
	Tasks       []taskDoc
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type taskDoc struct {
	ID        types.TaskID
	Type      types.TaskType
	Status    types.TaskStatus
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toActionDoc(a *model.ProcessAction) actionDoc {
	doc := actionDoc{
		ID:          a.ID,
		ClientID:    a.ClientID,
		Title:       a.Title,
		Description: a.Description,
		Type:        a.Type,
		Status:      a.Status,
		DueDate:     a.DueDate,
		CompletedAt: a.CompletedAt,
		Notes:       a.Notes,
		Tasks:       make([]taskDoc, len(a.Tasks)),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	for i, t := range a.Tasks {
		doc.Tasks[i] = taskDoc{
			ID:        t.ID,
			Type:      t.Type,
			Status:    t.Status,
			Error:     t.Error,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		}
	}
	return doc
}

func (d actionDoc) toModel() *model.ProcessAction {
	action := &model.ProcessAction{
		ID:          d.ID,
		ClientID:    d.ClientID,
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type,
		Status:      d.Status,
		DueDate:     d.DueDate,
		CompletedAt: d.CompletedAt,
		Notes:       d.Notes,
		Tasks:       make([]*model.AutomatedTask, len(d.Tasks)),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	for i, t := range d.Tasks {
		action.Tasks[i] = &model.AutomatedTask{
			ID:        t.ID,
			ActionID:  d.ID,
			Type:      t.Type,
			Status:    t.Status,
			Error:     t.Error,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		}
	}
	return action
}

func (r *processActionRepository) Create(ctx context.Context, action *model.ProcessAction) (*model.ProcessAction, error) {
	now := time.Now().UTC()
	created := *action
	if created.ID == "" {
		created.ID = types.NewActionID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	tasks := make([]*model.AutomatedTask, len(action.Tasks))
	for i, t := range action.Tasks {
		task := *t
		if task.ID == "" {
			task.ID = types.NewTaskID()
		}
		task.ActionID = created.ID
		task.CreatedAt = now
		task.UpdatedAt = now
		tasks[i] = &task
	}
	created.Tasks = tasks

	_, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Set(ctx, toActionDoc(&created))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create process action", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *processActionRepository) Get(ctx context.Context, id types.ActionID) (*model.ProcessAction, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "process action not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get process action", goerr.V("id", id))
	}

	var doc actionDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode process action", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *processActionRepository) ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.ProcessAction, error) {
	iter := r.client.Collection(r.collection()).
		Where("ClientID", "==", clientID.String()).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	actions := make([]*model.ProcessAction, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate process actions", goerr.V("client_id", clientID))
		}

		var doc actionDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode process action")
		}
		actions = append(actions, doc.toModel())
	}

	return actions, nil
}

func (r *processActionRepository) Update(ctx context.Context, action *model.ProcessAction) (*model.ProcessAction, error) {
	docRef := r.client.Collection(r.collection()).Doc(action.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "process action not found", goerr.V("id", action.ID))
		}
		return nil, goerr.Wrap(err, "failed to get process action", goerr.V("id", action.ID))
	}

	var existing actionDoc
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode process action", goerr.V("id", action.ID))
	}

	updated := *action
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, toActionDoc(&updated)); err != nil {
		return nil, goerr.Wrap(err, "failed to update process action", goerr.V("id", action.ID))
	}

	return &updated, nil
}

// UpdateTask rewrites one task inside the action document. A transaction keeps
// concurrent per-task updates from clobbering each other's read-modify-write.
func (r *processActionRepository) UpdateTask(ctx context.Context, task *model.AutomatedTask) (*model.AutomatedTask, error) {
	docRef := r.client.Collection(r.collection()).Doc(task.ActionID.String())

	var result *model.AutomatedTask
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "process action not found", goerr.V("action_id", task.ActionID))
			}
			return goerr.Wrap(err, "failed to get process action", goerr.V("action_id", task.ActionID))
		}

		var doc actionDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return goerr.Wrap(err, "failed to decode process action", goerr.V("action_id", task.ActionID))
		}

		for i := range doc.Tasks {
			if doc.Tasks[i].ID != task.ID {
				continue
			}
			doc.Tasks[i].Status = task.Status
			doc.Tasks[i].Error = task.Error
			doc.Tasks[i].UpdatedAt = time.Now().UTC()

			if err := tx.Set(docRef, doc); err != nil {
				return goerr.Wrap(err, "failed to update process action", goerr.V("action_id", task.ActionID))
			}

			updated := *task
			updated.CreatedAt = doc.Tasks[i].CreatedAt
			updated.UpdatedAt = doc.Tasks[i].UpdatedAt
			result = &updated
			return nil
		}

		return goerr.Wrap(ErrNotFound, "automated task not found",
			goerr.V("action_id", task.ActionID), goerr.V("task_id", task.ID))
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
