package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/casaflow/casaflow/pkg/domain/interfaces"
	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
	"github.com/casaflow/casaflow/pkg/utils/errutil"
	"github.com/casaflow/casaflow/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ProcessUseCase drives the process action automation: it creates actions with
// their automated tasks, fans each task out into its derived record, and
// handles status transitions including the completion notification.
type ProcessUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func NewProcessUseCase(repo interfaces.Repository, now func() time.Time) *ProcessUseCase {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &ProcessUseCase{repo: repo, now: now}
}

// CreateActionInput is the caller-supplied specification of a process action
type CreateActionInput struct {
	Title       string
	Description string
	Type        string
	DueDate     *time.Time
	TaskTypes   []types.TaskType
}

// Validate checks the input before any state is written
func (in *CreateActionInput) Validate() error {
	if in.Title == "" {
		return goerr.Wrap(ErrInvalidInput, "action title is required")
	}
	if in.Type == "" {
		return goerr.Wrap(ErrInvalidInput, "action type is required")
	}
	for _, tt := range in.TaskTypes {
		if !tt.IsValid() {
			return goerr.Wrap(ErrInvalidInput, "unknown task type", goerr.V("task_type", tt))
		}
	}
	return nil
}

// CreateAction validates the input, persists the action with its tasks as one
// unit, dispatches each task into its derived record, and appends an audit
// interaction. A failing derived-record write marks only that task FAILED;
// sibling tasks and the action itself are unaffected. The audit write is
// best-effort.
func (uc *ProcessUseCase) CreateAction(ctx context.Context, clientID types.ClientID, input CreateActionInput) (*model.ProcessAction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	client, err := uc.repo.Client().Get(ctx, clientID)
	if err != nil {
		return nil, goerr.Wrap(ErrClientNotFound, "client not found", goerr.V(ClientIDKey, clientID))
	}

	tasks := make([]*model.AutomatedTask, len(input.TaskTypes))
	for i, tt := range input.TaskTypes {
		tasks[i] = &model.AutomatedTask{
			Type:   tt,
			Status: types.TaskStatusPending,
		}
	}

	created, err := uc.repo.ProcessAction().Create(ctx, &model.ProcessAction{
		ClientID:    clientID,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Status:      types.ActionStatusPending,
		DueDate:     input.DueDate,
		Tasks:       tasks,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create process action", goerr.V(ClientIDKey, clientID))
	}

	// Fan each task out into its derived record, in the order the tasks were
	// specified. One task's failure never aborts its siblings or the action.
	for _, task := range created.Tasks {
		uc.dispatchTask(ctx, task, created, client)
	}

	if _, err := uc.repo.Interaction().Append(ctx, &model.Interaction{
		ClientID:    clientID,
		Type:        model.InteractionTypeProcess,
		Description: fmt.Sprintf("Added process action: %s", created.Title),
		Date:        uc.now(),
	}); err != nil {
		// Best-effort audit trail
		errutil.Handle(ctx, err, "failed to append interaction for process action")
	}

	return created, nil
}

// dispatchTask resolves and persists the derived record of one task, then
// records the task's final status. A nil effect is a deliberate no-op and the
// task still counts as dispatched.
func (uc *ProcessUseCase) dispatchTask(ctx context.Context, task *model.AutomatedTask, action *model.ProcessAction, client *model.Client) {
	spec := model.ResolveEffect(task, action, client, uc.now())

	var effectErr error
	if spec != nil {
		switch {
		case spec.Email != nil:
			_, effectErr = uc.repo.EmailQueue().Enqueue(ctx, spec.Email)
		case spec.Document != nil:
			_, effectErr = uc.repo.DocumentRequest().Create(ctx, spec.Document)
		case spec.Meeting != nil:
			_, effectErr = uc.repo.Meeting().Create(ctx, spec.Meeting)
		}
	}

	if effectErr != nil {
		errutil.Handle(ctx, effectErr, "failed to persist derived record for task")
		task.Status = types.TaskStatusFailed
		task.Error = effectErr.Error()
	} else {
		task.Status = types.TaskStatusDispatched
		task.Error = ""
	}

	updated, err := uc.repo.ProcessAction().UpdateTask(ctx, task)
	if err != nil {
		errutil.Handle(ctx, err, "failed to record task status")
		return
	}
	*task = *updated
}

// UpdateStatus applies a status transition to an action. Moving into COMPLETED
// stamps CompletedAt once and synchronously enqueues the closing notification.
func (uc *ProcessUseCase) UpdateStatus(ctx context.Context, actionID types.ActionID, status types.ActionStatus, notes *string) (*model.ProcessAction, error) {
	action, err := uc.repo.ProcessAction().Get(ctx, actionID)
	if err != nil {
		return nil, goerr.Wrap(ErrActionNotFound, "process action not found", goerr.V(ActionIDKey, actionID))
	}

	if !action.Status.CanTransitionTo(status) {
		return nil, goerr.Wrap(ErrInvalidTransition, "status transition not permitted",
			goerr.V(ActionIDKey, actionID),
			goerr.V("from", action.Status),
			goerr.V("to", status))
	}

	action.Status = status
	if notes != nil {
		action.Notes = *notes
	}
	if status == types.ActionStatusCompleted {
		completedAt := uc.now()
		action.CompletedAt = &completedAt
	}

	updated, err := uc.repo.ProcessAction().Update(ctx, action)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update process action", goerr.V(ActionIDKey, actionID))
	}

	if status == types.ActionStatusCompleted {
		uc.notifyCompleted(ctx, updated)
	}

	return updated, nil
}

// notifyCompleted enqueues the closing notification for a completed action.
// The transition table makes COMPLETED terminal, so this runs at most once per
// action. No email on file is a no-op; an enqueue failure is logged and does
// not undo the completed transition.
func (uc *ProcessUseCase) notifyCompleted(ctx context.Context, action *model.ProcessAction) {
	client, err := uc.repo.Client().Get(ctx, action.ClientID)
	if err != nil {
		errutil.Handle(ctx, err, "failed to resolve client for completion notification")
		return
	}

	email := model.CompletionEmail(action, client)
	if email == nil {
		logging.From(ctx).Debug("client has no email, skipping completion notification",
			"action_id", action.ID)
		return
	}

	if _, err := uc.repo.EmailQueue().Enqueue(ctx, email); err != nil {
		errutil.Handle(ctx, err, "failed to enqueue completion notification")
	}
}

// ListActions returns a client's actions ordered by creation time ascending,
// tasks included. Read-only.
func (uc *ProcessUseCase) ListActions(ctx context.Context, clientID types.ClientID) ([]*model.ProcessAction, error) {
	actions, err := uc.repo.ProcessAction().ListByClient(ctx, clientID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list process actions", goerr.V(ClientIDKey, clientID))
	}
	return actions, nil
}
