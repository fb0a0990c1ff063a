package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/casaflow/casaflow/pkg/domain/model"
	"github.com/casaflow/casaflow/pkg/domain/types"
)

type documentRequestRepository struct {
	mu       sync.RWMutex
	requests map[types.DocumentRequestID]*model.DocumentRequest
	order    []types.DocumentRequestID
}

func newDocumentRequestRepository() *documentRequestRepository {
	return &documentRequestRepository{
		requests: make(map[types.DocumentRequestID]*model.DocumentRequest),
	}
}

func copyDocumentRequest(d *model.DocumentRequest) *model.DocumentRequest {
	cp := *d
	return &cp
}

func (r *documentRequestRepository) Create(ctx context.Context, req *model.DocumentRequest) (*model.DocumentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyDocumentRequest(req)
	if created.ID == "" {
		created.ID = types.NewDocumentRequestID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.requests[created.ID] = created
	r.order = append(r.order, created.ID)
	return copyDocumentRequest(created), nil
}

func (r *documentRequestRepository) ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.DocumentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.DocumentRequest, 0)
	// Newest first
	for i := len(r.order) - 1; i >= 0; i-- {
		if req := r.requests[r.order[i]]; req.ClientID == clientID {
			result = append(result, copyDocumentRequest(req))
		}
	}

	return result, nil
}

type meetingRepository struct {
	mu       sync.RWMutex
	meetings map[types.MeetingID]*model.Meeting
	order    []types.MeetingID
}

func newMeetingRepository() *meetingRepository {
	return &meetingRepository{
		meetings: make(map[types.MeetingID]*model.Meeting),
	}
}

func copyMeeting(m *model.Meeting) *model.Meeting {
	cp := *m
	return &cp
}

func (r *meetingRepository) Create(ctx context.Context, meeting *model.Meeting) (*model.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyMeeting(meeting)
	if created.ID == "" {
		created.ID = types.NewMeetingID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.meetings[created.ID] = created
	r.order = append(r.order, created.ID)
	return copyMeeting(created), nil
}

func (r *meetingRepository) ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Meeting, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		if m := r.meetings[r.order[i]]; m.ClientID == clientID {
			result = append(result, copyMeeting(m))
		}
	}

	return result, nil
}

type interactionRepository struct {
	mu           sync.RWMutex
	interactions []*model.Interaction
}

func newInteractionRepository() *interactionRepository {
	return &interactionRepository{}
}

func copyInteraction(i *model.Interaction) *model.Interaction {
	cp := *i
	return &cp
}

func (r *interactionRepository) Append(ctx context.Context, interaction *model.Interaction) (*model.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyInteraction(interaction)
	if created.ID == "" {
		created.ID = types.NewInteractionID()
	}
	if created.Date.IsZero() {
		created.Date = time.Now().UTC()
	}

	r.interactions = append(r.interactions, created)
	return copyInteraction(created), nil
}

func (r *interactionRepository) ListByClient(ctx context.Context, clientID types.ClientID) ([]*model.Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Interaction, 0)
	for _, i := range r.interactions {
		if i.ClientID == clientID {
			result = append(result, copyInteraction(i))
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })

	return result, nil
}
