package memory

import (
	"errors"

	"github.com/casaflow/casaflow/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// Memory is an in-memory implementation of interfaces.Repository, used for
// development and tests
type Memory struct {
	client          *clientRepository
	processAction   *processActionRepository
	emailQueue      *emailQueueRepository
	documentRequest *documentRequestRepository
	meeting         *meetingRepository
	interaction     *interactionRepository
	checklist       *checklistRepository
}

var _ interfaces.Repository = &Memory{}

// New creates a new in-memory repository
func New() *Memory {
	return &Memory{
		client:          newClientRepository(),
		processAction:   newProcessActionRepository(),
		emailQueue:      newEmailQueueRepository(),
		documentRequest: newDocumentRequestRepository(),
		meeting:         newMeetingRepository(),
		interaction:     newInteractionRepository(),
		checklist:       newChecklistRepository(),
	}
}

func (m *Memory) Client() interfaces.ClientRepository { return m.client }
func (m *Memory) ProcessAction() interfaces.ProcessActionRepository { return m.processAction }
func (m *Memory) EmailQueue() interfaces.EmailQueueRepository { return m.emailQueue }
func (m *Memory) DocumentRequest() interfaces.DocumentRequestRepository { return m.documentRequest }
func (m *Memory) Meeting() interfaces.MeetingRepository { return m.meeting }
func (m *Memory) Interaction() interfaces.InteractionRepository { return m.interaction }
func (m *Memory) Checklist() interfaces.ChecklistRepository { return m.checklist }

// Close is a no-op for the in-memory repository
func (m *Memory) Close() error { return nil }
