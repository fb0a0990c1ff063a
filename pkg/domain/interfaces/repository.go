package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Client() ClientRepository
	ProcessAction() ProcessActionRepository
	EmailQueue() EmailQueueRepository
	DocumentRequest() DocumentRequestRepository
	Meeting() MeetingRepository
	Interaction() InteractionRepository
	Checklist() ChecklistRepository

	Close() error
}
