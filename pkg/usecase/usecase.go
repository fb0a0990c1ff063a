package usecase

import (
	"time"

	"github.com/casaflow/casaflow/pkg/domain/interfaces"
)

// UseCases bundles the back-office use cases sharing one repository
type UseCases struct {
	repo interfaces.Repository
	now  func() time.Time

	Process   *ProcessUseCase
	Client    *ClientUseCase
	Checklist *ChecklistUseCase
}

type Option func(*UseCases)

// WithClock overrides the time source, for tests
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Process = NewProcessUseCase(repo, uc.now)
	uc.Client = NewClientUseCase(repo)
	uc.Checklist = NewChecklistUseCase(repo)

	return uc
}
