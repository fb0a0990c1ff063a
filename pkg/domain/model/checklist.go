package model

import (
	"time"

	"github.com/casaflow/casaflow/pkg/domain/types"
)

// ChecklistItem is one entry of a pipeline stage's checklist
type ChecklistItem struct {
	ID        types.ChecklistItemID
	StageID   types.StageID
	Text      string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
