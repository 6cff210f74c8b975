package models

import (
	"time"

	"github.com/google/uuid"
)

// Milestone is one step of the ordered visa application sequence.
type Milestone struct {
	ID            uuid.UUID           `json:"id"`
	InvestorID    uuid.UUID           `json:"investor_id"`
	Title         string              `json:"title"`
	Description   *string             `json:"description,omitempty"`
	Status        MilestoneStatusType `json:"status"`
	OrderNumber   int                 `json:"order_number"`
	DueDate       *time.Time          `json:"due_date,omitempty"`
	CompletedDate *time.Time          `json:"completed_date,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// IsOverdue reports whether the milestone is still open past its due date.
func (m *Milestone) IsOverdue(now time.Time) bool {
	return m.Status != MilestoneStatusCompleted && m.DueDate != nil && m.DueDate.Before(now)
}
