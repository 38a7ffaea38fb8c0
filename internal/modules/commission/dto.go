package commission

import (
	"time"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/wizard"
)

const Flow = "custom"

// State is one customer's progress through the custom-commission wizard.
type State struct {
	ID        string                   `json:"id"`
	Step      wizard.Step              `json:"step"`
	SlotID    int64                    `json:"slot_id,omitempty"`
	Details   domain.CommissionDetails `json:"details"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

type Review struct {
	Slot           domain.TimeSlot          `json:"slot"`
	Fee            int                      `json:"fee"`
	Details        domain.CommissionDetails `json:"details"`
	SizeName       string                   `json:"size_name,omitempty"`
	ComplexityName string                   `json:"complexity_name,omitempty"`
	BudgetName     string                   `json:"budget_name,omitempty"`
	Warnings       map[string]string        `json:"warnings,omitempty"`
}

type SelectSlotRequest struct {
	SlotID int64 `json:"slot_id" form:"slot_id" binding:"required"`
}

type AttachmentsRequest struct {
	Attachments []domain.Attachment `json:"attachments" binding:"required,min=1"`
}

type StateResponse struct {
	Token         string                   `json:"token,omitempty"`
	Step          wizard.Step              `json:"step"`
	StepName      string                   `json:"step_name"`
	SlotID        int64                    `json:"slot_id,omitempty"`
	Details       domain.CommissionDetails `json:"details"`
	CanContinue   bool                     `json:"can_continue"`
	MissingFields []string                 `json:"missing_fields"`
	ExpiresAt     time.Time                `json:"expires_at,omitempty"`
}

type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}
