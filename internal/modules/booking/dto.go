package booking

import (
	"time"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/wizard"
)

// Flow names the booking wizard in session keys and tokens.
const Flow = "booking"

// State is one customer's progress through the booking wizard.
type State struct {
	ID        string                `json:"id"`
	Step      wizard.Step           `json:"step"`
	SlotID    int64                 `json:"slot_id,omitempty"`
	ItemID    int64                 `json:"item_id,omitempty"`
	Details   domain.BookingDetails `json:"details"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// Review is the step-3 summary.
type Review struct {
	Slot     domain.TimeSlot       `json:"slot"`
	Item     *domain.CatalogItem   `json:"item,omitempty"`
	Fee      int                   `json:"fee"`
	Details  domain.BookingDetails `json:"details"`
	SizeName string                `json:"size_name,omitempty"`
	// Warnings holds schema messages for fields that passed the presence check only.
	Warnings map[string]string `json:"warnings,omitempty"`
}

type StartRequest struct {
	ItemID int64 `json:"item_id"`
}

type SelectSlotRequest struct {
	SlotID int64 `json:"slot_id" form:"slot_id" binding:"required"`
}

type UpdateDetailsRequest struct {
	ItemID int64 `json:"item_id" form:"item_id"`
	domain.BookingDetails
}

type StateResponse struct {
	Token         string                `json:"token,omitempty"`
	Step          wizard.Step           `json:"step"`
	StepName      string                `json:"step_name"`
	SlotID        int64                 `json:"slot_id,omitempty"`
	ItemID        int64                 `json:"item_id,omitempty"`
	Details       domain.BookingDetails `json:"details"`
	CanContinue   bool                  `json:"can_continue"`
	MissingFields []string              `json:"missing_fields"`
	ExpiresAt     time.Time             `json:"expires_at,omitempty"`
}

type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}
