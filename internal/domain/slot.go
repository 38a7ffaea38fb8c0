package domain

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotLimited   SlotStatus = "limited"
	SlotBooked    SlotStatus = "booked"
)

// TimeSlot is a bookable calendar week.
type TimeSlot struct {
	ID         int64      `json:"id"`
	Week       string     `json:"week"`
	Status     SlotStatus `json:"status"`
	Price      int        `json:"price"`
	Difficulty string     `json:"difficulty"`
}

// Selectable reports whether the slot can be chosen in a wizard.
func (s TimeSlot) Selectable() bool {
	return s.Status != SlotBooked
}

func (s TimeSlot) StatusLabel() string {
	switch s.Status {
	case SlotAvailable:
		return "Available"
	case SlotLimited:
		return "Limited"
	default:
		return "Booked"
	}
}
