package repository

import (
	"context"
	"slices"

	"crochetstudio/internal/domain"
)

var timeSlots = []domain.TimeSlot{
	{ID: 1, Week: "Jan 15-21, 2024", Status: domain.SlotAvailable, Price: 85, Difficulty: "Any"},
	{ID: 2, Week: "Jan 22-28, 2024", Status: domain.SlotAvailable, Price: 85, Difficulty: "Any"},
	{ID: 3, Week: "Jan 29 - Feb 4, 2024", Status: domain.SlotBooked, Price: 85, Difficulty: "Any"},
	{ID: 4, Week: "Feb 5-11, 2024", Status: domain.SlotAvailable, Price: 85, Difficulty: "Any"},
	{ID: 5, Week: "Feb 12-18, 2024", Status: domain.SlotAvailable, Price: 85, Difficulty: "Any"},
	{ID: 6, Week: "Feb 19-25, 2024", Status: domain.SlotLimited, Price: 85, Difficulty: "Beginner only"},
}

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) List(ctx context.Context) ([]domain.TimeSlot, error) {
	return slices.Clone(timeSlots), nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	for _, s := range timeSlots {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}
