package booking

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/notify"
	"crochetstudio/internal/pkg/validator"
	"crochetstudio/internal/repository"
	"crochetstudio/internal/session"
	"crochetstudio/internal/wizard"

	"github.com/google/uuid"
)

const submittedMessage = "Booking submitted! You'll receive a confirmation email shortly."

type Service struct {
	sessions SessionRepository
	items    ItemRepository
	slots    SlotRepository
	notifier notify.Notifier
	log      *slog.Logger
	now      func() time.Time
}

func NewService(
	sessions SessionRepository,
	items ItemRepository,
	slots SlotRepository,
	notifier notify.Notifier,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		sessions: sessions,
		items:    items,
		slots:    slots,
		notifier: notifier,
		log:      log.With("flow", Flow),
		now:      time.Now,
	}
}

// Start opens a new wizard session. A known itemID is preselected; anything else is ignored.
func (s *Service) Start(ctx context.Context, itemID int64) (*State, error) {
	now := s.now().UTC()
	st := &State{
		ID:        session.NewID(),
		Step:      wizard.FirstStep,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if s.KnownItem(ctx, itemID) {
		st.ItemID = itemID
	}
	if err := s.sessions.Save(ctx, st.ID, st); err != nil {
		return nil, err
	}
	s.log.DebugContext(ctx, "wizard_started", "session_id", st.ID, "item_id", st.ItemID)
	return st, nil
}

// KnownItem reports whether itemID names a design in the catalog.
func (s *Service) KnownItem(ctx context.Context, itemID int64) bool {
	if itemID <= 0 {
		return false
	}
	_, err := s.items.GetItemByID(ctx, itemID)
	return err == nil
}

func (s *Service) Get(ctx context.Context, id string) (*State, error) {
	st, err := s.sessions.Load(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	st.Step = wizard.Clamp(st.Step)
	return st, nil
}

// SelectSlot picks the week. Unknown or booked slots leave the session untouched.
func (s *Service) SelectSlot(ctx context.Context, id string, slotID int64) (*State, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.Step != wizard.StepSelectSlot {
		return st, ErrWrongStep
	}
	slot, err := s.lookupSlot(ctx, slotID)
	if err != nil {
		return st, err
	}
	if !slot.Selectable() {
		return st, ErrSlotBooked
	}
	st.SlotID = slot.ID
	return s.save(ctx, st)
}

// UpdateDetails replaces the item selection and all form fields.
func (s *Service) UpdateDetails(ctx context.Context, id string, itemID int64, details domain.BookingDetails) (*State, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.Step != wizard.StepEnterDetails {
		return st, ErrWrongStep
	}
	if itemID != 0 {
		if _, err := s.items.GetItemByID(ctx, itemID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return st, ErrItemNotFound
			}
			return st, err
		}
	}
	st.ItemID = itemID
	st.Details = details
	return s.save(ctx, st)
}

func (s *Service) Next(ctx context.Context, id string) (*State, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := wizard.Next(st.Step, func(from wizard.Step) error {
		return s.guard(ctx, st, from)
	})
	if err != nil {
		return st, err
	}
	if next == st.Step {
		return st, nil
	}
	st.Step = next
	return s.save(ctx, st)
}

func (s *Service) Previous(ctx context.Context, id string) (*State, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := wizard.Previous(st.Step)
	if prev == st.Step {
		return st, nil
	}
	st.Step = prev
	return s.save(ctx, st)
}

func (s *Service) guard(ctx context.Context, st *State, from wizard.Step) error {
	switch from {
	case wizard.StepSelectSlot:
		if st.SlotID == 0 {
			return ErrSlotRequired
		}
		slot, err := s.lookupSlot(ctx, st.SlotID)
		if err != nil {
			return err
		}
		if !slot.Selectable() {
			return ErrSlotBooked
		}
	case wizard.StepEnterDetails:
		if missing := MissingFields(st); len(missing) > 0 {
			return &IncompleteError{Missing: missing}
		}
	}
	return nil
}

// CanContinue reports whether Next would leave the current step.
func CanContinue(st *State) bool {
	switch st.Step {
	case wizard.StepSelectSlot:
		return st.SlotID != 0
	case wizard.StepEnterDetails:
		return len(MissingFields(st)) == 0
	default:
		return false
	}
}

// MissingFields lists the required step-2 fields that are empty or whitespace.
func MissingFields(st *State) []string {
	missing := []string{}
	if st.ItemID == 0 {
		missing = append(missing, "item")
	}
	d := st.Details
	required := []struct {
		name, value string
	}{
		{"name", d.Name},
		{"email", d.Email},
		{"street", d.Street},
		{"city", d.City},
		{"state", d.State},
		{"zip_code", d.ZipCode},
		{"country", d.Country},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Validate runs the full form schema. It never blocks navigation.
func (s *Service) Validate(ctx context.Context, id string) (map[string]string, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return validateDetails(st), nil
}

func validateDetails(st *State) map[string]string {
	errs := validator.Validate(st.Details)
	if errs == nil {
		errs = map[string]string{}
	}
	if st.ItemID == 0 {
		errs["item"] = "Please select a catalog item."
	}
	return errs
}

func (s *Service) Review(ctx context.Context, st *State) (*Review, error) {
	if st.SlotID == 0 {
		return nil, ErrSlotRequired
	}
	slot, err := s.lookupSlot(ctx, st.SlotID)
	if err != nil {
		return nil, err
	}
	r := &Review{
		Slot:     *slot,
		Fee:      domain.CatalogCommissionFee,
		Details:  st.Details,
		SizeName: domain.OptionLabel(domain.BookingSizes, st.Details.Size),
		Warnings: validateDetails(st),
	}
	if st.ItemID != 0 {
		item, err := s.items.GetItemByID(ctx, st.ItemID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		r.Item = item
	}
	if len(r.Warnings) == 0 {
		r.Warnings = nil
	}
	return r, nil
}

// Submit turns a reviewed session into an acknowledgement and discards the session.
func (s *Service) Submit(ctx context.Context, id string) (*domain.Acknowledgement, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.Step != wizard.StepReview {
		return nil, ErrWrongStep
	}

	ack := &domain.Acknowledgement{
		Reference:   uuid.NewString(),
		Kind:        domain.RequestCatalog,
		Message:     submittedMessage,
		Email:       st.Details.Email,
		Fee:         domain.CatalogCommissionFee,
		SubmittedAt: s.now().UTC(),
	}
	if slot, err := s.slots.GetByID(ctx, st.SlotID); err == nil {
		ack.SlotWeek = slot.Week
	}
	if item, err := s.items.GetItemByID(ctx, st.ItemID); err == nil {
		ack.ItemName = item.Name
	}

	if err := s.sessions.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "session_delete_failed", "session_id", id, "error", err)
	}
	if s.notifier != nil {
		if err := s.notifier.CommissionSubmitted(ctx, *ack); err != nil {
			s.log.ErrorContext(ctx, "notify_failed", "reference", ack.Reference, "error", err)
		}
	}
	s.log.InfoContext(ctx, "booking_submitted", "reference", ack.Reference, "slot_id", st.SlotID, "item_id", st.ItemID)
	return ack, nil
}

func (s *Service) ListSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	return s.slots.List(ctx)
}

func (s *Service) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	return s.items.ListItems(ctx)
}

func (s *Service) lookupSlot(ctx context.Context, slotID int64) (*domain.TimeSlot, error) {
	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

func (s *Service) save(ctx context.Context, st *State) (*State, error) {
	st.UpdatedAt = s.now().UTC()
	if err := s.sessions.Save(ctx, st.ID, st); err != nil {
		return nil, err
	}
	s.log.DebugContext(ctx, "wizard_updated", "session_id", st.ID, "step", st.Step.String())
	return st, nil
}
