package commission

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

const submittedMessage = "Custom commission request submitted! I'll review your request and get back to you within 24 hours with a detailed quote and timeline."

type Service struct {
	sessions SessionRepository
	slots    SlotRepository
	notifier notify.Notifier
	log      *slog.Logger
	now      func() time.Time
}

func NewService(sessions SessionRepository, slots SlotRepository, notifier notify.Notifier, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		sessions: sessions,
		slots:    slots,
		notifier: notifier,
		log:      log.With("flow", Flow),
		now:      time.Now,
	}
}

func (s *Service) Start(ctx context.Context) (*State, error) {
	now := s.now().UTC()
	st := &State{
		ID:        session.NewID(),
		Step:      wizard.FirstStep,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Save(ctx, st.ID, st); err != nil {
		return nil, err
	}
	s.log.DebugContext(ctx, "wizard_started", "session_id", st.ID)
	return st, nil
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

// UpdateDetails replaces the form fields. Attachments already added are kept.
func (s *Service) UpdateDetails(ctx context.Context, id string, details domain.CommissionDetails) (*State, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.Step != wizard.StepEnterDetails {
		return st, ErrWrongStep
	}
	details.ReferenceImages = st.Details.ReferenceImages
	st.Details = details
	return s.save(ctx, st)
}

// AddAttachments records reference image metadata. Files are neither stored nor checked.
func (s *Service) AddAttachments(ctx context.Context, id string, attachments ...domain.Attachment) (*State, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.Step != wizard.StepEnterDetails {
		return st, ErrWrongStep
	}
	if len(attachments) == 0 {
		return st, nil
	}
	st.Details.ReferenceImages = append(st.Details.ReferenceImages, attachments...)
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

// MissingFields lists the empty required fields: name, email and project description.
func MissingFields(st *State) []string {
	missing := []string{}
	d := st.Details
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"email", d.Email},
		{"project_description", d.ProjectDescription},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func (s *Service) Validate(ctx context.Context, id string) (map[string]string, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	errs := validator.Validate(st.Details)
	if errs == nil {
		errs = map[string]string{}
	}
	return errs, nil
}

func (s *Service) Review(ctx context.Context, st *State) (*Review, error) {
	if st.SlotID == 0 {
		return nil, ErrSlotRequired
	}
	slot, err := s.lookupSlot(ctx, st.SlotID)
	if err != nil {
		return nil, err
	}
	return &Review{
		Slot:           *slot,
		Fee:            domain.CustomCommissionBaseFee,
		Details:        st.Details,
		SizeName:       domain.OptionLabel(domain.CustomSizes, st.Details.Size),
		ComplexityName: domain.OptionLabel(domain.Complexities, st.Details.Complexity),
		BudgetName:     domain.OptionLabel(domain.Budgets, st.Details.Budget),
		Warnings:       validator.Validate(st.Details),
	}, nil
}

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
		Kind:        domain.RequestCustom,
		Message:     submittedMessage,
		Email:       st.Details.Email,
		Fee:         domain.CustomCommissionBaseFee,
		SubmittedAt: s.now().UTC(),
	}
	if slot, err := s.slots.GetByID(ctx, st.SlotID); err == nil {
		ack.SlotWeek = slot.Week
	}

	if err := s.sessions.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "session_delete_failed", "session_id", id, "error", err)
	}
	if s.notifier != nil {
		if err := s.notifier.CommissionSubmitted(ctx, *ack); err != nil {
			s.log.ErrorContext(ctx, "notify_failed", "reference", ack.Reference, "error", err)
		}
	}
	s.log.InfoContext(ctx, "commission_request_submitted",
		"reference", ack.Reference,
		"slot_id", st.SlotID,
		"attachments", len(st.Details.ReferenceImages),
	)
	return ack, nil
}

func (s *Service) ListSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	return s.slots.List(ctx)
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
