package booking

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/repository"
	"crochetstudio/internal/session"
	"crochetstudio/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) CommissionSubmitted(ctx context.Context, ack domain.Acknowledgement) error {
	args := m.Called(ctx, ack)
	return args.Error(0)
}

func newTestService(t *testing.T) (*Service, *MockNotifier) {
	t.Helper()
	store := session.NewMemoryStore(64, time.Hour)
	sessions := session.NewRepository[State](store, Flow, time.Hour)
	notifier := new(MockNotifier)
	svc := NewService(
		sessions,
		repository.NewCatalogRepository(),
		repository.NewSlotRepository(),
		notifier,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return svc, notifier
}

func completeDetails() domain.BookingDetails {
	return domain.BookingDetails{
		Name:    "Ana Torres",
		Email:   "ana@example.com",
		Phone:   "5551234567",
		Street:  "12 Yarn Street",
		City:    "Austin",
		State:   "TX",
		ZipCode: "78701",
		Country: "USA",
		Colors:  "pastel pink",
		Size:    "medium",
	}
}

// toReview drives a fresh session to step 3.
func toReview(t *testing.T, svc *Service) *State {
	t.Helper()
	ctx := context.Background()
	st, err := svc.Start(ctx, 2)
	require.NoError(t, err)
	_, err = svc.SelectSlot(ctx, st.ID, 1)
	require.NoError(t, err)
	_, err = svc.Next(ctx, st.ID)
	require.NoError(t, err)
	_, err = svc.UpdateDetails(ctx, st.ID, 2, completeDetails())
	require.NoError(t, err)
	st, err = svc.Next(ctx, st.ID)
	require.NoError(t, err)
	require.Equal(t, wizard.StepReview, st.Step)
	return st
}

func TestService_Start(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	st, err := svc.Start(ctx, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, st.ID)
	assert.Equal(t, wizard.StepSelectSlot, st.Step)
	assert.Equal(t, int64(3), st.ItemID)

	st, err = svc.Start(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, st.ItemID)

	loaded, err := svc.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, loaded.ID)
}

func TestService_Get_Unknown(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_SelectSlot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st, _ := svc.Start(ctx, 0)

	got, err := svc.SelectSlot(ctx, st.ID, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.SlotID)

	_, err = svc.SelectSlot(ctx, st.ID, 42)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	loaded, _ := svc.Get(ctx, st.ID)
	assert.Equal(t, int64(6), loaded.SlotID)
}

func TestService_SelectBookedSlotLeavesStateUnchanged(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	slots, err := repository.NewSlotRepository().List(ctx)
	require.NoError(t, err)

	for _, slot := range slots {
		if slot.Status != domain.SlotBooked {
			continue
		}
		st, _ := svc.Start(ctx, 1)
		before, _ := svc.Get(ctx, st.ID)

		_, err := svc.SelectSlot(ctx, st.ID, slot.ID)
		assert.ErrorIs(t, err, ErrSlotBooked)

		after, _ := svc.Get(ctx, st.ID)
		assert.Equal(t, before, after, "slot %d", slot.ID)
	}
}

func TestService_SelectSlot_WrongStep(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st, _ := svc.Start(ctx, 0)
	_, _ = svc.SelectSlot(ctx, st.ID, 1)
	_, _ = svc.Next(ctx, st.ID)

	_, err := svc.SelectSlot(ctx, st.ID, 2)
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestService_Next_RequiresSlot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st, _ := svc.Start(ctx, 0)

	got, err := svc.Next(ctx, st.ID)
	assert.ErrorIs(t, err, ErrSlotRequired)
	assert.Equal(t, wizard.StepSelectSlot, got.Step)
}

func TestService_Next_RequiresDetails(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st, _ := svc.Start(ctx, 0)
	_, _ = svc.SelectSlot(ctx, st.ID, 1)
	_, _ = svc.Next(ctx, st.ID)

	details := completeDetails()
	details.City = "   "
	details.ZipCode = ""
	_, err := svc.UpdateDetails(ctx, st.ID, 0, details)
	require.NoError(t, err)

	got, err := svc.Next(ctx, st.ID)
	require.ErrorIs(t, err, ErrDetailsIncomplete)
	var incomplete *IncompleteError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []string{"item", "city", "zip_code"}, incomplete.Missing)
	assert.Equal(t, wizard.StepEnterDetails, got.Step)
}

func TestService_UpdateDetails(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st, _ := svc.Start(ctx, 0)

	_, err := svc.UpdateDetails(ctx, st.ID, 1, completeDetails())
	assert.ErrorIs(t, err, ErrWrongStep)

	_, _ = svc.SelectSlot(ctx, st.ID, 1)
	_, _ = svc.Next(ctx, st.ID)

	_, err = svc.UpdateDetails(ctx, st.ID, 77, completeDetails())
	assert.ErrorIs(t, err, ErrItemNotFound)

	got, err := svc.UpdateDetails(ctx, st.ID, 4, completeDetails())
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ItemID)
	assert.Equal(t, "Ana Torres", got.Details.Name)
}

func TestService_StepBoundaries(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st, _ := svc.Start(ctx, 0)

	got, err := svc.Previous(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepSelectSlot, got.Step)

	st = toReview(t, svc)
	got, err = svc.Next(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepReview, got.Step)

	got, err = svc.Previous(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepEnterDetails, got.Step)
	assert.Equal(t, "Ana Torres", got.Details.Name)
}

func TestCanContinueAndMissingFields(t *testing.T) {
	full := &State{Step: wizard.StepEnterDetails, ItemID: 1, Details: completeDetails()}
	assert.True(t, CanContinue(full))
	assert.Empty(t, MissingFields(full))

	fields := map[string]func(d *domain.BookingDetails){
		"name":     func(d *domain.BookingDetails) { d.Name = "" },
		"email":    func(d *domain.BookingDetails) { d.Email = " " },
		"street":   func(d *domain.BookingDetails) { d.Street = "" },
		"city":     func(d *domain.BookingDetails) { d.City = "\t" },
		"state":    func(d *domain.BookingDetails) { d.State = "" },
		"zip_code": func(d *domain.BookingDetails) { d.ZipCode = "" },
		"country":  func(d *domain.BookingDetails) { d.Country = "" },
	}
	for name, blank := range fields {
		st := &State{Step: wizard.StepEnterDetails, ItemID: 1, Details: completeDetails()}
		blank(&st.Details)
		assert.False(t, CanContinue(st), name)
		assert.Equal(t, []string{name}, MissingFields(st))
	}

	// optional fields never block
	st := &State{Step: wizard.StepEnterDetails, ItemID: 1, Details: completeDetails()}
	st.Details.Phone, st.Details.Colors, st.Details.Size, st.Details.SpecialRequests = "", "", "", ""
	assert.True(t, CanContinue(st))

	assert.False(t, CanContinue(&State{Step: wizard.StepSelectSlot}))
	assert.True(t, CanContinue(&State{Step: wizard.StepSelectSlot, SlotID: 2}))
	assert.False(t, CanContinue(&State{Step: wizard.StepReview, SlotID: 2}))
}

func TestService_ValidateIsAdvisory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	st, _ := svc.Start(ctx, 1)
	_, _ = svc.SelectSlot(ctx, st.ID, 1)
	_, _ = svc.Next(ctx, st.ID)

	details := completeDetails()
	details.Phone = "123"
	details.Email = "not-an-email"
	_, err := svc.UpdateDetails(ctx, st.ID, 1, details)
	require.NoError(t, err)

	errs, err := svc.Validate(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Please enter a valid phone number.", errs["phone"])
	assert.Equal(t, "Please enter a valid email address.", errs["email"])

	got, err := svc.Next(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepReview, got.Step)

	review, err := svc.Review(ctx, got)
	require.NoError(t, err)
	assert.Contains(t, review.Warnings, "phone")
}

func TestService_Review(t *testing.T) {
	svc, _ := newTestService(t)
	st := toReview(t, svc)

	review, err := svc.Review(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, "Jan 15-21, 2024", review.Slot.Week)
	require.NotNil(t, review.Item)
	assert.Equal(t, "Anime Character Commission", review.Item.Name)
	assert.Equal(t, domain.CatalogCommissionFee, review.Fee)
	assert.Equal(t, "Medium (6-8 inches) - Standard", review.SizeName)
	assert.Nil(t, review.Warnings)
}

func TestService_Submit(t *testing.T) {
	svc, notifier := newTestService(t)
	ctx := context.Background()

	slotsBefore, _ := repository.NewSlotRepository().List(ctx)
	itemsBefore, _ := repository.NewCatalogRepository().ListItems(ctx)

	st := toReview(t, svc)
	notifier.On("CommissionSubmitted", mock.Anything, mock.MatchedBy(func(a domain.Acknowledgement) bool {
		return a.Kind == domain.RequestCatalog && a.Email == "ana@example.com"
	})).Return(nil).Once()

	ack, err := svc.Submit(ctx, st.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, ack.Reference)
	assert.Equal(t, "Booking submitted! You'll receive a confirmation email shortly.", ack.Message)
	assert.Equal(t, "Jan 15-21, 2024", ack.SlotWeek)
	assert.Equal(t, "Anime Character Commission", ack.ItemName)
	assert.Equal(t, 75, ack.Fee)
	notifier.AssertExpectations(t)

	_, err = svc.Get(ctx, st.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	slotsAfter, _ := repository.NewSlotRepository().List(ctx)
	itemsAfter, _ := repository.NewCatalogRepository().ListItems(ctx)
	assert.Equal(t, slotsBefore, slotsAfter)
	assert.Equal(t, itemsBefore, itemsAfter)
}

func TestService_Submit_NotifierFailureIsNotFatal(t *testing.T) {
	svc, notifier := newTestService(t)
	st := toReview(t, svc)
	notifier.On("CommissionSubmitted", mock.Anything, mock.Anything).Return(errors.New("mail down"))

	ack, err := svc.Submit(context.Background(), st.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, ack.Reference)
}

func TestService_Submit_WrongStep(t *testing.T) {
	svc, notifier := newTestService(t)
	ctx := context.Background()
	st, _ := svc.Start(ctx, 1)

	_, err := svc.Submit(ctx, st.ID)
	assert.ErrorIs(t, err, ErrWrongStep)
	notifier.AssertNotCalled(t, "CommissionSubmitted", mock.Anything, mock.Anything)

	_, err = svc.Get(ctx, st.ID)
	assert.NoError(t, err)
}
