package catalog

import (
	"context"
	"testing"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(
		repository.NewCatalogRepository(),
		repository.NewSlotRepository(),
		repository.NewTestimonialRepository(),
	)
}

func TestService_ListProducts_CategoryFilter(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	all, err := svc.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	explicit, err := svc.ListProducts(ctx, domain.CategoryAll)
	require.NoError(t, err)
	assert.Equal(t, all, explicit)

	fantasy, err := svc.ListProducts(ctx, "Fantasy Creatures")
	require.NoError(t, err)
	require.Len(t, fantasy, 1)
	assert.Equal(t, "Magical Dragon", fantasy[0].Name)

	none, err := svc.ListProducts(ctx, "Robots")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_GetProduct(t *testing.T) {
	svc := newTestService()

	view, err := svc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Kawaii Cat Bundle", view.Product.Name)
	assert.Len(t, view.Slots, 6)
	assert.Equal(t, 4, view.AvailableCount)
}

func TestService_GetProduct_Unknown(t *testing.T) {
	svc := newTestService()

	for _, id := range []int64{0, -1, 7, 999} {
		view, err := svc.GetProduct(context.Background(), id)
		assert.ErrorIs(t, err, ErrProductNotFound, "id %d", id)
		assert.Nil(t, view)
	}
}

func TestService_CategoryFilters(t *testing.T) {
	filters, err := newTestService().CategoryFilters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"All", "Kawaii Animals", "Anime Characters", "Fantasy Creatures",
		"Food Characters", "Custom Design", "Holiday Themed",
	}, filters)
}

func TestService_ResultsDoNotAliasTables(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	view, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	view.Product.Tags[0] = "changed"
	view.Slots[0].Status = domain.SlotBooked

	again, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "cat", again.Product.Tags[0])
	assert.Equal(t, domain.SlotAvailable, again.Slots[0].Status)
}

func TestCountAvailable(t *testing.T) {
	slots := []domain.TimeSlot{
		{Status: domain.SlotAvailable},
		{Status: domain.SlotLimited},
		{Status: domain.SlotBooked},
		{Status: domain.SlotAvailable},
	}
	assert.Equal(t, 2, CountAvailable(slots))
	assert.Zero(t, CountAvailable(nil))
}
