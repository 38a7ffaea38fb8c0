package catalog

import (
	"context"
	"errors"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

type Service struct {
	products     ProductRepository
	slots        SlotRepository
	testimonials TestimonialRepository
}

func NewService(products ProductRepository, slots SlotRepository, testimonials TestimonialRepository) *Service {
	return &Service{products: products, slots: slots, testimonials: testimonials}
}

/* ---------- PRODUCTS ---------- */

// ListProducts returns the products of category. Empty or "All" returns everything;
// an unknown category yields an empty list.
func (s *Service) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	all, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == domain.CategoryAll {
		return all, nil
	}
	out := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*ProductView, error) {
	p, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	slots, err := s.slots.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ProductView{Product: *p, Slots: slots, AvailableCount: CountAvailable(slots)}, nil
}

func (s *Service) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	return s.products.ListItems(ctx)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.products.ListCategories(ctx)
}

// CategoryFilters returns "All" followed by each distinct product category in catalog order.
func (s *Service) CategoryFilters(ctx context.Context) ([]string, error) {
	all, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := []string{domain.CategoryAll}
	seen := map[string]bool{}
	for _, p := range all {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out, nil
}

func (s *Service) ListFeatured(ctx context.Context) ([]domain.FeaturedProduct, error) {
	return s.products.ListFeatured(ctx)
}

/* ---------- SLOTS & TESTIMONIALS ---------- */

func (s *Service) ListSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	return s.slots.List(ctx)
}

func (s *Service) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.List(ctx)
}

// CountAvailable counts slots with status available. Limited slots are not counted.
func CountAvailable(slots []domain.TimeSlot) int {
	n := 0
	for _, s := range slots {
		if s.Status == domain.SlotAvailable {
			n++
		}
	}
	return n
}
