package catalog

import (
	"context"

	"crochetstudio/internal/domain"
)

type ProductRepository interface {
	ListItems(ctx context.Context) ([]domain.CatalogItem, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListFeatured(ctx context.Context) ([]domain.FeaturedProduct, error)
}

type SlotRepository interface {
	List(ctx context.Context) ([]domain.TimeSlot, error)
}

type TestimonialRepository interface {
	List(ctx context.Context) ([]domain.Testimonial, error)
}
