package catalog

import "crochetstudio/internal/domain"

// ProductView is a product together with the slot calendar shown beside it.
type ProductView struct {
	Product        domain.Product    `json:"product"`
	Slots          []domain.TimeSlot `json:"slots"`
	AvailableCount int               `json:"available_count"`
}

type ProductListResponse struct {
	Category string           `json:"category"`
	Products []domain.Product `json:"products"`
}

type SlotListResponse struct {
	Slots          []domain.TimeSlot `json:"slots"`
	AvailableCount int               `json:"available_count"`
}

// CatalogPageView backs the catalog listing template.
type CatalogPageView struct {
	Categories []string
	Active     string
	Products   []domain.Product
}
