package domain

// CatalogItem is a pre-defined design that can be commissioned through the booking wizard.
type CatalogItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// Product is the detail record shown on the catalog pages.
type Product struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Price              string   `json:"price"`
	Image              string   `json:"image"`
	Images             []string `json:"images,omitempty"`
	Category           string   `json:"category,omitempty"`
	Description        string   `json:"description,omitempty"`
	Rating             *float64 `json:"rating,omitempty"`
	Reviews            *int     `json:"reviews,omitempty"`
	Difficulty         string   `json:"difficulty,omitempty"`
	EstimatedTimeHours *int     `json:"estimated_time_hours,omitempty"`
	Dimensions         string   `json:"dimensions,omitempty"`
	TimeSlots          string   `json:"time_slots,omitempty"`
	Features           []string `json:"features,omitempty"`
	Materials          []string `json:"materials,omitempty"`
	Tags               []string `json:"tags,omitempty"`
}

// Thumbnails returns at most three gallery images, only when there is more than one.
func (p Product) Thumbnails() []string {
	if len(p.Images) <= 1 {
		return nil
	}
	if len(p.Images) > 3 {
		return p.Images[:3]
	}
	return p.Images
}

type Category struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}

// CategoryAll disables category filtering.
const CategoryAll = "All"

type FeaturedProduct struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Rating   int     `json:"rating"`
	Reviews  int     `json:"reviews"`
}
