package repository

import (
	"context"
	"slices"
	"sort"

	"crochetstudio/internal/domain"
)

// catalogItems are the designs offered in the booking wizard, keyed by id.
var catalogItems = map[int64]domain.CatalogItem{
	1: {ID: 1, Name: "Kawaii Cat Bundle", Price: "$45-65", Image: "/cute-kawaii-crochet-animals-cats-bunnies-bears.jpg"},
	2: {ID: 2, Name: "Anime Character Commission", Price: "$75-95", Image: "/crochet-anime-characters-manga-style-amigurumi.jpg"},
	3: {ID: 3, Name: "Magical Dragon", Price: "$85-95", Image: "/crochet-fantasy-creatures-dragons-unicorns-magical.jpg"},
	4: {ID: 4, Name: "Kawaii Food Friends", Price: "$35-55", Image: "/kawaii-food-crochet-characters-cute-faces.jpg"},
	5: {ID: 5, Name: "Custom Design", Price: "$65-120", Image: "/custom-crochet-design-sketch-to-reality.jpg"},
}

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

var products = []domain.Product{
	{
		ID:          1,
		Name:        "Kawaii Cat Bundle",
		Price:       "$45-65",
		Image:       "/cute-kawaii-crochet-animals-cats-bunnies-bears.jpg",
		Images:      []string{"/cute-kawaii-crochet-animals-cats-bunnies-bears.jpg", "/kawaii-food-crochet-characters-cute-faces.jpg"},
		Category:    "Kawaii Animals",
		Description: "Adorable cats with different expressions and accessories. Perfect for cat lovers!",
		Rating:      ptrF(5), Reviews: ptrI(124),
		Difficulty:         "Beginner",
		EstimatedTimeHours: ptrI(6),
		Dimensions:         "6-8 inches",
		TimeSlots:          "1",
		Features:           []string{"Multiple expressions", "Cute accessories", "Soft pastel colors"},
		Materials:          []string{"Cotton yarn", "Safety eyes", "Polyester fiberfill"},
		Tags:               []string{"cat", "kawaii", "gift"},
	},
	{
		ID:          2,
		Name:        "Anime Character Commission",
		Price:       "$75-95",
		Image:       "/crochet-anime-characters-manga-style-amigurumi.jpg",
		Category:    "Anime Characters",
		Description: "Your favorite anime character brought to life in crochet form!",
		Rating:      ptrF(5), Reviews: ptrI(203),
		Difficulty:         "Advanced",
		EstimatedTimeHours: ptrI(14),
		Dimensions:         "8-10 inches",
		TimeSlots:          "2",
		Features:           []string{"Custom design", "Detailed features", "Character accuracy"},
		Materials:          []string{"Milk cotton yarn", "Embroidery floss", "Felt details"},
		Tags:               []string{"anime", "manga", "amigurumi"},
	},
	{
		ID:          3,
		Name:        "Magical Dragon",
		Price:       "$85-95",
		Image:       "/crochet-fantasy-creatures-dragons-unicorns-magical.jpg",
		Images:      []string{"/crochet-fantasy-creatures-dragons-unicorns-magical.jpg", "/custom-crochet-design-sketch-to-reality.jpg", "/cute-kawaii-crochet-animals-cats-bunnies-bears.jpg", "/kawaii-food-crochet-characters-cute-faces.jpg"},
		Category:    "Fantasy Creatures",
		Description: "Mystical dragons with wings, scales, and magical details.",
		Rating:      ptrF(5), Reviews: ptrI(98),
		Difficulty:         "Expert",
		EstimatedTimeHours: ptrI(16),
		Dimensions:         "10-12 inches",
		TimeSlots:          "2",
		Features:           []string{"Poseable wings", "Detailed scales", "Magical accessories"},
		Materials:          []string{"Acrylic yarn", "Pipe cleaners", "Safety eyes"},
		Tags:               []string{"dragon", "fantasy", "magical"},
	},
	{
		ID:          4,
		Name:        "Kawaii Food Friends",
		Price:       "$35-55",
		Image:       "/kawaii-food-crochet-characters-cute-faces.jpg",
		Category:    "Food Characters",
		Description: "Cute food characters with happy faces and kawaii charm!",
		Rating:      ptrF(5), Reviews: ptrI(156),
		Difficulty:         "Beginner",
		EstimatedTimeHours: ptrI(4),
		Dimensions:         "3-5 inches",
		TimeSlots:          "1",
		Features:           []string{"Happy expressions", "Food accuracy", "Kawaii style"},
		Materials:          []string{"Cotton yarn", "Safety eyes"},
		Tags:               []string{"food", "kawaii"},
	},
	{
		ID:          5,
		Name:        "Custom Design",
		Price:       "$65-120",
		Image:       "/custom-crochet-design-sketch-to-reality.jpg",
		Category:    "Custom Design",
		Description: "Bring your unique idea to life! Send me your concept and I'll create it.",
		Difficulty:  "Varies",
		TimeSlots:   "1-3",
		Features:    []string{"Your concept", "Collaborative design", "Unlimited revisions"},
		Tags:        []string{"custom", "original"},
	},
	{
		ID:                 6,
		Name:               "Holiday Specials",
		Price:              "$45-75",
		Image:              "/cute-kawaii-crochet-animals-cats-bunnies-bears.jpg",
		Category:           "Holiday Themed",
		Description:        "Seasonal characters perfect for holidays and special occasions.",
		Difficulty:         "Intermediate",
		EstimatedTimeHours: ptrI(8),
		TimeSlots:          "1",
		Features:           []string{"Seasonal themes", "Holiday colors", "Festive accessories"},
		Tags:               []string{"holiday", "seasonal"},
	},
}

var categories = []domain.Category{
	{Name: "Kawaii Animals", Description: "Adorable cats, bunnies, bears and more", Examples: []string{"Sleepy Cat", "Bunny with Bow", "Teddy Bear"}},
	{Name: "Anime Characters", Description: "Your favorite anime and manga characters", Examples: []string{"Totoro", "Pikachu", "Sailor Moon"}},
	{Name: "Fantasy Creatures", Description: "Dragons, unicorns, and magical beings", Examples: []string{"Baby Dragon", "Unicorn", "Phoenix"}},
	{Name: "Food Characters", Description: "Cute food items with kawaii faces", Examples: []string{"Smiling Donut", "Happy Taco", "Cute Cupcake"}},
	{Name: "Custom Design", Description: "Bring your own idea to life", Examples: []string{"Your Pet", "Original Character", "Special Request"}},
	{Name: "Holiday Themed", Description: "Seasonal and holiday characters", Examples: []string{"Christmas Elf", "Halloween Ghost", "Easter Bunny"}},
}

var featuredProducts = []domain.FeaturedProduct{
	{ID: 1, Name: "Kawaii Bunny Plushie", Price: 28.99, Image: "/cute-kawaii-crochet-animals-cats-bunnies-bears.jpg", Category: "Animals", Rating: 5, Reviews: 124},
	{ID: 2, Name: "Pastel Dragon", Price: 45.99, Image: "/crochet-fantasy-creatures-dragons-unicorns-magical.jpg", Category: "Fantasy", Rating: 5, Reviews: 98},
	{ID: 3, Name: "Kawaii Food Set", Price: 32.99, Image: "/kawaii-food-crochet-characters-cute-faces.jpg", Category: "Food", Rating: 5, Reviews: 156},
	{ID: 4, Name: "Anime Character", Price: 55.99, Image: "/crochet-anime-characters-manga-style-amigurumi.jpg", Category: "Anime", Rating: 5, Reviews: 203},
}

// CatalogRepository serves the hard-coded catalog tables. Every accessor returns copies,
// so callers can never change the tables.
type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	out := make([]domain.CatalogItem, 0, len(catalogItems))
	for _, it := range catalogItems {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CatalogRepository) GetItemByID(ctx context.Context, id int64) (*domain.CatalogItem, error) {
	it, ok := catalogItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *CatalogRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	for _, p := range products {
		if p.ID == id {
			c := cloneProduct(p)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		c.Examples = slices.Clone(c.Examples)
		out = append(out, c)
	}
	return out, nil
}

func (r *CatalogRepository) ListFeatured(ctx context.Context) ([]domain.FeaturedProduct, error) {
	return slices.Clone(featuredProducts), nil
}

func cloneProduct(p domain.Product) domain.Product {
	p.Images = slices.Clone(p.Images)
	p.Features = slices.Clone(p.Features)
	p.Materials = slices.Clone(p.Materials)
	p.Tags = slices.Clone(p.Tags)
	if p.Rating != nil {
		p.Rating = ptrF(*p.Rating)
	}
	if p.Reviews != nil {
		p.Reviews = ptrI(*p.Reviews)
	}
	if p.EstimatedTimeHours != nil {
		p.EstimatedTimeHours = ptrI(*p.EstimatedTimeHours)
	}
	return p
}
