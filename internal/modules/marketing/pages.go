package marketing

import (
	"net/http"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/modules/catalog"
	"crochetstudio/internal/web"

	"github.com/gin-gonic/gin"
)

// HomeView backs the landing page.
type HomeView struct {
	Slots          []domain.TimeSlot
	AvailableCount int
	Categories     []domain.Category
	Featured       []domain.FeaturedProduct
	Testimonials   []domain.Testimonial
}

type SuccessView struct {
	Reference string
}

type Pages struct {
	catalog *catalog.Service
}

func NewPages(catalog *catalog.Service) *Pages {
	return &Pages{catalog: catalog}
}

// RegisterRoutes mounts the home page on the group root, so a "/es" group serves "/es".
func (p *Pages) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", p.Home)
	rg.GET("/checkout/success", p.Success)
}

func (p *Pages) Home(c *gin.Context) {
	view, err := p.home(c)
	if err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		web.ServerError(c)
		return
	}
	web.Render(c, http.StatusOK, "home", web.Page{Title: "Handmade Crochet Commissions", Content: view})
}

func (p *Pages) home(c *gin.Context) (*HomeView, error) {
	ctx := c.Request.Context()
	slots, err := p.catalog.ListSlots(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := p.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	featured, err := p.catalog.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	testimonials, err := p.catalog.ListTestimonials(ctx)
	if err != nil {
		return nil, err
	}
	return &HomeView{
		Slots:          slots,
		AvailableCount: catalog.CountAvailable(slots),
		Categories:     categories,
		Featured:       featured,
		Testimonials:   testimonials,
	}, nil
}

// Success is the thank-you page both wizards redirect to.
func (p *Pages) Success(c *gin.Context) {
	web.Render(c, http.StatusOK, "success", web.Page{
		Title:   "Booking Confirmed!",
		Content: SuccessView{Reference: c.Query("ref")},
	})
}
