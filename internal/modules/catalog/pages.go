package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"crochetstudio/internal/domain"
	"crochetstudio/internal/web"

	"github.com/gin-gonic/gin"
)

type Pages struct {
	service *Service
}

func NewPages(service *Service) *Pages {
	return &Pages{service: service}
}

func (p *Pages) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", p.List)
	rg.GET("/catalog/:id", p.Detail)
}

func (p *Pages) List(c *gin.Context) {
	ctx := c.Request.Context()

	active := c.DefaultQuery("category", domain.CategoryAll)
	products, err := p.service.ListProducts(ctx, active)
	if err != nil {
		p.serverError(c, err)
		return
	}
	filters, err := p.service.CategoryFilters(ctx)
	if err != nil {
		p.serverError(c, err)
		return
	}

	web.Render(c, http.StatusOK, "catalog", web.Page{
		Title:   "Crochet Catalog",
		Content: CatalogPageView{Categories: filters, Active: active, Products: products},
	})
}

// Detail renders one product. Malformed and unknown ids both get the not-found page.
func (p *Pages) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		web.NotFound(c)
		return
	}
	view, err := p.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			web.NotFound(c)
			return
		}
		p.serverError(c, err)
		return
	}
	web.Render(c, http.StatusOK, "product", web.Page{Title: view.Product.Name, Content: view})
}

func (p *Pages) serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Status(http.StatusInternalServerError)
	web.ServerError(c)
}
