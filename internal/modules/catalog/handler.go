package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"crochetstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the read-only catalog API.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("", h.GetProducts)        // GET /api/v1/catalog?category=...
		catalog.GET("/items", h.GetItems)     // GET /api/v1/catalog/items
		catalog.GET("/:id", h.GetProductByID) // GET /api/v1/catalog/:id
	}

	r.GET("/categories", h.GetCategories)
	r.GET("/slots", h.GetSlots)
	r.GET("/testimonials", h.GetTestimonials)
}

func (h *Handler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	products, err := h.service.ListProducts(c.Request.Context(), category)
	if err != nil {
		handleError(c, err)
		return
	}
	if category == "" {
		category = "All"
	}
	response.Success(c, http.StatusOK, ProductListResponse{Category: category, Products: products})
}

func (h *Handler) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}
	view, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) GetItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) GetSlots(c *gin.Context) {
	slots, err := h.service.ListSlots(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, SlotListResponse{Slots: slots, AvailableCount: CountAvailable(slots)})
}

func (h *Handler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.service.ListTestimonials(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"testimonials": testimonials})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
	default:
		response.Internal(c, err)
	}
}
