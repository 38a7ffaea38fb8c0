package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crochetstudio/internal/middleware"
	"crochetstudio/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	svc := newTestService()
	router := gin.New()
	router.HTMLRender = renderer
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	opts := middleware.LocaleOptions{}
	NewPages(svc).RegisterRoutes(router.Group("", middleware.Locale(language.Und, opts)))
	NewPages(svc).RegisterRoutes(router.Group("/es", middleware.Locale(language.Spanish, opts)))
	return router
}

func get(router *gin.Engine, path string) (*httptest.ResponseRecorder, apiResponse) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var resp apiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestAPI_GetProducts(t *testing.T) {
	router := setupRouter(t)

	w, resp := get(router, "/api/v1/catalog?category=Food%20Characters")
	require.Equal(t, http.StatusOK, w.Code)
	var list ProductListResponse
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, "Food Characters", list.Category)
	require.Len(t, list.Products, 1)
	assert.Equal(t, int64(4), list.Products[0].ID)

	w, resp = get(router, "/api/v1/catalog")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, "All", list.Category)
	assert.Len(t, list.Products, 6)
}

func TestAPI_GetProductByID(t *testing.T) {
	router := setupRouter(t)

	w, resp := get(router, "/api/v1/catalog/3")
	require.Equal(t, http.StatusOK, w.Code)
	var view ProductView
	require.NoError(t, json.Unmarshal(resp.Data, &view))
	assert.Equal(t, "Magical Dragon", view.Product.Name)
	assert.Equal(t, 4, view.AvailableCount)

	w, resp = get(router, "/api/v1/catalog/42")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)

	w, resp = get(router, "/api/v1/catalog/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
}

func TestAPI_Lists(t *testing.T) {
	router := setupRouter(t)

	w, resp := get(router, "/api/v1/catalog/items")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), "Kawaii Food Friends")

	w, resp = get(router, "/api/v1/categories")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), "Holiday Themed")

	w, resp = get(router, "/api/v1/slots")
	require.Equal(t, http.StatusOK, w.Code)
	var slots SlotListResponse
	require.NoError(t, json.Unmarshal(resp.Data, &slots))
	assert.Len(t, slots.Slots, 6)
	assert.Equal(t, 4, slots.AvailableCount)

	w, resp = get(router, "/api/v1/testimonials")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), "Sarah M.")
}

func TestPages_CatalogList(t *testing.T) {
	router := setupRouter(t)

	w, _ := get(router, "/catalog?category=Anime%20Characters")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Anime Character Commission")
	assert.NotContains(t, body, "Magical Dragon")
	assert.Contains(t, body, `class="chip active"`)

	w, _ = get(router, "/catalog?category=Robots")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No items in this category yet.")
}

func TestPages_ProductDetail(t *testing.T) {
	router := setupRouter(t)

	w, _ := get(router, "/catalog/2")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Anime Character Commission")
	assert.Contains(t, body, "4 Available")
	assert.Contains(t, body, "/booking?item=2")
}

func TestPages_ProductNotFound(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{"/catalog/99", "/catalog/not-a-number"} {
		w, _ := get(router, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "Page not found", path)
	}
}

func TestPages_SpanishCatalog(t *testing.T) {
	router := setupRouter(t)

	w, _ := get(router, "/es/catalog")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `lang="es"`)
	assert.Contains(t, w.Body.String(), "/es/catalog/1")
}
