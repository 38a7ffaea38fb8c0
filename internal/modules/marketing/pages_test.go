package marketing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crochetstudio/internal/middleware"
	"crochetstudio/internal/modules/catalog"
	"crochetstudio/internal/repository"
	"crochetstudio/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	svc := catalog.NewService(
		repository.NewCatalogRepository(),
		repository.NewSlotRepository(),
		repository.NewTestimonialRepository(),
	)
	router := gin.New()
	router.HTMLRender = renderer
	opts := middleware.LocaleOptions{}
	NewPages(svc).RegisterRoutes(router.Group("", middleware.Locale(language.Und, opts)))
	NewPages(svc).RegisterRoutes(router.Group("/es", middleware.Locale(language.Spanish, opts)))
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHome(t *testing.T) {
	w := get(setupRouter(t), "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Handmade Crochet Commissions")
	assert.Contains(t, body, "4 Available")
	assert.Contains(t, body, "Jan 29 - Feb 4, 2024")
	assert.Contains(t, body, "Fantasy Creatures")
	assert.Contains(t, body, "Pastel Dragon")
	assert.Contains(t, body, "Jessica T.")
}

func TestHome_Spanish(t *testing.T) {
	w := get(setupRouter(t), "/es")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `lang="es"`)
	assert.Contains(t, w.Body.String(), "/es/catalog")
}

func TestSuccess(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/checkout/success?ref=abc-123")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Booking Confirmed!")
	assert.Contains(t, w.Body.String(), "Your reference: abc-123")

	w = get(router, "/checkout/success")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Your reference")
}
