package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crochetstudio/internal/database"
	"crochetstudio/internal/notify"
	"crochetstudio/internal/pkg/jwt"
	"crochetstudio/internal/repository"
	"crochetstudio/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return setupRouterWithTTL(t, time.Hour)
}

func setupRouterWithTTL(t *testing.T, ttl time.Duration) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	store := session.NewGormStore(db)
	require.NoError(t, store.Migrate(context.Background()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(
		session.NewRepository[State](store, Flow, ttl),
		repository.NewCatalogRepository(),
		repository.NewSlotRepository(),
		notify.NewLogNotifier(logger),
		logger,
	)
	handler := NewHandler(service, jwt.New("test-secret", ttl))

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp apiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func startBooking(t *testing.T, router *gin.Engine, body interface{}) StateResponse {
	t.Helper()
	w, resp := performRequest(router, http.MethodPost, "/api/v1/bookings", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var st StateResponse
	require.NoError(t, json.Unmarshal(resp.Data, &st))
	require.NotEmpty(t, st.Token)
	return st
}

func TestAPI_StartWithoutBody(t *testing.T) {
	router := setupRouter(t)

	st := startBooking(t, router, nil)
	assert.Equal(t, "select_slot", st.StepName)
	assert.False(t, st.CanContinue)
	assert.Zero(t, st.ItemID)
}

func TestAPI_FullFlow(t *testing.T) {
	router := setupRouter(t)
	st := startBooking(t, router, StartRequest{ItemID: 1})
	assert.Equal(t, int64(1), st.ItemID)
	base := "/api/v1/bookings/" + st.Token

	w, resp := performRequest(router, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "SLOT_REQUIRED", resp.Error.Code)

	w, resp = performRequest(router, http.MethodPut, base+"/slot", SelectSlotRequest{SlotID: 3})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SLOT_BOOKED", resp.Error.Code)

	w, _ = performRequest(router, http.MethodPut, base+"/slot", SelectSlotRequest{SlotID: 2})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = performRequest(router, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = performRequest(router, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "DETAILS_INCOMPLETE", resp.Error.Code)
	assert.Contains(t, resp.Error.Details["missing_fields"], "name")

	w, resp = performRequest(router, http.MethodPut, base+"/details", UpdateDetailsRequest{ItemID: 1, BookingDetails: completeDetails()})
	require.Equal(t, http.StatusOK, w.Code)
	var got StateResponse
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.True(t, got.CanContinue)
	assert.Empty(t, got.MissingFields)

	w, resp = performRequest(router, http.MethodGet, base+"/validation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var v ValidationResponse
	require.NoError(t, json.Unmarshal(resp.Data, &v))
	assert.True(t, v.Valid)

	w, _ = performRequest(router, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = performRequest(router, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(resp.Data), "Booking submitted!")
	assert.Contains(t, string(resp.Data), `"kind":"catalog"`)

	w, resp = performRequest(router, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)
}

func TestAPI_PreviousAndWrongStep(t *testing.T) {
	router := setupRouter(t)
	st := startBooking(t, router, nil)
	base := "/api/v1/bookings/" + st.Token

	w, resp := performRequest(router, http.MethodPut, base+"/details", UpdateDetailsRequest{BookingDetails: completeDetails()})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "WRONG_STEP", resp.Error.Code)

	w, resp = performRequest(router, http.MethodPost, base+"/previous", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got StateResponse
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "select_slot", got.StepName)

	w, resp = performRequest(router, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "WRONG_STEP", resp.Error.Code)
}

func TestAPI_BadInput(t *testing.T) {
	router := setupRouter(t)
	st := startBooking(t, router, nil)
	base := "/api/v1/bookings/" + st.Token

	w, resp := performRequest(router, http.MethodPut, base+"/slot", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	w, resp = performRequest(router, http.MethodPut, base+"/slot", SelectSlotRequest{SlotID: 404})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SLOT_NOT_FOUND", resp.Error.Code)

	w, resp = performRequest(router, http.MethodGet, "/api/v1/bookings/not-a-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)
}

func TestAPI_RejectsTokenFromOtherFlow(t *testing.T) {
	router := setupRouter(t)
	token, err := jwt.New("test-secret", time.Hour).GenerateToken("some-id", "custom")
	require.NoError(t, err)

	w, resp := performRequest(router, http.MethodGet, "/api/v1/bookings/"+token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)
}

func TestAPI_TokenFollowsSlidingExpiry(t *testing.T) {
	router := setupRouterWithTTL(t, 3*time.Second)
	first := startBooking(t, router, nil)

	time.Sleep(1500 * time.Millisecond)
	w, resp := performRequest(router, http.MethodPut, "/api/v1/bookings/"+first.Token+"/slot", SelectSlotRequest{SlotID: 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated StateResponse
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	require.NotEmpty(t, updated.Token)
	assert.NotEqual(t, first.Token, updated.Token)
	assert.True(t, updated.ExpiresAt.After(first.ExpiresAt))

	time.Sleep(1600 * time.Millisecond)
	w, resp = performRequest(router, http.MethodGet, "/api/v1/bookings/"+first.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", resp.Error.Code)

	w, resp = performRequest(router, http.MethodGet, "/api/v1/bookings/"+updated.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var current StateResponse
	require.NoError(t, json.Unmarshal(resp.Data, &current))
	assert.Equal(t, int64(2), current.SlotID)
}
