package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/x", nil)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newContext()

	Success(c, http.StatusCreated, gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":1}}`, w.Body.String())
}

func TestErrorWithDetails(t *testing.T) {
	c, w := newContext()

	ErrorWithDetails(c, http.StatusUnprocessableEntity, "DETAILS_INCOMPLETE", "Please fill in the required fields.",
		gin.H{"missing_fields": []string{"city"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"DETAILS_INCOMPLETE","message":"Please fill in the required fields.","details":{"missing_fields":["city"]}}}`, w.Body.String())
}

func TestInternal_HidesCause(t *testing.T) {
	c, w := newContext()

	Internal(c, errors.New("redis: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "redis")
	assert.Contains(t, w.Body.String(), CodeInternal)
	require.Len(t, c.Errors, 1)
	assert.EqualError(t, c.Errors[0].Err, "redis: connection refused")
}

func TestAbort(t *testing.T) {
	c, w := newContext()

	Abort(c, http.StatusNotFound, "NOT_FOUND", "Route not found")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusNotFound, w.Code)
}
