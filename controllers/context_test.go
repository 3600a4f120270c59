package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	return c, rec
}

func TestCurrentUserIDValid(t *testing.T) {
	c, _ := testContext(t)
	want := uuid.New()
	c.Set("userId", want.String())

	got, ok := currentUserID(c)

	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCurrentUserIDMissing(t *testing.T) {
	c, rec := testContext(t)

	_, ok := currentUserID(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No autenticado")
}

// A subject that is not a uuid must be rejected, never panic or pass
// through as a zero id.
func TestCurrentUserIDMalformed(t *testing.T) {
	c, rec := testContext(t)
	c.Set("userId", "not-a-uuid")

	_, ok := currentUserID(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sesión inválida")
	assert.True(t, c.IsAborted())
}

func TestCurrentUserIDWrongType(t *testing.T) {
	c, rec := testContext(t)
	c.Set("userId", 42)

	_, ok := currentUserID(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
