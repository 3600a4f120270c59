package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

// buildTestRouter wires AuthMiddleware plus RequireRoles in front of a
// handler that reports the caller's role.
func buildTestRouter(allowedRoles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		AuthMiddleware(),
		RequireRoles(allowedRoles...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
		},
	)
	return r
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := GenerateToken("00000000-0000-0000-0000-000000000001", role, "test@fugazero.cl")
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := buildTestRouter("admin")

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := buildTestRouter("admin")

	w := doRequest(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := buildTestRouter("admin", "secretaria")

	w := doRequest(r, tokenForRole(t, "secretaria"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "secretaria")
}

func TestRequireRolesRejectsTechnicianOnStaffRoute(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := buildTestRouter("admin", "secretaria")

	w := doRequest(r, tokenForRole(t, "operador"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "No tiene permisos")
}

func TestRequireRolesAdminOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := buildTestRouter("admin")

	assert.Equal(t, http.StatusOK, doRequest(r, tokenForRole(t, "admin")).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, tokenForRole(t, "secretaria")).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, tokenForRole(t, "operador")).Code)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateToken("id", "admin", "a@b.cl")
	assert.Error(t, err)
}

func TestTokenExpiryHoursDefault(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "")
	assert.Equal(t, 24, TokenExpiryHours())
}

func TestTokenExpiryHoursFromEnv(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "6")
	assert.Equal(t, 6, TokenExpiryHours())
}

// Garbage or non-positive values fall back to the default so the session
// cookie never ends up with a zero or negative max-age.
func TestTokenExpiryHoursRejectsBadValues(t *testing.T) {
	for _, env := range []string{"abc", "0", "-3"} {
		t.Setenv("JWT_EXPIRY_HOURS", env)
		assert.Equal(t, 24, TokenExpiryHours(), "env %q", env)
	}
}
