package config

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSlowThresholdDefault(t *testing.T) {
	t.Setenv("SLOW_REQUEST_MS", "")
	assert.Equal(t, defaultSlowThreshold, slowThreshold())
}

func TestSlowThresholdFromEnv(t *testing.T) {
	t.Setenv("SLOW_REQUEST_MS", "500")
	assert.Equal(t, 500*time.Millisecond, slowThreshold())
}

func TestSlowThresholdRejectsBadValues(t *testing.T) {
	for _, env := range []string{"abc", "0", "-10"} {
		t.Setenv("SLOW_REQUEST_MS", env)
		assert.Equal(t, defaultSlowThreshold, slowThreshold(), "env %q", env)
	}
}

func TestPerformanceLoggerPassesRequestThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	r := gin.New()
	r.Use(PerformanceLogger())
	r.GET("/api/clients", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "GET /api/clients")
	assert.Contains(t, buf.String(), "[PERF]")
}
