package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/elsur/driving-school-api/pkg/config"
)

func TestNewRespectsLevelOverride(t *testing.T) {
	l, err := New(&config.Config{
		Env: config.EnvProduction,
		Log: config.LogConfig{Level: "warn", Format: "json"},
	})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestGinMiddlewareLogsRequestLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(GinMiddleware(zap.New(core)))
	r.GET("/api/students", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/students?format=csv", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "http_request", entry.Message)
	assert.Equal(t, zap.InfoLevel, entry.Level)

	ctx := entry.ContextMap()
	assert.Equal(t, "GET", ctx["method"])
	assert.Equal(t, "/api/students", ctx["path"])
	assert.Equal(t, "format=csv", ctx["query"])
	assert.EqualValues(t, http.StatusOK, ctx["status"])
}

func TestGinMiddlewareServerErrorsLogAtErrorLevel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(GinMiddleware(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zap.ErrorLevel, logs.All()[0].Level)
}
