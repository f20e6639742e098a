//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	testCases := []struct {
		name         string
		handler      gin.HandlerFunc
		expectStatus int
		expectBody   string
	}{
		{
			name: "public error without a body is rendered from its meta",
			handler: func(c *gin.Context) {
				_ = c.Error(&gin.Error{
					Err:  errors.New("room full"),
					Type: gin.ErrorTypePublic,
					Meta: httperr.Response{Status: http.StatusConflict, Error: "Conflict"},
				})
			},
			expectStatus: http.StatusConflict,
			expectBody:   `{"error":"Conflict"}`,
		},
		{
			name: "response already written by httperr is left alone",
			handler: func(c *gin.Context) {
				httperr.AbortWithError(c, http.StatusBadRequest, errors.New("bad"), "Invalid dates")
			},
			expectStatus: http.StatusBadRequest,
			expectBody:   `{"error":"Invalid dates"}`,
		},
		{
			name: "private error falls back to 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("boom"))
			},
			expectStatus: http.StatusInternalServerError,
			expectBody:   `{"error":"Internal server error"}`,
		},
		{
			name: "bare status without errors is flushed",
			handler: func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			},
			expectStatus: http.StatusNoContent,
			expectBody:   "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.ErrorHandler())
			r.GET("/", tc.handler)

			w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.expectStatus, w.Code)
			if tc.expectBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tc.expectBody, w.Body.String())
			}
		})
	}
}

func TestCustomRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestRequestTimeout(t *testing.T) {
	capture := func(out *context.Context) gin.HandlerFunc {
		return func(c *gin.Context) {
			*out = c.Request.Context()
			c.Status(http.StatusOK)
		}
	}

	t.Run("deadline is attached", func(t *testing.T) {
		var ctx context.Context
		r := gin.New()
		r.Use(middleware.RequestTimeout(time.Minute))
		r.GET("/", capture(&ctx))

		before := time.Now()
		serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotNil(t, ctx)
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, before.Add(time.Minute), deadline, 5*time.Second)
		assert.ErrorIs(t, ctx.Err(), context.Canceled, "context is released once the handler returns")
	})

	t.Run("zero duration leaves the context untouched", func(t *testing.T) {
		var ctx context.Context
		r := gin.New()
		r.Use(middleware.RequestTimeout(0))
		r.GET("/", capture(&ctx))

		serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotNil(t, ctx)
		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: time.RFC3339})
	t.Cleanup(func() { _ = logger.Close() })

	newRouter := func(seen *string) *gin.Engine {
		r := gin.New()
		r.Use(logger.LoggingMiddleware())
		r.GET("/rooms", func(c *gin.Context) {
			*seen = middleware.GetRequestID(c)
			c.JSON(http.StatusOK, gin.H{"rooms": []string{}})
		})
		return r
	}

	t.Run("incoming request id is echoed", func(t *testing.T) {
		var seen string
		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set("X-Request-ID", "req-123")

		w := serve(newRouter(&seen), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "req-123", seen)
	})

	t.Run("request id is generated when absent", func(t *testing.T) {
		var seen string
		w := serve(newRouter(&seen), httptest.NewRequest(http.MethodGet, "/rooms?room_type=A", nil))

		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
	})

	t.Run("no request id outside the middleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, middleware.GetRequestID(c))
	})
}

func TestNewLogger_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := middleware.NewLogger(config.LogConfig{
		Level:      "info",
		TimeZone:   "UTC",
		TimeFormat: time.RFC3339,
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
	})

	logger.GetSlogLogger().Info("booking created", "booking_id", 7)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking created")
	assert.Contains(t, string(data), "booking_id=7")
}

func TestNewLogger_StdoutOnlyClose(t *testing.T) {
	logger := middleware.NewLogger(config.LogConfig{Level: "bogus"})
	assert.NoError(t, logger.Close())
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.NewTestConfig().CORS))
	r.GET("/rooms", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("simple request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set("Origin", "http://frontend.example.com")

		w := serve(r, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Expose-Headers")), "x-request-id")
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/rooms", nil)
		req.Header.Set("Origin", "http://frontend.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)

		w := serve(r, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodGet)
	})

	t.Run("no configured origins allows all", func(t *testing.T) {
		cfg := config.NewTestConfig().CORS
		cfg.AllowOrigins = nil
		open := gin.New()
		open.Use(middleware.NewCORSMiddleware(cfg))
		open.GET("/rooms", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set("Origin", "http://elsewhere.example.com")

		w := serve(open, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
