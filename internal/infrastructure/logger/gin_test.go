package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// requestLog finds the per-request entry among whatever else was recorded
func requestLog(t *testing.T, recorded *observer.ObservedLogs) *observer.LoggedEntry {
	t.Helper()
	logs := recorded.All()
	for i := range logs {
		if logs[i].Message == "HTTP Request" {
			return &logs[i]
		}
	}
	t.Fatal("no request entry logged")
	return nil
}

func serveLogged(level zapcore.Level, register func(*gin.Engine), method, target string) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(level)

	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	register(router)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w, recorded
}

func TestGinMiddleware(t *testing.T) {
	t.Run("success logs at info with request fields", func(t *testing.T) {
		w, recorded := serveLogged(zapcore.InfoLevel, func(r *gin.Engine) {
			r.GET("/api/cart", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"items": []string{}})
			})
		}, "GET", "/api/cart")

		assert.Equal(t, http.StatusOK, w.Code)
		entry := requestLog(t, recorded)
		assert.Equal(t, zapcore.InfoLevel, entry.Level)

		fieldMap := make(map[string]any)
		for _, field := range entry.Context {
			fieldMap[field.Key] = field
		}
		for _, key := range []string{"status", "latency", "client_ip", "user_agent", "method", "path"} {
			assert.Contains(t, fieldMap, key)
		}
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		_, recorded := serveLogged(zapcore.WarnLevel, func(r *gin.Engine) {
			r.POST("/api/cart", func(c *gin.Context) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart full"})
			})
		}, "POST", "/api/cart")

		assert.Equal(t, zapcore.WarnLevel, requestLog(t, recorded).Level)
	})

	t.Run("server errors log at error", func(t *testing.T) {
		_, recorded := serveLogged(zapcore.ErrorLevel, func(r *gin.Engine) {
			r.GET("/api/donations", func(c *gin.Context) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
			})
		}, "GET", "/api/donations")

		assert.Equal(t, zapcore.ErrorLevel, requestLog(t, recorded).Level)
	})

	t.Run("query string is captured", func(t *testing.T) {
		_, recorded := serveLogged(zapcore.InfoLevel, func(r *gin.Engine) {
			r.GET("/api/donations/success", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{})
			})
		}, "GET", "/api/donations/success?session_id=cs_123")

		entry := requestLog(t, recorded)
		found := false
		for _, field := range entry.Context {
			if field.Key == "query" {
				found = true
				assert.Contains(t, field.String, "session_id=cs_123")
			}
		}
		assert.True(t, found, "query should be in log fields")
	})

	t.Run("request id from upstream middleware is carried", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		core, recorded := observer.New(zapcore.InfoLevel)

		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Set("request_id", "req-123")
			c.Next()
		})
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/api/cart", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/cart", nil))

		entry := requestLog(t, recorded)
		found := false
		for _, field := range entry.Context {
			if field.Key == "request_id" {
				found = true
				assert.Equal(t, "req-123", field.String)
			}
		}
		assert.True(t, found, "request_id should be in log fields")
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.ErrorLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/panic", nil)
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, req)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	logs := recorded.All()
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[0].Message, "Panic recovered")
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the request-scoped logger", func(t *testing.T) {
		core, _ := observer.New(zapcore.InfoLevel)

		var got *zap.Logger
		router := gin.New()
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/api/cart", func(c *gin.Context) {
			got = GetGinLogger(c)
			c.JSON(http.StatusOK, gin.H{})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/cart", nil))
		assert.NotNil(t, got)
	})

	t.Run("falls back to a no-op logger", func(t *testing.T) {
		var got *zap.Logger
		router := gin.New()
		router.GET("/api/cart", func(c *gin.Context) {
			got = GetGinLogger(c)
			c.JSON(http.StatusOK, gin.H{})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/cart", nil))

		require.NotNil(t, got)
		assert.NotPanics(t, func() {
			got.Info("still works")
		})
	})
}
