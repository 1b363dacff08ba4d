package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"directory_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDAssignsUUID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())

	var seen any
	engine.GET("/", func(c *gin.Context) {
		seen = c.Request.Context().Value(logger.RequestIDKey)
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected generated uuid, got %q", id)
	}
	if seen != id {
		t.Fatalf("expected request id on context, got %v", seen)
	}
}

func TestIPRateLimiterIsPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(NewIPRateLimiter(1, 1, logger.Nop()).RateLimit())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do("10.0.0.1:1000"); code != http.StatusOK {
		t.Fatalf("first request: %d", code)
	}
	if code := do("10.0.0.1:1001"); code != http.StatusTooManyRequests {
		t.Fatalf("second request from same ip: %d", code)
	}
	if code := do("10.0.0.2:1000"); code != http.StatusOK {
		t.Fatalf("other ip: %d", code)
	}
}

func TestIPRateLimiterEvictsIdleClients(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	now := start
	limiter := NewIPRateLimiter(1, 1, logger.Nop())
	limiter.now = func() time.Time { return now }

	limiter.getLimiter("10.0.0.1")
	limiter.getLimiter("10.0.0.2")

	now = start.Add(5 * time.Minute)
	limiter.getLimiter("10.0.0.2")

	now = start.Add(11 * time.Minute)
	limiter.getLimiter("10.0.0.3")

	if got := len(limiter.limiters); got != 2 {
		t.Fatalf("expected 2 tracked clients, got %d", got)
	}
	if _, ok := limiter.limiters["10.0.0.1"]; ok {
		t.Fatalf("expected idle client to be evicted")
	}
	if _, ok := limiter.limiters["10.0.0.2"]; !ok {
		t.Fatalf("expected recently seen client to be kept")
	}
}
