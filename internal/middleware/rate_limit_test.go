package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 5) // 10 per minute, burst of 5
	defer rl.Stop()

	clientIP := "203.0.113.7"

	// First 5 requests should be allowed (burst)
	for i := 0; i < 5; i++ {
		if !rl.Allow(clientIP) {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// 6th request should be rate limited (exceeded burst)
	if rl.Allow(clientIP) {
		t.Error("Request 6 should be rate limited")
	}
}

func TestRateLimiter_DifferentClients(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 3)
	defer rl.Stop()

	ip1 := "203.0.113.1"
	ip2 := "203.0.113.2"

	// Exhaust ip1's burst
	for i := 0; i < 3; i++ {
		if !rl.Allow(ip1) {
			t.Errorf("Client 1 request %d should be allowed", i+1)
		}
	}

	// ip1 should be rate limited
	if rl.Allow(ip1) {
		t.Error("Client 1 should be rate limited")
	}

	// ip2 should still have its full burst
	for i := 0; i < 3; i++ {
		if !rl.Allow(ip2) {
			t.Errorf("Client 2 request %d should be allowed", i+1)
		}
	}
}

func TestRateLimitMiddleware_AllowsWithinBurst(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(60, 2)
	defer rl.Stop()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	wrapped := RateLimitMiddleware(rl)(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.RemoteAddr = "203.0.113.7:12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := wrapped(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Limit") == "" {
		t.Error("Expected rate limit headers on success")
	}
}

func TestRateLimitMiddleware_Returns429WhenExhausted(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	wrapped := RateLimitMiddleware(rl)(handler)

	var lastCode string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
		req.RemoteAddr = "203.0.113.7:12345"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := wrapped(c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if i == 1 {
			if rec.Code != http.StatusTooManyRequests {
				t.Errorf("Expected 429 after burst exhausted, got %d", rec.Code)
			}
			if rec.Header().Get("Retry-After") == "" {
				t.Error("Expected Retry-After header")
			}
		}
		lastCode = rec.Header().Get("X-RateLimit-Remaining")
	}
	if lastCode != "0" {
		t.Errorf("Expected X-RateLimit-Remaining 0, got %q", lastCode)
	}
}
