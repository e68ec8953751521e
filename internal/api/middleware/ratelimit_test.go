package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRateLimitByIP_ExhaustsBurst(t *testing.T) {
	e := echo.New()
	mw := RateLimitByIP(RateLimitConfig{RequestsPerWindow: 1, Window: time.Hour, Burst: 2})

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := do(); code != http.StatusOK {
		t.Fatalf("second request: expected 200, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("third request: expected 429, got %d", code)
	}
}

func TestRateLimitByIP_SeparateBucketsPerIP(t *testing.T) {
	e := echo.New()
	mw := RateLimitByIP(RateLimitConfig{RequestsPerWindow: 1, Window: time.Hour, Burst: 1})

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	if code := do("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first ip: expected 200, got %d", code)
	}
	if code := do("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("first ip exhausted: expected 429, got %d", code)
	}
	if code := do("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("second ip should have its own bucket, got %d", code)
	}
}

func TestRateLimitByIP_SetsRetryAfter(t *testing.T) {
	e := echo.New()
	mw := RateLimitByIP(RateLimitConfig{RequestsPerWindow: 1, Window: time.Hour, Burst: 1})

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler(c); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}
