package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubCounter struct {
	count     int64
	remaining time.Duration
	err       error
	lastKey   string
}

func (s *stubCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, time.Duration, error) {
	s.lastKey = key
	s.count++
	return s.count, s.remaining, s.err
}

func TestRateLimit_UnderLimit(t *testing.T) {
	e := echo.New()
	counter := &stubCounter{}
	mw := RateLimit(counter, 100, 15*time.Minute, zerolog.Nop())

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if counter.lastKey == "" {
		t.Fatalf("counter was not keyed by client IP")
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	e := echo.New()
	counter := &stubCounter{count: 100, remaining: 9 * time.Minute}
	mw := RateLimit(counter, 100, 15*time.Minute, zerolog.Nop())

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "540" {
		t.Fatalf("expected Retry-After 540, got %q", rec.Header().Get("Retry-After"))
	}
}

func TestRateLimit_StoreDownAllowsRequest(t *testing.T) {
	e := echo.New()
	counter := &stubCounter{err: errors.New("redis: connection refused")}
	mw := RateLimit(counter, 100, 15*time.Minute, zerolog.Nop())

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("request should pass through when the store is unreachable")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
