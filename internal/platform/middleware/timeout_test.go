package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRequestTimeout_FastHandlerPasses(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequestTimeout(100 * time.Millisecond)
	h := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRequestTimeout_SlowHandlerTimesOut(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequestTimeout(20 * time.Millisecond)
	h := mw(func(c echo.Context) error {
		select {
		case <-time.After(5 * time.Second):
		case <-c.Request().Context().Done():
		}
		return nil
	})

	err := h(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %v", err)
	}
}

func TestRequestTimeout_HandlerSeesDeadline(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequestTimeout(time.Second)
	h := mw(func(c echo.Context) error {
		if _, ok := c.Request().Context().Deadline(); !ok {
			t.Error("expected a deadline on the request context")
		}
		return c.String(http.StatusOK, "ok")
	})

	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
