package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestIDAssignsAndEchoesBack(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = RequestIDFrom(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == "" {
		t.Fatal("no request id assigned")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("response header %q, context id %q", got, seen)
	}
}

func TestRequestIDReusesCallerSupplied(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = RequestIDFrom(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "req-42" {
		t.Fatalf("request id = %q, want caller-supplied req-42", seen)
	}
}

func logLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	return line
}

func TestLoggerCarriesRequestID(t *testing.T) {
	e := echo.New()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := RequestID()(Logger(logger)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := logLine(t, &buf)
	if line["request_id"] != "req-7" {
		t.Errorf("request_id = %v, want req-7", line["request_id"])
	}
	if line["level"] != "info" {
		t.Errorf("level = %v, want info for a 200", line["level"])
	}
}

func TestLoggerGradesSeverityByStatus(t *testing.T) {
	cases := []struct {
		name      string
		handler   echo.HandlerFunc
		wantLevel string
	}{
		{"client error", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "missing")
		}, "warn"},
		{"server error", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusInternalServerError, "boom")
		}, "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			var buf bytes.Buffer
			h := Logger(zerolog.New(&buf))(tc.handler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			_ = h(e.NewContext(req, rec))

			line := logLine(t, &buf)
			if line["level"] != tc.wantLevel {
				t.Errorf("level = %v, want %s", line["level"], tc.wantLevel)
			}
		})
	}
}

func TestRecoveryConvertsPanicTo500(t *testing.T) {
	e := echo.New()
	var buf bytes.Buffer
	h := RequestID()(Recovery(zerolog.New(&buf))(func(c echo.Context) error {
		panic("nil map write")
	}))

	req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	req.Header.Set(RequestIDHeader, "req-9")
	rec := httptest.NewRecorder()
	err := h(e.NewContext(req, rec))

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 HTTPError, got %v", err)
	}
	line := logLine(t, &buf)
	if line["request_id"] != "req-9" {
		t.Errorf("request_id = %v, want req-9", line["request_id"])
	}
	if line["panic"] != "nil map write" {
		t.Errorf("panic = %v, want the recovered value", line["panic"])
	}
}
