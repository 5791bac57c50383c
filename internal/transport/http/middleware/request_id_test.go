package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen == "" {
		t.Fatal("expected request id in context")
	}
	if rec.Header().Get("X-Request-ID") != seen {
		t.Fatalf("header %q does not match context id %q", rec.Header().Get("X-Request-ID"), seen)
	}
}

func TestRequestIDKeepsClientValue(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "trace-123" {
		t.Fatalf("expected client id to be echoed, got %q", got)
	}

	long := httptest.NewRequest(http.MethodGet, "/", nil)
	long.Header.Set("X-Request-ID", strings.Repeat("x", 500))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, long)
	if got := rec.Header().Get("X-Request-ID"); len(got) > 128 {
		t.Fatalf("expected oversized id to be replaced, got %d chars", len(got))
	}
}
