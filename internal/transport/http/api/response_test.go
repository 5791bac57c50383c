package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]int{"page": 2}, "req-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	var env struct {
		Success   bool           `json:"success"`
		Data      map[string]int `json:"data"`
		RequestID string         `json:"requestId"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success || env.Data["page"] != 2 || env.RequestID != "req-1" {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestFailWithDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	FailWithDetails(rec, http.StatusBadRequest, "validation_error", "bad input", map[string]any{"fields": []string{"page"}}, "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var env Envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Success || env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if env.Error.Details["fields"] == nil {
		t.Fatal("expected field details")
	}
}
