package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecord(t *testing.T) {
	c := New()
	c.Record("/", http.MethodGet, http.StatusOK, 12*time.Millisecond)
	c.Record("/", http.MethodGet, http.StatusOK, 8*time.Millisecond)
	c.Record("", http.MethodGet, http.StatusTooManyRequests, time.Millisecond)

	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("/", http.MethodGet, "200")); got != 2 {
		t.Fatalf("requests for / = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.requestsTotal.WithLabelValues("unmatched", http.MethodGet, "429")); got != 1 {
		t.Fatalf("unmatched requests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.rateLimited); got != 1 {
		t.Fatalf("rate limited = %v, want 1", got)
	}
}

func TestRecordExport(t *testing.T) {
	c := New()
	c.RecordExport("pdf")
	c.RecordExport("pdf")
	if got := testutil.ToFloat64(c.exportsTotal.WithLabelValues("pdf")); got != 2 {
		t.Fatalf("pdf exports = %v, want 2", got)
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.Record("/", http.MethodGet, http.StatusOK, time.Millisecond)
	c.RecordExport("png")
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := New()
	c.Record("/api/v1/trips", http.MethodGet, http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tripboard_http_requests_total") {
		t.Fatal("expected request counter in exposition")
	}
}
