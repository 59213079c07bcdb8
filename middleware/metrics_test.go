// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestWithMetrics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /counts/{id}", WithLogging(WithMetrics(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, http.StatusNotFound, "reconciliation record not found")
	})))

	counter := httpRequestsTotal.WithLabelValues("GET", "GET /counts/{id}", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b"} {
		req := httptest.NewRequest("GET", "/counts/"+id, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("Expected status 404, got %d", w.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("Expected 2 requests recorded under the route pattern, got %v", got)
	}
}

func TestWithMetrics_DefaultStatus(t *testing.T) {
	handler := WithMetrics(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	counter := httpRequestsTotal.WithLabelValues("GET", "unmatched", "200")
	before := testutil.ToFloat64(counter)

	handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected one 200 recorded, got %v", got)
	}
}
