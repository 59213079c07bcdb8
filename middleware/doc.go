// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging logs request start and completion with slog, tagging both
lines with a request ID (taken from X-Request-ID or generated):

	mux.HandleFunc("GET /counts", middleware.WithLogging(h.List))

# Metrics

WithMetrics records Prometheus counters and latency histograms labelled by
the ServeMux pattern that matched:

	stockcount_http_requests_total{method, route, status}
	stockcount_http_request_duration_seconds{method, route}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "reconciliation record not found")
	err := middleware.ParseJSONBody(r, &req)

ParseJSONBody rejects unknown fields.

# CORS

CORS reflects the request origin so the browser front end can call the API
from another host.

# Client IP

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
