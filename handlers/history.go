// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/middleware"
	"github.com/danielhkuo/stock-count/models"
)

type HistoryHandler struct {
	history *count.History
}

func NewHistoryHandler(history *count.History) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// ListCounts handles GET /counts
// Optional query params: date=YYYY-MM-DD and tz=Area/City. The date is
// interpreted in tz, falling back to the server's configured zone.
func (h *HistoryHandler) ListCounts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var loc *time.Location
	if tz := query.Get("tz"); tz != "" {
		var err error
		if loc, err = time.LoadLocation(tz); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "tz must be an IANA time zone name")
			return
		}
	}

	var day *count.Day
	if raw := query.Get("date"); raw != "" {
		d, err := count.ParseDay(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
			return
		}
		day = &d
	}

	summaries, err := h.history.ListIn(r.Context(), day, loc)
	if err != nil {
		writeCountError(w, err)
		return
	}

	out := make([]models.ReconciliationSummary, len(summaries))
	for i, s := range summaries {
		out[i] = toSummary(s)
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}

// GetCount handles GET /counts/{id}
func (h *HistoryHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	rec, err := h.history.Get(r.Context(), id)
	if err != nil {
		writeCountError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toReconciliation(rec))
}
