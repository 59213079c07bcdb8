// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/middleware"
	"github.com/danielhkuo/stock-count/models"
)

// writeCountError maps core errors onto HTTP responses
func writeCountError(w http.ResponseWriter, err error) {
	var incomplete *count.IncompleteCountError
	switch {
	case errors.As(err, &incomplete):
		missing := make([]int64, len(incomplete.Missing))
		for i, id := range incomplete.Missing {
			missing[i] = int64(id)
		}
		middleware.JSONResponse(w, http.StatusUnprocessableEntity, models.IncompleteCountResponse{
			Error:   http.StatusText(http.StatusUnprocessableEntity),
			Message: "Every product must be counted before submitting",
			Missing: missing,
		})
	case errors.Is(err, count.ErrEmptySnapshot):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "There are no products to count")
	case errors.Is(err, count.ErrInvalidSnapshot):
		slog.Error("snapshot rejected", "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, count.ErrUnknownProduct):
		middleware.ErrorResponse(w, http.StatusNotFound, "Product is not part of the count")
	case errors.Is(err, count.ErrInvalidQuantity):
		middleware.ErrorResponse(w, http.StatusBadRequest, "physical_quantity must be a non-negative integer")
	case errors.Is(err, count.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Count not found")
	case errors.Is(err, count.ErrStorageUnavailable):
		slog.Error("storage unavailable", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage unavailable, try again")
	default:
		slog.Error("unexpected error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
