// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/middleware"
	"github.com/danielhkuo/stock-count/models"
)

type InventoryHandler struct {
	provider count.SnapshotProvider
}

func NewInventoryHandler(provider count.SnapshotProvider) *InventoryHandler {
	return &InventoryHandler{provider: provider}
}

// GetInventory handles GET /inventory
// Returns every product with its recorded stock, in count order
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.provider.Snapshot(r.Context())
	if err != nil {
		writeCountError(w, err)
		return
	}

	products := make([]models.Product, len(snapshot))
	for i, p := range snapshot {
		products[i] = toProduct(p)
	}

	middleware.JSONResponse(w, http.StatusOK, products)
}
