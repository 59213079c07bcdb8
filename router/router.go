// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/stock-count/cliparse"
	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/db"
	"github.com/danielhkuo/stock-count/handlers"
	"github.com/danielhkuo/stock-count/middleware"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	store := db.NewStore(conn, cfg.DatabaseType)

	// Initialize handlers
	inventoryHandler := handlers.NewInventoryHandler(store)
	sessionHandler := handlers.NewSessionHandler(store, count.NewGate(store))
	historyHandler := handlers.NewHistoryHandler(count.NewHistory(store, cfg.Location))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	// Inventory snapshot
	mux.HandleFunc("GET /inventory", wrap(inventoryHandler.GetInventory))

	// Active count session
	mux.HandleFunc("POST /counts/session", wrap(sessionHandler.StartSession))
	mux.HandleFunc("GET /counts/session", wrap(sessionHandler.GetSession))
	mux.HandleFunc("DELETE /counts/session", wrap(sessionHandler.DiscardSession))
	mux.HandleFunc("PUT /counts/session/lines/{product_id}/quantity", wrap(sessionHandler.SetQuantity))
	mux.HandleFunc("PUT /counts/session/lines/{product_id}/observation", wrap(sessionHandler.SetObservation))
	mux.HandleFunc("POST /counts/session/submit", wrap(sessionHandler.SubmitSession))

	// Recorded counts
	mux.HandleFunc("GET /counts", wrap(historyHandler.ListCounts))
	mux.HandleFunc("GET /counts/{id}", wrap(historyHandler.GetCount))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("stock-count API v1"))
	})

	return mux
}

func wrap(h http.HandlerFunc) http.HandlerFunc {
	return middleware.WithLogging(middleware.WithMetrics(h))
}
