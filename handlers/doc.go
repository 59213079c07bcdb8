// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the stock count API.

# Handler Types

Each handler is a struct over the count core and its storage:

  - InventoryHandler: the product snapshot with recorded stock
  - SessionHandler: the single active count (start, enter, submit, discard)
  - HistoryHandler: recorded counts by day and by id

	store := db.NewStore(conn, db.SQLite)
	sessionHandler := handlers.NewSessionHandler(store, count.NewGate(store))

# Count Flow

	POST /counts/session                             → StartSession
	PUT  /counts/session/lines/{product_id}/quantity → SetQuantity (null clears)
	PUT  /counts/session/lines/{product_id}/observation → SetObservation
	POST /counts/session/submit                      → SubmitSession

Submission answers 422 with the uncounted product ids, 409 with the
discrepant lines until the request carries confirm=true, 503 when the
record cannot be stored, and 201 with the record id otherwise. The
session survives every outcome except 201.

# Errors

Errors from the count package are mapped to status codes in one place,
writeCountError, so every handler answers the same failure the same way.
*/
package handlers
