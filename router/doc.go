// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the stock count API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Inventory:

	GET /inventory - Products with recorded stock

Count session (one active at a time):

	POST   /counts/session                                  - Start a count
	GET    /counts/session                                  - Lines, variances and summary
	DELETE /counts/session                                  - Discard the count
	PUT    /counts/session/lines/{product_id}/quantity      - Enter or clear a physical quantity
	PUT    /counts/session/lines/{product_id}/observation   - Set a line note
	POST   /counts/session/submit                           - Record the count

History:

	GET /counts       - Summaries, optional ?date=YYYY-MM-DD&tz=Area/City
	GET /counts/{id}  - One record with details

Every API route is wrapped with request logging and Prometheus metrics.
The handlers share a single db.Store built from the connection and the
configured dialect.
*/
package router
