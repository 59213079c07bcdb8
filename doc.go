// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the stock count API server.

A stock count compares the quantity the system has on record for each
product against what an operator physically counts on the shelf. The
server holds one count at a time, shows the variance of every line as it
is entered, refuses to record a count with uncounted products, asks for
confirmation when any line differs, and keeps every recorded count as an
immutable history entry.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=stockcount.db go run main.go

Or with flags:

	go run main.go -p 3318 -t postgres -d "postgres://..."

Variables may also live in a .env file next to the binary (see -env-file).

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string or SQLite file path

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or mysql (default: sqlite)
  - COUNT_TIMEZONE (-tz): Zone used for history date filters (default: local)
  - LOG_LEVEL (-log-level): debug, info, warn or error
  - LOG_FORMAT (-log-format): text or json

# Architecture

  - count: Sessions, variance, the submission gate and history queries
  - db: Dialects, schema and the SQL store
  - handlers: HTTP request handlers (inventory, session, history)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - models: Request/response types and validation
  - cliparse: Configuration parsing
  - client, cmd/stockcount: HTTP client and command line front end

See package documentation for each component.
*/
package main
