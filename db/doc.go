// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and persistence
of stock snapshots and reconciliation records.

# Dialects

Three SQL backends are supported, selected by DATABASE_TYPE:

  - sqlite: modernc.org/sqlite (pure Go, default, used by tests)
  - postgres: github.com/lib/pq
  - mysql: github.com/go-sql-driver/mysql

Queries are written with ? placeholders and rebound for PostgreSQL:

	conn, err := db.Open(db.Postgres, dsn)
	err = db.CreateSchema(conn, db.Postgres)

Safe to call CreateSchema multiple times - uses IF NOT EXISTS for all tables.

# Tables

  - product: product references with recorded stock
  - reconciliation: one row per submitted count session
  - reconciliation_detail: one row per counted product, in count order

# Relationships

	reconciliation 1──* reconciliation_detail

Details are deleted with their record (ON DELETE CASCADE). Nothing in this
package updates a reconciliation after it is written.

# Store

Store implements count.SnapshotProvider and count.RecordStore:

	store := db.NewStore(conn, db.SQLite)
	session, err := count.Start(ctx, store, operator)

Timestamps are written in UTC. Database failures wrap
count.ErrStorageUnavailable; unknown record ids return count.ErrNotFound.
*/
package db
