// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, d Dialect) error {
	stmts, ok := schemas[d]
	if !ok {
		return fmt.Errorf("no schema for dialect %q", d)
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

var schemas = map[Dialect][]string{
	SQLite: {
		`CREATE TABLE IF NOT EXISTS product (
			id INTEGER PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS reconciliation (
			id TEXT PRIMARY KEY,
			counted_at TIMESTAMP NOT NULL,
			responsible TEXT NOT NULL,
			has_differences BOOLEAN NOT NULL,
			note TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reconciliation_counted_at ON reconciliation(counted_at)`,
		`CREATE TABLE IF NOT EXISTS reconciliation_detail (
			reconciliation_id TEXT NOT NULL REFERENCES reconciliation(id) ON DELETE CASCADE,
			line_no INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			code TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL,
			recorded_quantity INTEGER NOT NULL,
			physical_quantity INTEGER NOT NULL CHECK (physical_quantity >= 0),
			variance INTEGER NOT NULL,
			observation TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (reconciliation_id, line_no)
		)`,
	},
	Postgres: {
		`CREATE TABLE IF NOT EXISTS product (
			id BIGINT PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			stock BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS reconciliation (
			id TEXT PRIMARY KEY,
			counted_at TIMESTAMPTZ NOT NULL,
			responsible TEXT NOT NULL,
			has_differences BOOLEAN NOT NULL,
			note TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reconciliation_counted_at ON reconciliation(counted_at)`,
		`CREATE TABLE IF NOT EXISTS reconciliation_detail (
			reconciliation_id TEXT NOT NULL REFERENCES reconciliation(id) ON DELETE CASCADE,
			line_no INTEGER NOT NULL,
			product_id BIGINT NOT NULL,
			code TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL,
			recorded_quantity BIGINT NOT NULL,
			physical_quantity BIGINT NOT NULL CHECK (physical_quantity >= 0),
			variance BIGINT NOT NULL,
			observation TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (reconciliation_id, line_no)
		)`,
	},
	MySQL: {
		`CREATE TABLE IF NOT EXISTS product (
			id BIGINT PRIMARY KEY,
			code VARCHAR(64) NOT NULL UNIQUE,
			description VARCHAR(255) NOT NULL,
			category VARCHAR(128) NOT NULL DEFAULT '',
			stock BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS reconciliation (
			id CHAR(36) PRIMARY KEY,
			counted_at DATETIME(6) NOT NULL,
			responsible VARCHAR(128) NOT NULL,
			has_differences BOOLEAN NOT NULL,
			note TEXT,
			INDEX idx_reconciliation_counted_at (counted_at)
		)`,
		`CREATE TABLE IF NOT EXISTS reconciliation_detail (
			reconciliation_id CHAR(36) NOT NULL,
			line_no INT NOT NULL,
			product_id BIGINT NOT NULL,
			code VARCHAR(64) NOT NULL,
			description VARCHAR(255) NOT NULL,
			category VARCHAR(128) NOT NULL,
			recorded_quantity BIGINT NOT NULL,
			physical_quantity BIGINT NOT NULL CHECK (physical_quantity >= 0),
			variance BIGINT NOT NULL,
			observation TEXT NOT NULL,
			PRIMARY KEY (reconciliation_id, line_no),
			FOREIGN KEY (reconciliation_id) REFERENCES reconciliation(id) ON DELETE CASCADE
		)`,
	},
}
