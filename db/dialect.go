// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect selects the SQL flavour and driver.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
)

// ParseDialect accepts the DATABASE_TYPE values understood by the server.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	}
	return "", fmt.Errorf("unsupported database type %q (want sqlite, postgres or mysql)", s)
}

// Rebind rewrites ? placeholders into $N for PostgreSQL.
// Queries in this package never contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// Open connects using the driver for d. MySQL DSNs are forced to parse
// DATETIME columns as UTC time.Time values.
func Open(d Dialect, dsn string) (*sql.DB, error) {
	switch d {
	case MySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("invalid mysql DSN: %w", err)
		}
		cfg.ParseTime = true
		cfg.Loc = time.UTC
		dsn = cfg.FormatDSN()
	case SQLite, Postgres:
	default:
		return nil, fmt.Errorf("unsupported dialect %q", d)
	}

	conn, err := sql.Open(string(d), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d, err)
	}

	if d == SQLite {
		// One connection keeps :memory: databases shared and serialises writers.
		conn.SetMaxOpenConns(1)
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
	}

	return conn, nil
}
