// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (required)
  - DatabaseType: sqlite, postgres or mysql (default: sqlite)
  - Location: default viewer time zone for history date filters (default: Local)
  - LogLevel, LogFormat: slog handler settings (default: info, text)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-tz          IANA time zone name, e.g. America/Lima
	-log-level   debug, info, warn or error
	-log-format  text or json
	-env-file    dotenv file to load first (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	COUNT_TIMEZONE → -tz
	LOG_LEVEL      → -log-level
	LOG_FORMAT     → -log-format

CLI flags take precedence over environment variables, and variables already
present in the environment take precedence over the dotenv file.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(cfg.Logger())

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
