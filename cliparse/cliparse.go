// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/stock-count/db"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType db.Dialect
	// Location is the default viewer time zone for history date filters
	Location  *time.Location
	LogLevel  slog.Level
	LogFormat string
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and falls back to the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var dbType, tz, logLevel, envFile string

	fs := flag.NewFlagSet("stock-count", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&dbType, "t", "", "Database type (sqlite, postgres or mysql)")
	fs.StringVar(&tz, "tz", "", "Default time zone for history date filters")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")
	fs.StringVar(&envFile, "env-file", ".env", "Optional dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := LoadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if dbType == "" {
		dbType = os.Getenv("DATABASE_TYPE")
		if dbType == "" {
			dbType = "sqlite"
		}
	}
	dialect, err := db.ParseDialect(dbType)
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseType = dialect

	if tz == "" {
		tz = os.Getenv("COUNT_TIMEZONE")
	}
	if tz == "" {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("invalid time zone %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid log format %q (want text or json)", cfg.LogFormat)
	}

	return cfg, nil
}

// Logger builds the slog logger described by the config
func (c Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
