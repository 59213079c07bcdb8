// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/stock-count/db"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("COUNT_TIMEZONE", "America/Lima")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != db.Postgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.Location.String() != "America/Lima" {
		t.Errorf("expected America/Lima, got %s", cfg.Location)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-t", "sqlite", "-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != db.SQLite {
		t.Errorf("CLI should override env: expected sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("COUNT_TIMEZONE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := ParseFlags([]string{"-d", "file:test.db", "-env-file", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != db.SQLite {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected text log format, got %s", cfg.LogFormat)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")

	cases := map[string][]string{
		"missing database":  {"-env-file", ""},
		"bad database type": {"-d", "x", "-t", "oracle", "-env-file", ""},
		"bad time zone":     {"-d", "x", "-tz", "Mars/Olympus", "-env-file", ""},
		"bad log format":    {"-d", "x", "-log-format", "xml", "-env-file", ""},
		"bad log level":     {"-d", "x", "-log-level", "loud", "-env-file", ""},
		"bad port":          {"-d", "x", "-p", "70000", "-env-file", ""},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseFlags(args); err == nil {
				t.Errorf("expected error for %v", args)
			}
		})
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("DATABASE_URL=file:from-env-file.db\nPORT=7001\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Existing environment wins over the file
	t.Setenv("PORT", "7002")
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseURL != "file:from-env-file.db" {
		t.Errorf("expected DATABASE_URL from env file, got %q", cfg.DatabaseURL)
	}
	if cfg.Port != 7002 {
		t.Errorf("expected existing PORT to win, got %d", cfg.Port)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
