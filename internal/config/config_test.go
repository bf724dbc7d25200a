package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "updater.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
database:
  host: localhost
  port: 5432
  name: prices
  user: updater
  password: secret
alpaca:
  key_id: AK123
  secret_key: SK456
updater:
  provider: alpaca
  pace_seconds: 1.5
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
	if cfg.Alpaca.KeyID != "AK123" {
		t.Errorf("Alpaca.KeyID = %q, want %q", cfg.Alpaca.KeyID, "AK123")
	}
	if cfg.Updater.PaceSeconds != 1.5 {
		t.Errorf("Updater.PaceSeconds = %v, want 1.5", cfg.Updater.PaceSeconds)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
database:
  host: localhost
  name: prices
  user: updater
  password: ${TEST_DB_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Password != "secret123" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "secret123")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/prices")
	t.Setenv("PACE_SECONDS", "0.25")

	yaml := `
database:
  host: ignored
updater:
  pace_seconds: 9
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.URL != "postgres://u:p@db:5432/prices" {
		t.Errorf("Database.URL = %q, want env override", cfg.Database.URL)
	}
	if cfg.Updater.PaceSeconds != 0.25 {
		t.Errorf("Updater.PaceSeconds = %v, want 0.25", cfg.Updater.PaceSeconds)
	}
}

func TestLoadRejectsBadPaceOverride(t *testing.T) {
	t.Setenv("PACE_SECONDS", "fast")

	path := writeTempFile(t, "updater:\n  pace_seconds: 2\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load should fail on an unparsable PACE_SECONDS override")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
database:
  host: localhost
  name: prices
  user: updater
  password: secret
alpaca:
  key_id: AK
  secret_key: SK
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Updater.Provider != DefaultProvider {
		t.Errorf("Updater.Provider = %q, want default %q", cfg.Updater.Provider, DefaultProvider)
	}
	if cfg.Updater.PaceSeconds != DefaultPaceSeconds {
		t.Errorf("Updater.PaceSeconds = %v, want default %v", cfg.Updater.PaceSeconds, DefaultPaceSeconds)
	}
	if cfg.Updater.MaxRetries != DefaultMaxRetries {
		t.Errorf("Updater.MaxRetries = %d, want default %d", cfg.Updater.MaxRetries, DefaultMaxRetries)
	}
	if cfg.Updater.FlushThreshold != DefaultFlushThreshold {
		t.Errorf("Updater.FlushThreshold = %d, want default %d", cfg.Updater.FlushThreshold, DefaultFlushThreshold)
	}
	if cfg.Database.Port != DefaultDBPort {
		t.Errorf("Database.Port = %d, want default %d", cfg.Database.Port, DefaultDBPort)
	}
	if cfg.Database.SSLMode != DefaultDBSSLMode {
		t.Errorf("Database.SSLMode = %q, want default %q", cfg.Database.SSLMode, DefaultDBSSLMode)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{
				Host: "localhost", Name: "prices", User: "u", Password: "p",
				MaxConns: 10, MinConns: 2,
			},
			Alpaca:  AlpacaConfig{KeyID: "AK", SecretKey: "SK"},
			Updater: UpdaterConfig{Provider: "alpaca", PaceSeconds: 2, MaxRetries: 4, FlushThreshold: 10000},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("url replaces field validation", func(t *testing.T) {
		cfg := valid()
		cfg.Database = DatabaseConfig{URL: "postgres://u:p@h/db"}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate failed with URL set: %v", err)
		}
	})

	t.Run("missing database host", func(t *testing.T) {
		cfg := valid()
		cfg.Database.Host = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate should fail without database.host")
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := valid()
		cfg.Updater.Provider = "yahoo"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate should fail for unknown provider")
		}
	})

	t.Run("missing alpaca credentials", func(t *testing.T) {
		cfg := valid()
		cfg.Alpaca.SecretKey = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate should fail without alpaca credentials")
		}
	})

	t.Run("polygon provider needs api key", func(t *testing.T) {
		cfg := valid()
		cfg.Updater.Provider = "polygon"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate should fail without polygon.api_key")
		}
		cfg.Polygon.APIKey = "pk"
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate failed: %v", err)
		}
	})

	t.Run("min conns above max", func(t *testing.T) {
		cfg := valid()
		cfg.Database.MinConns = 20
		if err := cfg.Validate(); err == nil {
			t.Error("Validate should fail when min_conns > max_conns")
		}
	})
}
