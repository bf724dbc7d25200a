package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return err
	}

	switch c.Updater.Provider {
	case "alpaca":
		if c.Alpaca.KeyID == "" || c.Alpaca.SecretKey == "" {
			return errors.New("alpaca.key_id and alpaca.secret_key are required for provider alpaca")
		}
	case "polygon":
		if c.Polygon.APIKey == "" {
			return errors.New("polygon.api_key is required for provider polygon")
		}
	default:
		return fmt.Errorf("updater.provider must be alpaca or polygon, got %q", c.Updater.Provider)
	}

	if c.Updater.PaceSeconds < 0 {
		return errors.New("updater.pace_seconds must be >= 0")
	}
	if c.Updater.MaxRetries < 1 {
		return errors.New("updater.max_retries must be >= 1")
	}
	if c.Updater.FlushThreshold < 1 {
		return errors.New("updater.flush_threshold must be >= 1")
	}

	return nil
}

func (db *DatabaseConfig) validate() error {
	if db.URL != "" {
		// A full connection string carries everything.
		return nil
	}
	if db.Host == "" {
		return errors.New("database.host is required")
	}
	if db.Name == "" {
		return errors.New("database.name is required")
	}
	if db.User == "" {
		return errors.New("database.user is required")
	}
	if db.Password == "" {
		return errors.New("database.password is required")
	}
	if db.MaxConns < 1 {
		return errors.New("database.max_conns must be >= 1")
	}
	if db.MinConns < 0 {
		return errors.New("database.min_conns must be >= 0")
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("database.min_conns (%d) cannot exceed max_conns (%d)", db.MinConns, db.MaxConns)
	}
	return nil
}
