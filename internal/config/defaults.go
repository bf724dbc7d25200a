package config

// Default values for optional configuration fields.
const (
	DefaultProvider       = "alpaca"
	DefaultPaceSeconds    = 2.0
	DefaultMaxRetries     = 4
	DefaultFlushThreshold = 10000
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultMaxConns       = 10
	DefaultMinConns       = 2
	DefaultLogLevel       = "info"
)

func (c *Config) applyDefaults() {
	// Updater defaults
	if c.Updater.Provider == "" {
		c.Updater.Provider = DefaultProvider
	}
	if c.Updater.PaceSeconds == 0 {
		c.Updater.PaceSeconds = DefaultPaceSeconds
	}
	if c.Updater.MaxRetries == 0 {
		c.Updater.MaxRetries = DefaultMaxRetries
	}
	if c.Updater.FlushThreshold == 0 {
		c.Updater.FlushThreshold = DefaultFlushThreshold
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
