package config

// Config is the root configuration for an updater instance.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Alpaca   AlpacaConfig   `yaml:"alpaca"`
	Polygon  PolygonConfig  `yaml:"polygon"`
	Updater  UpdaterConfig  `yaml:"updater"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds the Postgres connection. URL, when set, wins over the
// individual fields.
type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// AlpacaConfig holds the Alpaca Market Data credential pair.
type AlpacaConfig struct {
	KeyID     string `yaml:"key_id"`     // APCA-API-KEY-ID header
	SecretKey string `yaml:"secret_key"` // APCA-API-SECRET-KEY header
	BaseURL   string `yaml:"base_url"`
}

// PolygonConfig holds the Polygon REST API key.
type PolygonConfig struct {
	APIKey string `yaml:"api_key"`
}

// UpdaterConfig holds run-loop settings.
type UpdaterConfig struct {
	// Provider selects the fetch source: "alpaca" or "polygon".
	Provider string `yaml:"provider"`

	// PaceSeconds is the base pacing between provider fetches, fractional
	// seconds. Jitter in [0,1)s is added per attempt.
	PaceSeconds float64 `yaml:"pace_seconds"`

	MaxRetries     int `yaml:"max_retries"`
	FlushThreshold int `yaml:"flush_threshold"`
}

// ScheduleConfig selects run-once (empty) or cron daemon mode.
type ScheduleConfig struct {
	Cron string `yaml:"cron"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
