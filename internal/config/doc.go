// Package config loads and validates the updater configuration.
//
// Configuration comes from a YAML file with ${VAR} environment expansion.
// Two environment variables override file values directly:
//   - DATABASE_URL: full postgres connection string
//   - PACE_SECONDS: base pacing between provider fetches (fractional seconds)
package config
