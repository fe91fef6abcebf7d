// Package config loads advisor configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration for the advisor.
type Config struct {
	// DBPath is the SQLite catalog database. Empty means the default
	// ~/.advisor/advisor.db, resolved by the caller.
	DBPath string

	// Endpoint is the university backend base URL. Empty disables the
	// remote collaborators; the catalog then comes from SQLite and
	// registrations are recorded locally.
	Endpoint  string
	TimeoutMs int
	LogCalls  bool

	// Grid display parameters for the weekly timetable.
	GridUnitsPerHour float64
	GridDayStart     int // HHMM
	GridDayEnd       int // HHMM
}

// DefaultConfig returns the default configuration: local catalog, no
// backend, 08:00-17:00 grid at 50 units per hour.
func DefaultConfig() Config {
	return Config{
		TimeoutMs:        10000,
		GridUnitsPerHour: 50,
		GridDayStart:     800,
		GridDayEnd:       1700,
	}
}

// LoadConfig reads configuration from ADVISOR_* environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ADVISOR_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ADVISOR_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ADVISOR_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ADVISOR_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ADVISOR_GRID_UNITS_PER_HOUR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.GridUnitsPerHour = f
		}
	}
	if v := os.Getenv("ADVISOR_GRID_DAY_START"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 2359 {
			cfg.GridDayStart = n
		}
	}
	if v := os.Getenv("ADVISOR_GRID_DAY_END"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 2359 {
			cfg.GridDayEnd = n
		}
	}

	if cfg.GridDayEnd <= cfg.GridDayStart {
		cfg.GridDayStart = 800
		cfg.GridDayEnd = 1700
	}

	return cfg
}
