package config

import (
	"os"
	"strings"
)

// FromEnv takes a *Config as it will respect initial config that has been
// provided by other means (e.g. a config file) and will only extend those
// that are set
func FromEnv(config *Config) error {
	if enabled(os.Getenv("DEBUG")) {
		config.Debug = true
	}

	if v := os.Getenv("LISTEN_ADDRESS"); v != "" {
		config.ListenAddress = v
	}

	if v := os.Getenv("PERSISTENCE_DATA_PATH"); v != "" {
		config.Persistence.DataPath = v
	}

	if v := os.Getenv("ORIGIN"); v != "" {
		config.Origin = v
	}

	if enabled(os.Getenv("MONITORING_ENABLED")) {
		config.Monitoring.Enabled = true
	}

	if v := os.Getenv("CORS_ALLOW_ORIGIN"); v != "" {
		config.CORS.AllowOrigin = v
	}

	if v := os.Getenv("CORS_ALLOW_METHODS"); v != "" {
		config.CORS.AllowMethods = v
	}

	if v := os.Getenv("CORS_ALLOW_HEADERS"); v != "" {
		config.CORS.AllowHeaders = v
	}

	return nil
}

func enabled(value string) bool {
	if value == "" {
		return false
	}

	switch strings.ToLower(value) {
	case "on", "enabled", "1", "true":
		return true
	default:
		return false
	}
}
