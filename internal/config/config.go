package config

import (
	"os"

	"commtrack/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds source-table settings. TargetRep is the single
// representative identity the pipeline filters for; the API exposes no
// parameter to change it per request.
type DataConfig struct {
	SheetFile string
	TargetRep string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	sheetFile := os.Getenv("SHEET_FILE")
	if sheetFile == "" {
		return nil, errors.ConfigInvalid("SHEET_FILE is required")
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			SheetFile: sheetFile,
			TargetRep: getEnvOrDefault("TARGET_REP", "Mata"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
