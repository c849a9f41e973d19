package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds CLI defaults taken from the environment.
type Config struct {
	LogLevel      string `validate:"oneof=trace debug info warn error fatal panic disabled" json:"log_level"`
	LogFormat     string `validate:"oneof=json pretty" json:"log_format"`
	Format        string `validate:"oneof=json yaml csv" json:"format"`
	Source        string `validate:"oneof=auto html xlsx csv" json:"source"`
	Sheet         string `json:"sheet"`
	TableSelector string `json:"table_selector"`
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is loaded if present.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		LogLevel:      getEnv("SCHEDGRID_LOG_LEVEL", "info"),
		LogFormat:     getEnv("SCHEDGRID_LOG_FORMAT", "pretty"),
		Format:        getEnv("SCHEDGRID_FORMAT", "json"),
		Source:        getEnv("SCHEDGRID_SOURCE", "auto"),
		Sheet:         getEnv("SCHEDGRID_SHEET", ""),
		TableSelector: getEnv("SCHEDGRID_TABLE_SELECTOR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
