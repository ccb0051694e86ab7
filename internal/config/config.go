package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type AppConfig struct {
	// Env selects the logger setup: "dev" or "prod".
	Env string `validate:"oneof=dev prod"`

	LogLevel string `validate:"oneof=debug info warn error"`

	// ScriptPath is an optional YAML measurement script. Empty means the built-in one.
	ScriptPath string `validate:"omitempty,file"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.Env = strings.ToLower(getenvDefault("APP_ENV", "prod"))
	cfg.LogLevel = strings.ToLower(getenvDefault("LOG_LEVEL", "warn"))
	cfg.ScriptPath = os.Getenv("WEATHER_SCRIPT")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
