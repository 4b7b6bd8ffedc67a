// Package config loads application settings from a .env file and environment
// variables. Environment variables always take precedence over .env values,
// and CLI flags override both.
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// BaseURL is the root of the ndr-print plugin serving results pages.
	BaseURL string
	// AgendaURL is the agenda page used for event discovery.
	AgendaURL string
	// FetchTimeout bounds one results-page fetch.
	FetchTimeout time.Duration
	// OutputDir receives the events/results/errors CSV files.
	OutputDir string
	Debug     bool
}

// Load reads configuration from a .env file (if present) and then from
// environment variables.
func Load() *Config {
	// Silently load .env; absent is fine, real deployments use env vars.
	if err := godotenv.Load(); err == nil {
		log.Println("config: loaded settings from .env")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("NDR_BASE_URL", "https://ndr.nl/wp-content/plugins/ndr")
	v.SetDefault("NDR_AGENDA_URL", "https://ndr.nl/selectieproeven/")
	v.SetDefault("NDR_TIMEOUT_SECONDS", 120)
	v.SetDefault("NDR_OUTPUT_DIR", ".")
	v.SetDefault("DEBUG", false)

	return &Config{
		BaseURL:      v.GetString("NDR_BASE_URL"),
		AgendaURL:    v.GetString("NDR_AGENDA_URL"),
		FetchTimeout: time.Duration(v.GetInt("NDR_TIMEOUT_SECONDS")) * time.Second,
		OutputDir:    v.GetString("NDR_OUTPUT_DIR"),
		Debug:        v.GetBool("DEBUG"),
	}
}
