// Package config reads service configuration from flags and environment variables.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseURL   string `env:"DATABASE_URL"`
	LogLevel      string `env:"LOG_LEVEL"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// VAPID key pair for browser push delivery. Push is disabled when empty.
	VAPIDPublicKey  string `env:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey string `env:"VAPID_PRIVATE_KEY"`
	VAPIDSubject    string `env:"VAPID_SUBJECT"`
}

// Parse reads configuration from environment variables with flag fallbacks.
// Environment values win over flags, flags over defaults.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURL := cfg.DatabaseURL

	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURL, "d", "", "database connection string")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURL != "" {
		cfg.DatabaseURL = envDatabaseURL
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = ":8080"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@velodesk.local"
	}
	if cfg.VAPIDSubject == "" {
		cfg.VAPIDSubject = "mailto:admin@velodesk.local"
	}

	return cfg, nil
}
