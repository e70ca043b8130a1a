// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (remote client, manager, martd) via constructors.
  - Zero Hidden State: No global variables are used to store config.

One Config struct serves both executables: the storefront client reads the
MART_* keys, the development backend reads the MARTD_* keys.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the MVS Mart storefront.
type Config struct {

	// Storefront client settings
	APIBaseURL     string        `env:"MART_API_URL"         envDefault:"http://localhost:8080"`
	RequestTimeout time.Duration `env:"MART_REQUEST_TIMEOUT" envDefault:"10s"`

	// TokenPath is the file the session token is persisted to across runs.
	// Empty means "resolve under the user config directory at startup".
	TokenPath string `env:"MART_TOKEN_PATH"`

	// External postal-code lookup endpoint
	PincodeAPIURL string `env:"MART_PINCODE_URL" envDefault:"https://api.postalpincode.in"`

	// Payment gateway (test-mode credentials by default)
	GatewayKey    string `env:"MART_GATEWAY_KEY"    envDefault:"rzp_test_PQpPPFXZJbTl1J"`
	GatewaySecret string `env:"MART_GATEWAY_SECRET" envDefault:"dev-gateway-secret"`

	// Development backend (martd) settings
	ServerPort  string `env:"MARTD_PORT"       envDefault:"8080"`
	JWTSecret   string `env:"MARTD_JWT_SECRET" envDefault:"dev-only-signing-secret"`
	Environment string `env:"ENVIRONMENT"      envDefault:"development"`
	Debug       bool   `env:"DEBUG"            envDefault:"false"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Resolve the default token location lazily so the env package never
	// needs filesystem access during parsing.
	if cfg.TokenPath == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		cfg.TokenPath = filepath.Join(base, "mvsmart", "token")
	}

	return cfg, nil
}

// IsDevelopment reports whether the app is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
