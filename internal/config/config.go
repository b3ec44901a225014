package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mtlprog/clinicsite/internal/domain"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultLayout serves every page under its own path.
	DefaultLayout = string(domain.LayoutMulti)

	// DefaultRateLimit is the number of requests per minute allowed per client IP.
	DefaultRateLimit = 120

	// DefaultExportDir is where the export command writes the static site.
	DefaultExportDir = "dist"
)

// LoadEnvFile loads variables from path into the process environment.
// Variables already set are not overridden. An empty path is a no-op.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("env file %s not found: %w", path, err)
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}

// LoadClinic reads the clinic settings from the environment and validates them.
// A missing required value yields a *domain.MissingConfigurationError.
func LoadClinic() (domain.ClinicConfig, error) {
	var cfg domain.ClinicConfig
	if err := env.Parse(&cfg); err != nil {
		return domain.ClinicConfig{}, fmt.Errorf("parse clinic env: %w", err)
	}

	return Validate(cfg)
}
