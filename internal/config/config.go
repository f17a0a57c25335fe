package config

import (
	"fmt"
	"os"
)

// DefaultMockUserID is the placeholder acting user used outside production
// when no real session or token is presented.
const DefaultMockUserID = "test-user-123"

type Config struct {
	Port        string
	DatabaseURL string
	Environment string
	JWTSecret   string
	MockUserID  string
	StaticDir   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		StaticDir:   getEnvWithDefault("STATIC_DIR", "./dist/public"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// mock auth is only available outside production
	if !cfg.IsProduction() {
		cfg.MockUserID = getEnvWithDefault("MOCK_USER_ID", DefaultMockUserID)
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
