package config

import (
	"fmt"
	"os"
)

// Config holds all environment-driven settings for the API server.
type Config struct {
	DatabaseURL  string
	Port         string
	JWTSecret    string
	GeminiAPIKey string
	UploadDir    string
}

// Load reads configuration from the environment. DATABASE_URL and JWT_SECRET
// are required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Port:         os.Getenv("APP_PORT"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		UploadDir:    os.Getenv("UPLOAD_DIR"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	return cfg, nil
}
