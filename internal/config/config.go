package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const defaultTokenExpiry = 24 * time.Hour

var errMissingSecret = errors.New("JWT_SECRET is not set")

type Config struct {
	HTTPAddr    string
	JWTSecret   string
	TokenExpiry time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load reads configuration from the environment. JWT_SECRET is the only
// required variable; everything else has a local-development fallback.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errMissingSecret
	}

	expiry := defaultTokenExpiry
	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse JWT_EXPIRES_IN: %w", err)
		}
		expiry = parsed
	}

	return &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		JWTSecret:   secret,
		TokenExpiry: expiry,
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "erp_user"),
		DBPassword:  getEnv("DB_PASSWORD", "erp_pass"),
		DBName:      getEnv("DB_NAME", "erp_user_management"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
	}, nil
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSSLMode
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
