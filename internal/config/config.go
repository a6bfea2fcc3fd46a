// Package config centralises configuration parsing for the time log service.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Config captures runtime configuration values for the time log service.
type Config struct {
	HTTPAddress string
	DBName      string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      int
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress: getEnv("HTTP_ADDRESS", ":8080"),
		DBName:      getEnv("DB_DATABASE", "timelog"),
		DBUser:      getEnv("DB_USER", "timelog"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBHost:      getEnv("DB_HOST", "127.0.0.1"),
		DBPort:      getIntEnv("DB_PORT", 5432),
	}
}

// PostgresURL renders the connection string consumed by pgx.
func (c Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
