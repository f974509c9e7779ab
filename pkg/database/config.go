package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadConfigFromEnv assembles the database configuration from DB_*
// environment variables, falling back to local-dev defaults. A numeric
// variable that does not parse is an error, not a silent default.
func LoadConfigFromEnv() (Config, error) {
	port, err := envInt("DB_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	maxOpen, err := envInt("DB_MAX_OPEN_CONNS", 20)
	if err != nil {
		return Config{}, err
	}
	maxIdle, err := envInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Host:            envString("DB_HOST", "localhost"),
		Port:            port,
		User:            envString("DB_USER", "yourmoment"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        envString("DB_NAME", "yourmoment"),
		SSLMode:         envString("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
