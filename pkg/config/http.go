package config

import "time"

// HTTPConfig holds HTTP API server settings.
type HTTPConfig struct {
	// Port the REST API listens on.
	Port int

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// ShutdownTimeout is the max time to wait for in-flight requests
	// during graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultHTTPConfig returns the built-in HTTP server defaults.
func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Port:            8080,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}
