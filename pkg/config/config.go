// Package config loads and validates application configuration from
// environment variables. All settings carry built-in defaults so the
// service starts with nothing but database credentials and an
// encryption key set.
package config

// Config is the umbrella configuration object returned by Load()
// and passed to the components that need it.
type Config struct {
	// Pipeline timing and limits for monitoring processes.
	Pipeline *PipelineConfig

	// Broker and worker pool configuration.
	Broker *BrokerConfig

	// Upstream myMoment platform access.
	Scraper *ScraperConfig

	// Data retention and cleanup behavior.
	Retention *RetentionConfig

	// HTTP API server settings.
	HTTP *HTTPConfig

	// EncryptionKey is the 32-byte AES-256-GCM key protecting stored
	// credentials and API keys, decoded from base64.
	EncryptionKey []byte
}

// Validate checks the full configuration for consistency.
func (c *Config) Validate() error {
	return NewValidator(c).Validate()
}
