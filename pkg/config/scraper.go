package config

import "time"

// ScraperConfig holds upstream myMoment platform access settings.
type ScraperConfig struct {
	// BaseURL is the root of the myMoment platform.
	BaseURL string

	// RequestTimeout bounds every single HTTP request to the platform.
	RequestTimeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string
}

// DefaultScraperConfig returns the built-in scraper defaults.
func DefaultScraperConfig() *ScraperConfig {
	return &ScraperConfig{
		BaseURL:        "https://mymoment.phsz.ch",
		RequestTimeout: 30 * time.Second,
		UserAgent:      "yourMoment/1.0",
	}
}
