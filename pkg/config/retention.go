package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// RecordRetentionDays is how many days to keep work records of
	// finished processes before deleting them.
	RecordRetentionDays int

	// TaskTTL is the maximum age of finished stage task rows before
	// deletion. Per-process cleanup handles the normal case; this is
	// a safety net for rows whose process row is already gone.
	TaskTTL time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RecordRetentionDays: 365,
		TaskTTL:             24 * time.Hour,
		CleanupInterval:     12 * time.Hour,
	}
}
