package config

import "time"

// BrokerConfig contains broker and worker pool configuration.
// These values control how stage tasks are polled, claimed, and
// processed.
type BrokerConfig struct {
	// WorkerCount is the number of worker goroutines per queue.
	// Each worker independently polls and claims pending tasks.
	WorkerCount int

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// TaskTimeout is the maximum time a single stage task may run
	// before its context is cancelled.
	TaskTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// tasks to complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// StaleTaskThreshold is how long a started task may go without
	// finishing before the coordinator treats it as abandoned
	// (worker crash) and marks it failed.
	StaleTaskThreshold time.Duration
}

// DefaultBrokerConfig returns the built-in broker defaults.
func DefaultBrokerConfig() *BrokerConfig {
	return &BrokerConfig{
		WorkerCount:             2,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      250 * time.Millisecond,
		TaskTimeout:             10 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
		StaleTaskThreshold:      15 * time.Minute,
	}
}
