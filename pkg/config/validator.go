package config

import (
	"fmt"
	"net/url"
)

// Validator checks a Config for internal consistency.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate runs all section validators and returns the first failure.
func (v *Validator) Validate() error {
	for _, check := range []func() error{
		v.validatePipeline,
		v.validateBroker,
		v.validateScraper,
		v.validateRetention,
		v.validateHTTP,
		v.validateEncryptionKey,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validatePipeline() error {
	p := v.cfg.Pipeline
	if p == nil {
		return fmt.Errorf("pipeline configuration is nil")
	}
	if p.TriggerInterval <= 0 {
		return NewValidationError("pipeline", "trigger_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.TimeoutInterval <= 0 {
		return NewValidationError("pipeline", "timeout_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if p.PreparationDelay < 0 {
		return NewValidationError("pipeline", "preparation_delay",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if p.PostingDelay < 0 {
		return NewValidationError("pipeline", "posting_delay",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if p.MaxPostRetries < 0 {
		return NewValidationError("pipeline", "max_post_retries",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if p.MaxProcessesPerUser < 1 {
		return NewValidationError("pipeline", "max_processes_per_user",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if p.CommentPrefix == "" {
		return NewValidationError("pipeline", "comment_prefix",
			fmt.Errorf("%w: must not be empty", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateBroker() error {
	b := v.cfg.Broker
	if b == nil {
		return fmt.Errorf("broker configuration is nil")
	}
	if b.WorkerCount < 1 || b.WorkerCount > 50 {
		return NewValidationError("broker", "worker_count",
			fmt.Errorf("%w: must be between 1 and 50", ErrInvalidValue))
	}
	if b.PollInterval <= 0 {
		return NewValidationError("broker", "poll_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if b.PollIntervalJitter < 0 {
		return NewValidationError("broker", "poll_interval_jitter",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if b.PollIntervalJitter >= b.PollInterval {
		return NewValidationError("broker", "poll_interval_jitter",
			fmt.Errorf("%w: must be less than poll_interval", ErrInvalidValue))
	}
	if b.TaskTimeout <= 0 {
		return NewValidationError("broker", "task_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if b.GracefulShutdownTimeout <= 0 {
		return NewValidationError("broker", "graceful_shutdown_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if b.StaleTaskThreshold <= b.TaskTimeout {
		return NewValidationError("broker", "stale_task_threshold",
			fmt.Errorf("%w: must be greater than task_timeout", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateScraper() error {
	s := v.cfg.Scraper
	if s == nil {
		return fmt.Errorf("scraper configuration is nil")
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return NewValidationError("scraper", "base_url",
			fmt.Errorf("%w: must be an absolute URL", ErrInvalidValue))
	}
	if s.RequestTimeout <= 0 {
		return NewValidationError("scraper", "request_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateRetention() error {
	r := v.cfg.Retention
	if r == nil {
		return fmt.Errorf("retention configuration is nil")
	}
	if r.RecordRetentionDays < 1 {
		return NewValidationError("retention", "record_retention_days",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if r.TaskTTL <= 0 {
		return NewValidationError("retention", "task_ttl",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateHTTP() error {
	h := v.cfg.HTTP
	if h == nil {
		return fmt.Errorf("http configuration is nil")
	}
	if h.Port < 1 || h.Port > 65535 {
		return NewValidationError("http", "port",
			fmt.Errorf("%w: must be between 1 and 65535", ErrInvalidValue))
	}
	if h.ShutdownTimeout <= 0 {
		return NewValidationError("http", "shutdown_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateEncryptionKey() error {
	if len(v.cfg.EncryptionKey) != 32 {
		return NewValidationError("crypto", "encryption_key",
			fmt.Errorf("%w: must be exactly 32 bytes, got %d", ErrInvalidValue, len(v.cfg.EncryptionKey)))
	}
	return nil
}
