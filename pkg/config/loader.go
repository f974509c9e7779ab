package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Load builds the configuration from environment variables, falling
// back to built-in defaults for anything unset. The only variable
// without a default is ENCRYPTION_KEY; Load fails without it.
func Load() (*Config, error) {
	cfg := &Config{
		Pipeline:  DefaultPipelineConfig(),
		Broker:    DefaultBrokerConfig(),
		Scraper:   DefaultScraperConfig(),
		Retention: DefaultRetentionConfig(),
		HTTP:      DefaultHTTPConfig(),
	}

	var err error
	if err = applyEnv(cfg); err != nil {
		return nil, err
	}

	keyB64 := os.Getenv("ENCRYPTION_KEY")
	if keyB64 == "" {
		return nil, fmt.Errorf("%w: ENCRYPTION_KEY", ErrMissingRequiredSetting)
	}
	cfg.EncryptionKey, err = base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return nil, fmt.Errorf("ENCRYPTION_KEY is not valid base64: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	for _, d := range []struct {
		key string
		dst *time.Duration
	}{
		{"TRIGGER_INTERVAL", &cfg.Pipeline.TriggerInterval},
		{"TIMEOUT_INTERVAL", &cfg.Pipeline.TimeoutInterval},
		{"PREPARATION_DELAY", &cfg.Pipeline.PreparationDelay},
		{"POSTING_DELAY", &cfg.Pipeline.PostingDelay},
		{"BROKER_POLL_INTERVAL", &cfg.Broker.PollInterval},
		{"BROKER_TASK_TIMEOUT", &cfg.Broker.TaskTimeout},
		{"SCRAPER_REQUEST_TIMEOUT", &cfg.Scraper.RequestTimeout},
		{"CLEANUP_INTERVAL", &cfg.Retention.CleanupInterval},
	} {
		if err := envDuration(d.key, d.dst); err != nil {
			return err
		}
	}

	for _, n := range []struct {
		key string
		dst *int
	}{
		{"MAX_POST_RETRIES", &cfg.Pipeline.MaxPostRetries},
		{"MAX_PROCESSES_PER_USER", &cfg.Pipeline.MaxProcessesPerUser},
		{"BROKER_WORKER_COUNT", &cfg.Broker.WorkerCount},
		{"RECORD_RETENTION_DAYS", &cfg.Retention.RecordRetentionDays},
		{"HTTP_PORT", &cfg.HTTP.Port},
	} {
		if err := envInt(n.key, n.dst); err != nil {
			return err
		}
	}

	if v := os.Getenv("AI_COMMENT_PREFIX"); v != "" {
		cfg.Pipeline.CommentPrefix = v
	}
	if v := os.Getenv("MYMOMENT_BASE_URL"); v != "" {
		cfg.Scraper.BaseURL = v
	}
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
