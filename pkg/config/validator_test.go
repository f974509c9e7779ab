package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Pipeline:      DefaultPipelineConfig(),
		Broker:        DefaultBrokerConfig(),
		Scraper:       DefaultScraperConfig(),
		Retention:     DefaultRetentionConfig(),
		HTTP:          DefaultHTTPConfig(),
		EncryptionKey: make([]byte, 32),
	}
}

func TestDefaultPipelineConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()

	assert.Equal(t, 60*time.Second, cfg.TriggerInterval)
	assert.Equal(t, 30*time.Second, cfg.TimeoutInterval)
	assert.Equal(t, 2*time.Second, cfg.PreparationDelay)
	assert.Equal(t, 30*time.Second, cfg.PostingDelay)
	assert.Equal(t, 3, cfg.MaxPostRetries)
	assert.Equal(t, 10, cfg.MaxProcessesPerUser)
	assert.Equal(t, DefaultCommentPrefix, cfg.CommentPrefix)
}

func TestDefaultBrokerConfig(t *testing.T) {
	cfg := DefaultBrokerConfig()

	assert.Equal(t, 2, cfg.WorkerCount)
	assert.Equal(t, 1*time.Second, cfg.PollInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.PollIntervalJitter)
	assert.Equal(t, 10*time.Minute, cfg.TaskTimeout)
	assert.Equal(t, 30*time.Second, cfg.GracefulShutdownTimeout)
	assert.Equal(t, 15*time.Minute, cfg.StaleTaskThreshold)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "nil pipeline",
			mutate:  func(c *Config) { c.Pipeline = nil },
			wantErr: true,
			errMsg:  "pipeline configuration is nil",
		},
		{
			name:    "trigger interval zero",
			mutate:  func(c *Config) { c.Pipeline.TriggerInterval = 0 },
			wantErr: true,
			errMsg:  "trigger_interval",
		},
		{
			name:    "timeout interval negative",
			mutate:  func(c *Config) { c.Pipeline.TimeoutInterval = -time.Second },
			wantErr: true,
			errMsg:  "timeout_interval",
		},
		{
			name:    "zero preparation delay is valid",
			mutate:  func(c *Config) { c.Pipeline.PreparationDelay = 0 },
			wantErr: false,
		},
		{
			name:    "max processes per user zero",
			mutate:  func(c *Config) { c.Pipeline.MaxProcessesPerUser = 0 },
			wantErr: true,
			errMsg:  "max_processes_per_user",
		},
		{
			name:    "empty comment prefix",
			mutate:  func(c *Config) { c.Pipeline.CommentPrefix = "" },
			wantErr: true,
			errMsg:  "comment_prefix",
		},
		{
			name:    "worker count too low",
			mutate:  func(c *Config) { c.Broker.WorkerCount = 0 },
			wantErr: true,
			errMsg:  "worker_count",
		},
		{
			name:    "worker count too high",
			mutate:  func(c *Config) { c.Broker.WorkerCount = 51 },
			wantErr: true,
			errMsg:  "worker_count",
		},
		{
			name:    "jitter equal to poll interval",
			mutate:  func(c *Config) { c.Broker.PollIntervalJitter = c.Broker.PollInterval },
			wantErr: true,
			errMsg:  "poll_interval_jitter",
		},
		{
			name: "stale threshold below task timeout",
			mutate: func(c *Config) {
				c.Broker.TaskTimeout = 10 * time.Minute
				c.Broker.StaleTaskThreshold = 5 * time.Minute
			},
			wantErr: true,
			errMsg:  "stale_task_threshold",
		},
		{
			name:    "relative scraper base URL",
			mutate:  func(c *Config) { c.Scraper.BaseURL = "/mymoment" },
			wantErr: true,
			errMsg:  "base_url",
		},
		{
			name:    "retention days zero",
			mutate:  func(c *Config) { c.Retention.RecordRetentionDays = 0 },
			wantErr: true,
			errMsg:  "record_retention_days",
		},
		{
			name:    "http port out of range",
			mutate:  func(c *Config) { c.HTTP.Port = 70000 },
			wantErr: true,
			errMsg:  "port",
		},
		{
			name:    "short encryption key",
			mutate:  func(c *Config) { c.EncryptionKey = make([]byte, 16) },
			wantErr: true,
			errMsg:  "encryption_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
