package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(make([]byte, 32))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", testKey(t))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.Pipeline.TriggerInterval)
	assert.Equal(t, 2, cfg.Broker.WorkerCount)
	assert.Equal(t, "https://mymoment.phsz.ch", cfg.Scraper.BaseURL)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Len(t, cfg.EncryptionKey, 32)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", testKey(t))
	t.Setenv("TRIGGER_INTERVAL", "90s")
	t.Setenv("POSTING_DELAY", "5s")
	t.Setenv("MAX_POST_RETRIES", "5")
	t.Setenv("AI_COMMENT_PREFIX", "[Bot] ")
	t.Setenv("MYMOMENT_BASE_URL", "https://staging.mymoment.example")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Pipeline.TriggerInterval)
	assert.Equal(t, 5*time.Second, cfg.Pipeline.PostingDelay)
	assert.Equal(t, 5, cfg.Pipeline.MaxPostRetries)
	assert.Equal(t, "[Bot] ", cfg.Pipeline.CommentPrefix)
	assert.Equal(t, "https://staging.mymoment.example", cfg.Scraper.BaseURL)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoadMissingEncryptionKey(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredSetting)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"malformed duration", "TRIGGER_INTERVAL", "sixty seconds"},
		{"malformed int", "MAX_POST_RETRIES", "three"},
		{"key not base64", "ENCRYPTION_KEY", "not-base64!!"},
		{"key wrong length", "ENCRYPTION_KEY", base64.StdEncoding.EncodeToString(make([]byte, 16))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENCRYPTION_KEY", testKey(t))
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
