package database_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/database"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	report, err := client.Health(ctx)
	require.NoError(t, err)
	assert.True(t, report.Reachable)
	assert.Greater(t, report.Pool.MaxOpen, 0)
}

// seedRecord creates one work record plus the minimal entity graph it
// depends on.
func seedRecord(t *testing.T, client *ent.Client, content string) *ent.WorkRecord {
	t.Helper()
	ctx := context.Background()

	user, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String() + "@example.ch").
		SetPasswordHash("x").
		Save(ctx)
	require.NoError(t, err)

	cred, err := client.UpstreamCredential.Create().
		SetID(uuid.New().String()).
		SetUserID(user.ID).
		SetDisplayName("Klasse 4a").
		SetUsername("klasse4a").
		SetPasswordEncrypted("token").
		Save(ctx)
	require.NoError(t, err)

	tmpl, err := client.PromptTemplate.Create().
		SetID(uuid.New().String()).
		SetOwnerUserID(user.ID).
		SetName("Standard").
		SetSystemPrompt("").
		SetUserPromptTemplate("{article_title}").
		Save(ctx)
	require.NoError(t, err)

	provider, err := client.LLMProviderConfig.Create().
		SetID(uuid.New().String()).
		SetUserID(user.ID).
		SetVendorTag("mistral").
		SetModelName("mistral-small-latest").
		SetAPIKeyEncrypted("token").
		Save(ctx)
	require.NoError(t, err)

	process, err := client.MonitoringProcess.Create().
		SetID(uuid.New().String()).
		SetUserID(user.ID).
		SetName("Test").
		SetLlmProviderID(provider.ID).
		SetMaxDurationMinutes(60).
		AddCredentialIDs(cred.ID).
		AddTemplateIDs(tmpl.ID).
		Save(ctx)
	require.NoError(t, err)

	record, err := client.WorkRecord.Create().
		SetID(uuid.New().String()).
		SetProcessID(process.ID).
		SetUserID(user.ID).
		SetCredentialID(cred.ID).
		SetTemplateID(tmpl.ID).
		SetLlmProviderID(provider.ID).
		SetUpstreamArticleID(uuid.New().String()).
		SetArticleTitle("Artikel").
		SetArticleContent(content).
		SetStatus(workrecord.StatusPrepared).
		Save(ctx)
	require.NoError(t, err)
	return record
}

func TestFullTextSearch(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	hund := seedRecord(t, client.Client, "Mein Hund spielt jeden Tag im Garten")
	katze := seedRecord(t, client.Client, "Die Katze schläft am liebsten auf dem Sofa")

	// The GIN index covers to_tsvector('german', article_content);
	// queries have to use the same configuration to hit it.
	search := func(query string) []string {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT record_id FROM work_records
			WHERE to_tsvector('german', COALESCE(article_content, '')) @@ to_tsquery('german', $1)`,
			query,
		)
		require.NoError(t, err)
		defer rows.Close()

		var ids []string
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			ids = append(ids, id)
		}
		require.NoError(t, rows.Err())
		return ids
	}

	results := search("Hund & Garten")
	assert.Equal(t, []string{hund.ID}, results)

	results = search("Katze")
	assert.Equal(t, []string{katze.ID}, results)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg database.Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg database.Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "yourmoment", cfg.User)
				assert.Equal(t, "yourmoment", cfg.Database)
				assert.Equal(t, 20, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg database.Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, "require", cfg.SSLMode)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Equal(t, 20, cfg.MaxIdleConns)
			},
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT": "invalid",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name: "invalid pool size",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "many",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := database.LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestHealthReport_JSON(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	report, err := client.Health(ctx)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.GreaterOrEqual(t, report.PingMs, int64(0))
	assert.Less(t, report.PingMs, int64(1000), "local ping should be under a second")

	jsonBytes, err := json.Marshal(report)
	require.NoError(t, err)

	var jsonData map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	// Durations serialize in milliseconds, not raw nanoseconds.
	pingMs, ok := jsonData["ping_ms"].(float64)
	require.True(t, ok, "ping_ms should be a number")
	assert.Less(t, pingMs, float64(1000000))

	pool, ok := jsonData["pool"].(map[string]any)
	require.True(t, ok, "pool stats are nested")
	waitMs, ok := pool["wait_ms"].(float64)
	require.True(t, ok, "wait_ms should be a number")
	assert.GreaterOrEqual(t, waitMs, float64(0))
}
