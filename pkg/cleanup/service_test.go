package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/broker"
	"github.com/yourmoment/yourmoment/pkg/config"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

// fixtures holds the minimum entity graph a work record needs.
type fixtures struct {
	userID       string
	credentialID string
	templateID   string
	providerID   string
	processID    string
}

func createFixtures(t *testing.T, client *ent.Client, processStatus monitoringprocess.Status) fixtures {
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
		SetStatus(processStatus).
		AddCredentialIDs(cred.ID).
		AddTemplateIDs(tmpl.ID).
		Save(ctx)
	require.NoError(t, err)

	return fixtures{
		userID:       user.ID,
		credentialID: cred.ID,
		templateID:   tmpl.ID,
		providerID:   provider.ID,
		processID:    process.ID,
	}
}

func createRecord(t *testing.T, client *ent.Client, f fixtures, articleID string, age time.Duration) *ent.WorkRecord {
	t.Helper()

	record, err := client.WorkRecord.Create().
		SetID(uuid.New().String()).
		SetProcessID(f.processID).
		SetUserID(f.userID).
		SetCredentialID(f.credentialID).
		SetTemplateID(f.templateID).
		SetLlmProviderID(f.providerID).
		SetUpstreamArticleID(articleID).
		SetArticleTitle("Artikel").
		SetStatus(workrecord.StatusPosted).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return record
}

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		RecordRetentionDays: 365,
		TaskTTL:             24 * time.Hour,
		CleanupInterval:     time.Hour,
	}
}

func TestService_DeletesOldRecordsOfFinishedProcesses(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	f := createFixtures(t, client.Client, monitoringprocess.StatusStopped)
	old := createRecord(t, client.Client, f, "a1", 400*24*time.Hour)
	recent := createRecord(t, client.Client, f, "a2", time.Hour)

	svc := NewService(testRetentionConfig(), client.Client, broker.New(client.Client))
	svc.runAll(ctx)

	_, err := client.WorkRecord.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err), "old record should be deleted")

	_, err = client.WorkRecord.Get(ctx, recent.ID)
	assert.NoError(t, err, "recent record should be preserved")
}

func TestService_PreservesRecordsOfRunningProcesses(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	f := createFixtures(t, client.Client, monitoringprocess.StatusRunning)
	old := createRecord(t, client.Client, f, "a1", 400*24*time.Hour)

	svc := NewService(testRetentionConfig(), client.Client, broker.New(client.Client))
	svc.runAll(ctx)

	_, err := client.WorkRecord.Get(ctx, old.ID)
	assert.NoError(t, err, "records of a running process are never touched")
}

func TestService_DeletesFinishedStageTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	f := createFixtures(t, client.Client, monitoringprocess.StatusStopped)

	oldTask, err := client.StageTask.Create().
		SetID(uuid.New().String()).
		SetQueue(stagetask.QueueDiscovery).
		SetProcessID(f.processID).
		SetStatus(stagetask.StatusSuccess).
		SetEnqueuedAt(time.Now().Add(-48 * time.Hour)).
		SetFinishedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	pendingTask, err := client.StageTask.Create().
		SetID(uuid.New().String()).
		SetQueue(stagetask.QueueDiscovery).
		SetProcessID(f.processID).
		SetStatus(stagetask.StatusPending).
		SetEnqueuedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(testRetentionConfig(), client.Client, broker.New(client.Client))
	svc.runAll(ctx)

	_, err = client.StageTask.Get(ctx, oldTask.ID)
	assert.True(t, ent.IsNotFound(err), "finished task past TTL should be deleted")

	_, err = client.StageTask.Get(ctx, pendingTask.ID)
	assert.NoError(t, err, "in-flight tasks are never deleted by retention")
}
