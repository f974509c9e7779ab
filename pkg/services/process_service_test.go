package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/models"
	"github.com/yourmoment/yourmoment/pkg/pipeline"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

func TestProcessService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "proc@example.ch")
	cred := createTestCredential(t, svc, user.ID)
	tmpl := createTestTemplate(t, svc, user.ID)
	provider := createTestProvider(t, svc, user.ID)

	t.Run("creates in CREATED state", func(t *testing.T) {
		process, err := svc.processes.Create(ctx, models.CreateProcessRequest{
			UserID:             user.ID,
			Name:               "Tiere beobachten",
			CredentialIDs:      []string{cred.ID},
			TemplateIDs:        []string{tmpl.ID},
			LLMProviderID:      provider.ID,
			TabFilters:         []string{"alle", "meine"},
			KeywordFilters:     []string{"Hund"},
			MaxDurationMinutes: 60,
		})
		require.NoError(t, err)

		assert.Equal(t, monitoringprocess.StatusCreated, process.Status)
		assert.Nil(t, process.StartedAt)
		assert.Nil(t, process.ExpiresAt)
		assert.Equal(t, []string{"alle", "meine"}, process.TabFilters)
	})

	t.Run("rejects foreign credential", func(t *testing.T) {
		other := createTestUser(t, svc, "procother@example.ch")
		otherCred := createTestCredential(t, svc, other.ID)

		_, err := svc.processes.Create(ctx, models.CreateProcessRequest{
			UserID:             user.ID,
			Name:               "Fremde Zugangsdaten",
			CredentialIDs:      []string{otherCred.ID},
			TemplateIDs:        []string{tmpl.ID},
			LLMProviderID:      provider.ID,
			MaxDurationMinutes: 60,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("requires credentials, templates and provider", func(t *testing.T) {
		_, err := svc.processes.Create(ctx, models.CreateProcessRequest{
			UserID:             user.ID,
			Name:               "Unvollständig",
			TemplateIDs:        []string{tmpl.ID},
			LLMProviderID:      provider.ID,
			MaxDurationMinutes: 60,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("requires positive duration", func(t *testing.T) {
		_, err := svc.processes.Create(ctx, models.CreateProcessRequest{
			UserID:        user.ID,
			Name:          "Keine Laufzeit",
			CredentialIDs: []string{cred.ID},
			TemplateIDs:   []string{tmpl.ID},
			LLMProviderID: provider.ID,
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestProcessService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "lifecycle@example.ch")
	process := createTestProcess(t, svc, user.ID)

	t.Run("start arms the expiry", func(t *testing.T) {
		started, err := svc.processes.Start(ctx, user.ID, process.ID)
		require.NoError(t, err)

		assert.Equal(t, monitoringprocess.StatusRunning, started.Status)
		require.NotNil(t, started.StartedAt)
		require.NotNil(t, started.ExpiresAt)
		assert.WithinDuration(t,
			started.StartedAt.Add(time.Duration(process.MaxDurationMinutes)*time.Minute),
			*started.ExpiresAt, time.Second)
	})

	t.Run("start of a running process fails", func(t *testing.T) {
		_, err := svc.processes.Start(ctx, user.ID, process.ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("running process cannot be updated or deleted", func(t *testing.T) {
		name := "Neu"
		_, err := svc.processes.Update(ctx, user.ID, process.ID, models.UpdateProcessRequest{Name: &name})
		assert.ErrorIs(t, err, ErrInvalidState)

		err = svc.processes.Delete(ctx, user.ID, process.ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("stop records the manual reason", func(t *testing.T) {
		stopped, err := svc.processes.Stop(ctx, user.ID, process.ID)
		require.NoError(t, err)

		assert.Equal(t, monitoringprocess.StatusStopped, stopped.Status)
		require.NotNil(t, stopped.StopReason)
		assert.Equal(t, pipeline.StopReasonManual, *stopped.StopReason)
		assert.NotNil(t, stopped.StoppedAt)
		assert.Empty(t, stopped.StageTaskIds)
	})

	t.Run("stopped process can be restarted", func(t *testing.T) {
		restarted, err := svc.processes.Start(ctx, user.ID, process.ID)
		require.NoError(t, err)
		assert.Equal(t, monitoringprocess.StatusRunning, restarted.Status)
		assert.Nil(t, restarted.StopReason)
	})
}

func TestProcessService_RunningLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "limit@example.ch")

	// Fill the per-user running cap.
	for i := 0; i < svc.processes.cfg.MaxProcessesPerUser; i++ {
		p := createTestProcess(t, svc, user.ID)
		_, err := svc.processes.Start(ctx, user.ID, p.ID)
		require.NoError(t, err)
	}

	extra := createTestProcess(t, svc, user.ID)
	_, err := svc.processes.Start(ctx, user.ID, extra.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestProcessService_StatusAndCounts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "status@example.ch")
	process := createTestProcess(t, svc, user.ID)

	creds, err := client.MonitoringProcess.GetX(ctx, process.ID).QueryCredentials().All(ctx)
	require.NoError(t, err)
	tmpls, err := client.MonitoringProcess.GetX(ctx, process.ID).QueryTemplates().All(ctx)
	require.NoError(t, err)

	// Seed records in three statuses.
	for i, status := range []workrecord.Status{
		workrecord.StatusDiscovered, workrecord.StatusDiscovered, workrecord.StatusPosted,
	} {
		err := client.WorkRecord.Create().
			SetID(uuid.New().String()).
			SetProcessID(process.ID).
			SetUserID(user.ID).
			SetCredentialID(creds[0].ID).
			SetTemplateID(tmpls[0].ID).
			SetLlmProviderID(process.LlmProviderID).
			SetUpstreamArticleID(string(rune('a' + i))).
			SetArticleTitle("Artikel").
			SetStatus(status).
			Exec(ctx)
		require.NoError(t, err)
	}

	counts, err := svc.processes.PipelineCounts(ctx, user.ID, process.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 2, counts.ByStatus["discovered"])
	assert.Equal(t, 1, counts.ByStatus["posted"])

	status, err := svc.processes.Status(ctx, user.ID, process.ID)
	require.NoError(t, err)
	assert.Equal(t, "created", status.Status)
	assert.Nil(t, status.StartedAt)
}
