package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/models"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

// seedRecord inserts a work record for the process in the given status.
func seedRecord(t *testing.T, client *ent.Client, process *ent.MonitoringProcess, articleID string, status workrecord.Status, mutate func(*ent.WorkRecordCreate)) *ent.WorkRecord {
	t.Helper()
	ctx := context.Background()

	creds, err := client.MonitoringProcess.GetX(ctx, process.ID).QueryCredentials().All(ctx)
	require.NoError(t, err)
	tmpls, err := client.MonitoringProcess.GetX(ctx, process.ID).QueryTemplates().All(ctx)
	require.NoError(t, err)

	create := client.WorkRecord.Create().
		SetID(uuid.New().String()).
		SetProcessID(process.ID).
		SetUserID(process.UserID).
		SetCredentialID(creds[0].ID).
		SetTemplateID(tmpls[0].ID).
		SetLlmProviderID(process.LlmProviderID).
		SetUpstreamArticleID(articleID).
		SetArticleTitle("Mein Hund Rex").
		SetStatus(status)
	if mutate != nil {
		mutate(create)
	}

	record, err := create.Save(ctx)
	require.NoError(t, err)
	return record
}

func TestRecordService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "records@example.ch")
	process := createTestProcess(t, svc, user.ID)

	seedRecord(t, client.Client, process, "a1", workrecord.StatusDiscovered, nil)
	seedRecord(t, client.Client, process, "a2", workrecord.StatusPosted, nil)

	t.Run("filters by status", func(t *testing.T) {
		posted, err := svc.records.List(ctx, user.ID, models.ListRecordsFilter{Status: "posted"})
		require.NoError(t, err)
		require.Len(t, posted, 1)
		assert.Equal(t, "a2", posted[0].UpstreamArticleID)
	})

	t.Run("filters by process", func(t *testing.T) {
		all, err := svc.records.List(ctx, user.ID, models.ListRecordsFilter{ProcessID: process.ID})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.records.List(ctx, user.ID, models.ListRecordsFilter{Status: "bogus"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("scoped to the owner", func(t *testing.T) {
		other := createTestUser(t, svc, "recordsother@example.ch")
		none, err := svc.records.List(ctx, other.ID, models.ListRecordsFilter{})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestRecordService_Retry(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := setupTestServices(t, client.Client)
	ctx := context.Background()

	user := createTestUser(t, svc, "retry@example.ch")
	process := createTestProcess(t, svc, user.ID)

	failedAt := time.Now()
	fail := func(create *ent.WorkRecordCreate) {
		create.SetErrorMessage("upstream returned 500").
			SetRetryCount(2).
			SetFailedAt(failedAt)
	}

	t.Run("bare record re-enters at preparation", func(t *testing.T) {
		record := seedRecord(t, client.Client, process, "r1", workrecord.StatusFailed, fail)

		retried, err := svc.records.Retry(ctx, user.ID, record.ID)
		require.NoError(t, err)
		assert.Equal(t, workrecord.StatusDiscovered, retried.Status)
		assert.Nil(t, retried.ErrorMessage)
		assert.Nil(t, retried.FailedAt)
		assert.Zero(t, retried.RetryCount)
	})

	t.Run("record with content re-enters at generation", func(t *testing.T) {
		record := seedRecord(t, client.Client, process, "r2", workrecord.StatusFailed, func(create *ent.WorkRecordCreate) {
			fail(create)
			create.SetArticleContent("Rex ist drei Jahre alt.")
		})

		retried, err := svc.records.Retry(ctx, user.ID, record.ID)
		require.NoError(t, err)
		assert.Equal(t, workrecord.StatusPrepared, retried.Status)
	})

	t.Run("record with comment re-enters at posting", func(t *testing.T) {
		record := seedRecord(t, client.Client, process, "r3", workrecord.StatusFailed, func(create *ent.WorkRecordCreate) {
			fail(create)
			create.SetArticleContent("Rex ist drei Jahre alt.")
			create.SetCommentContent("[Dieser Kommentar stammt von einem KI-ChatBot.] Toll!")
		})

		retried, err := svc.records.Retry(ctx, user.ID, record.ID)
		require.NoError(t, err)
		assert.Equal(t, workrecord.StatusGenerated, retried.Status)
	})

	t.Run("only failed records can be retried", func(t *testing.T) {
		record := seedRecord(t, client.Client, process, "r4", workrecord.StatusPosted, nil)

		_, err := svc.records.Retry(ctx, user.ID, record.ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}
