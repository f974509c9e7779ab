package broker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	testdb "github.com/yourmoment/yourmoment/test/database"
)

// createProcess creates the minimal entity graph a stage task can hang
// off.
func createProcess(t *testing.T, client *ent.Client) string {
	t.Helper()
	ctx := context.Background()

	user, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String() + "@example.ch").
		SetPasswordHash("x").
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
		Save(ctx)
	require.NoError(t, err)
	return process.ID
}

func TestEnqueueAndClaimFIFO(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	processID := createProcess(t, client.Client)

	b := New(client.Client)
	first, err := b.Enqueue(ctx, stagetask.QueueDiscovery, processID)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond) // distinct enqueue timestamps
	second, err := b.Enqueue(ctx, stagetask.QueuePreparation, processID)
	require.NoError(t, err)

	w := NewWorker("w-0", "pod-0", client.Client, testBrokerConfig(), b)

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID, "oldest task first")
	assert.Equal(t, stagetask.StatusStarted, claimed.Status)
	require.NotNil(t, claimed.WorkerID)
	assert.Equal(t, "w-0", *claimed.WorkerID)
	assert.NotNil(t, claimed.StartedAt)

	claimed, err = w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)

	// Both tasks are started now; nothing is left to claim.
	_, err = w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestRevokeLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	processID := createProcess(t, client.Client)

	b := New(client.Client)
	task, err := b.Enqueue(ctx, stagetask.QueueDiscovery, processID)
	require.NoError(t, err)

	require.NoError(t, b.Revoke(ctx, task.ID))
	state, err := b.State(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, stagetask.StatusRevoked, state)

	// Revoking again, or revoking the unknown, is a no-op.
	require.NoError(t, b.Revoke(ctx, task.ID))
	require.NoError(t, b.Revoke(ctx, uuid.New().String()))

	// Terminal states stick.
	done, err := b.Enqueue(ctx, stagetask.QueueDiscovery, processID)
	require.NoError(t, err)
	require.NoError(t, client.StageTask.UpdateOneID(done.ID).
		SetStatus(stagetask.StatusSuccess).
		SetFinishedAt(time.Now()).
		Exec(ctx))
	require.NoError(t, b.Revoke(ctx, done.ID))
	state, err = b.State(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, stagetask.StatusSuccess, state)

	_, err = b.State(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestRevokeProcessLeavesOtherProcessesAlone(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	b := New(client.Client)
	target := createProcess(t, client.Client)
	other := createProcess(t, client.Client)

	targetTask, err := b.Enqueue(ctx, stagetask.QueueDiscovery, target)
	require.NoError(t, err)
	targetTask2, err := b.Enqueue(ctx, stagetask.QueueGeneration, target)
	require.NoError(t, err)
	otherTask, err := b.Enqueue(ctx, stagetask.QueueDiscovery, other)
	require.NoError(t, err)

	require.NoError(t, b.RevokeProcess(ctx, target))

	for _, id := range []string{targetTask.ID, targetTask2.ID} {
		state, err := b.State(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, stagetask.StatusRevoked, state)
	}

	state, err := b.State(ctx, otherTask.ID)
	require.NoError(t, err)
	assert.Equal(t, stagetask.StatusPending, state)
}

func TestInFlightTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	processID := createProcess(t, client.Client)

	b := New(client.Client)

	task, err := b.InFlightTask(ctx, processID, stagetask.QueueDiscovery)
	require.NoError(t, err)
	assert.Nil(t, task, "idle stage has no in-flight task")

	enqueued, err := b.Enqueue(ctx, stagetask.QueueDiscovery, processID)
	require.NoError(t, err)

	task, err = b.InFlightTask(ctx, processID, stagetask.QueueDiscovery)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, enqueued.ID, task.ID)

	// A different queue stays idle.
	task, err = b.InFlightTask(ctx, processID, stagetask.QueuePosting)
	require.NoError(t, err)
	assert.Nil(t, task)

	require.NoError(t, b.Revoke(ctx, enqueued.ID))
	task, err = b.InFlightTask(ctx, processID, stagetask.QueueDiscovery)
	require.NoError(t, err)
	assert.Nil(t, task, "revoked tasks are not in flight")
}

func TestFailStaleReclaimsAbandonedTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	processID := createProcess(t, client.Client)

	b := New(client.Client)
	w := NewWorker("w-0", "pod-0", client.Client, testBrokerConfig(), b)

	stale, err := b.Enqueue(ctx, stagetask.QueueDiscovery, processID)
	require.NoError(t, err)
	_, err = w.claimNextTask(ctx)
	require.NoError(t, err)
	// Backdate the claim as if the worker's pod died mid-task.
	require.NoError(t, client.StageTask.UpdateOneID(stale.ID).
		SetStartedAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx))

	fresh, err := b.Enqueue(ctx, stagetask.QueuePreparation, processID)
	require.NoError(t, err)
	_, err = w.claimNextTask(ctx)
	require.NoError(t, err)

	n, err := b.FailStale(ctx, 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	reloaded, err := client.StageTask.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, stagetask.StatusFailure, reloaded.Status)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Contains(t, *reloaded.ErrorMessage, "abandoned")

	state, err := b.State(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, stagetask.StatusStarted, state, "recently started tasks are not stale")
}

func TestFinishTaskRevocationWins(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	processID := createProcess(t, client.Client)

	b := New(client.Client)
	w := NewWorker("w-0", "pod-0", client.Client, testBrokerConfig(), b)

	_, err := b.Enqueue(ctx, stagetask.QueueDiscovery, processID)
	require.NoError(t, err)
	task, err := w.claimNextTask(ctx)
	require.NoError(t, err)

	// Revocation lands while the runner is still working.
	require.NoError(t, b.Revoke(ctx, task.ID))
	require.NoError(t, w.finishTask(task, nil))

	state, err := b.State(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, stagetask.StatusRevoked, state, "revoked sticks over success")
}

func TestWorkerProcessesTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	processID := createProcess(t, client.Client)

	b := New(client.Client)
	var ranProcessID string
	b.Register(stagetask.QueueDiscovery, TaskRunnerFunc(func(ctx context.Context, task *ent.StageTask) error {
		ranProcessID = task.ProcessID
		return nil
	}))
	b.Register(stagetask.QueueGeneration, TaskRunnerFunc(func(ctx context.Context, task *ent.StageTask) error {
		return errors.New("provider unreachable")
	}))

	w := NewWorker("w-0", "pod-0", client.Client, testBrokerConfig(), b)

	good, err := b.Enqueue(ctx, stagetask.QueueDiscovery, processID)
	require.NoError(t, err)
	require.NoError(t, w.pollAndProcess(ctx))
	assert.Equal(t, processID, ranProcessID)

	state, err := b.State(ctx, good.ID)
	require.NoError(t, err)
	assert.Equal(t, stagetask.StatusSuccess, state)

	// A runner error lands in the task row.
	bad, err := b.Enqueue(ctx, stagetask.QueueGeneration, processID)
	require.NoError(t, err)
	require.NoError(t, w.pollAndProcess(ctx))

	reloaded, err := client.StageTask.Get(ctx, bad.ID)
	require.NoError(t, err)
	assert.Equal(t, stagetask.StatusFailure, reloaded.Status)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Contains(t, *reloaded.ErrorMessage, "provider unreachable")

	assert.Equal(t, 2, w.Health().TasksProcessed)
}
