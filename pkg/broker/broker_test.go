package broker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/stagetask"
)

func TestInFlight(t *testing.T) {
	assert.True(t, InFlight(stagetask.StatusPending))
	assert.True(t, InFlight(stagetask.StatusStarted))
	assert.True(t, InFlight(stagetask.StatusRetry))
	assert.False(t, InFlight(stagetask.StatusSuccess))
	assert.False(t, InFlight(stagetask.StatusFailure))
	assert.False(t, InFlight(stagetask.StatusRevoked))
}

func TestCancelRegistry(t *testing.T) {
	b := New(nil)

	cancelled := false
	b.registerCancel("task-1", func() { cancelled = true })

	assert.False(t, b.cancelTask("unknown"))
	assert.False(t, cancelled)

	assert.True(t, b.cancelTask("task-1"))
	assert.True(t, cancelled)

	// Unregistered tasks are no longer cancellable.
	b.unregisterCancel("task-1")
	assert.False(t, b.cancelTask("task-1"))
}

func TestRunnerRegistry(t *testing.T) {
	b := New(nil)

	_, ok := b.runner(stagetask.QueueDiscovery)
	assert.False(t, ok)

	called := false
	b.Register(stagetask.QueueDiscovery, TaskRunnerFunc(func(ctx context.Context, task *ent.StageTask) error {
		called = true
		return nil
	}))

	r, ok := b.runner(stagetask.QueueDiscovery)
	assert.True(t, ok)
	assert.NoError(t, r.Run(context.Background(), nil))
	assert.True(t, called)
}

func TestWorkerPollInterval(t *testing.T) {
	w := NewWorker("w-0", "pod-0", nil, testBrokerConfig(), New(nil))

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 750*time.Millisecond)
		assert.LessOrEqual(t, d, 1250*time.Millisecond)
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testBrokerConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("w-0", "pod-0", nil, cfg, New(nil))

	assert.Equal(t, cfg.PollInterval, w.pollInterval())
}

func TestWorkerHealthTracking(t *testing.T) {
	w := NewWorker("w-0", "pod-0", nil, testBrokerConfig(), New(nil))

	h := w.Health()
	assert.Equal(t, "w-0", h.ID)
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentTaskID)

	w.setStatus(WorkerStatusWorking, "task-9")
	h = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, "task-9", h.CurrentTaskID)
}
