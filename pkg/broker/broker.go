package broker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/stagetask"
)

// Broker enqueues, inspects, and revokes stage tasks. It also holds
// the cancel registry for tasks running on this pod, so revocation can
// interrupt work that is already started.
type Broker struct {
	client *ent.Client
	logger *slog.Logger

	// runners dispatch claimed tasks by queue name.
	runners map[stagetask.Queue]TaskRunner

	// Task cancel registry: task_id → cancel function.
	mu          sync.RWMutex
	activeTasks map[string]context.CancelFunc
}

// New creates a Broker on the given database client.
func New(client *ent.Client) *Broker {
	return &Broker{
		client:      client,
		logger:      slog.Default().With("component", "broker"),
		runners:     make(map[stagetask.Queue]TaskRunner),
		activeTasks: make(map[string]context.CancelFunc),
	}
}

// Register binds a runner to a queue. Tasks claimed from a queue with
// no runner are failed immediately.
func (b *Broker) Register(queue stagetask.Queue, runner TaskRunner) {
	b.runners[queue] = runner
}

// Enqueue creates a pending task on the given queue and returns it.
func (b *Broker) Enqueue(ctx context.Context, queue stagetask.Queue, processID string) (*ent.StageTask, error) {
	task, err := b.client.StageTask.Create().
		SetID(uuid.New().String()).
		SetQueue(queue).
		SetProcessID(processID).
		SetStatus(stagetask.StatusPending).
		SetEnqueuedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue %s task for process %s: %w", queue, processID, err)
	}

	b.logger.Debug("Task enqueued", "task_id", task.ID, "queue", queue, "process_id", processID)
	return task, nil
}

// State returns the current status of a task.
func (b *Broker) State(ctx context.Context, taskID string) (stagetask.Status, error) {
	task, err := b.client.StageTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
		}
		return "", fmt.Errorf("failed to load task %s: %w", taskID, err)
	}
	return task.Status, nil
}

// Revoke moves an in-flight task to revoked and cancels its context if
// it is running on this pod. Revoking an already finished or unknown
// task is a no-op, so callers can revoke blindly.
func (b *Broker) Revoke(ctx context.Context, taskID string) error {
	n, err := b.client.StageTask.Update().
		Where(
			stagetask.IDEQ(taskID),
			stagetask.StatusIn(inFlightStates...),
		).
		SetStatus(stagetask.StatusRevoked).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke task %s: %w", taskID, err)
	}

	if b.cancelTask(taskID) {
		b.logger.Info("Cancelled running task", "task_id", taskID)
	}
	if n > 0 {
		b.logger.Debug("Task revoked", "task_id", taskID)
	}
	return nil
}

// RevokeProcess revokes every in-flight task belonging to a process.
// Used when a process stops, times out, or fails.
func (b *Broker) RevokeProcess(ctx context.Context, processID string) error {
	tasks, err := b.client.StageTask.Query().
		Where(
			stagetask.ProcessIDEQ(processID),
			stagetask.StatusIn(inFlightStates...),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list in-flight tasks for process %s: %w", processID, err)
	}

	for _, task := range tasks {
		if err := b.Revoke(ctx, task.ID); err != nil {
			return err
		}
	}

	if len(tasks) > 0 {
		b.logger.Info("Revoked process tasks", "process_id", processID, "count", len(tasks))
	}
	return nil
}

// InFlightTask returns the newest in-flight task of a process on the
// given queue, or nil when the stage is idle.
func (b *Broker) InFlightTask(ctx context.Context, processID string, queue stagetask.Queue) (*ent.StageTask, error) {
	task, err := b.client.StageTask.Query().
		Where(
			stagetask.ProcessIDEQ(processID),
			stagetask.QueueEQ(queue),
			stagetask.StatusIn(inFlightStates...),
		).
		Order(ent.Desc(stagetask.FieldEnqueuedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query in-flight %s task for process %s: %w", queue, processID, err)
	}
	return task, nil
}

// FailStale marks started tasks older than the threshold as failed.
// These are leftovers of crashed pods; their worker will never report
// back. Returns the number of tasks failed.
func (b *Broker) FailStale(ctx context.Context, threshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-threshold)
	n, err := b.client.StageTask.Update().
		Where(
			stagetask.StatusEQ(stagetask.StatusStarted),
			stagetask.StartedAtLT(cutoff),
		).
		SetStatus(stagetask.StatusFailure).
		SetErrorMessage("abandoned by crashed worker").
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale tasks: %w", err)
	}

	if n > 0 {
		b.logger.Warn("Failed stale tasks", "count", n, "threshold", threshold)
	}
	return n, nil
}

// DeleteFinishedBefore removes terminal task rows older than the
// cutoff. Retention cleanup calls this; normal rows go away with their
// process via cascade.
func (b *Broker) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := b.client.StageTask.Delete().
		Where(
			stagetask.StatusIn(
				stagetask.StatusSuccess,
				stagetask.StatusFailure,
				stagetask.StatusRevoked,
			),
			stagetask.EnqueuedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete finished tasks: %w", err)
	}
	return n, nil
}

// QueueDepths counts the in-flight tasks per queue.
func (b *Broker) QueueDepths(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Queue string `json:"queue"`
		Count int    `json:"count"`
	}
	err := b.client.StageTask.Query().
		Where(stagetask.StatusIn(inFlightStates...)).
		GroupBy(stagetask.FieldQueue).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count queue depths: %w", err)
	}

	depths := make(map[string]int, len(rows))
	for _, row := range rows {
		depths[row.Queue] = row.Count
	}
	return depths, nil
}

// registerCancel stores a cancel function for a running task.
func (b *Broker) registerCancel(taskID string, cancel context.CancelFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.activeTasks[taskID] = cancel
}

// unregisterCancel removes the cancel function when processing ends.
func (b *Broker) unregisterCancel(taskID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.activeTasks, taskID)
}

// cancelTask triggers context cancellation for a task on this pod.
// Returns true if the task was found and cancelled.
func (b *Broker) cancelTask(taskID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if cancel, ok := b.activeTasks[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// runner looks up the TaskRunner for a queue.
func (b *Broker) runner(queue stagetask.Queue) (TaskRunner, bool) {
	r, ok := b.runners[queue]
	return r, ok
}
