package broker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	"github.com/yourmoment/yourmoment/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single broker worker that polls for and processes stage
// tasks across all queues.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.BrokerConfig
	broker   *Broker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new broker worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.BrokerConfig, broker *Broker) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		broker:       broker,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Broker worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Broker worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, broker worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next task and runs it to a terminal state.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	task, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", task.ID, "queue", task.Queue, "process_id", task.ProcessID, "worker_id", w.id)
	log.Info("Task claimed")

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	runner, ok := w.broker.runner(task.Queue)
	if !ok {
		return w.finishTask(task, fmt.Errorf("%w: %s", ErrNoRunner, task.Queue))
	}

	// Task context with timeout, registered for broker-side revocation.
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()
	w.broker.registerCancel(task.ID, cancelTask)
	defer w.broker.unregisterCancel(task.ID)

	runErr := runner.Run(taskCtx, task)

	// A worker stopping mid-task hands the work back to the queue so
	// another pod can redo the stage pass. Revocation is not requeued.
	if runErr != nil && errors.Is(taskCtx.Err(), context.Canceled) && ctx.Err() != nil {
		return w.requeueTask(task)
	}

	if err := w.finishTask(task, runErr); err != nil {
		return err
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task complete", "success", runErr == nil)
	return nil
}

// claimNextTask atomically claims the next claimable task using
// FOR UPDATE SKIP LOCKED, FIFO by enqueue time.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.StageTask, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	task, err := tx.StageTask.Query().
		Where(stagetask.StatusIn(claimableStates...)).
		Order(ent.Asc(stagetask.FieldEnqueuedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	task, err = task.Update().
		SetStatus(stagetask.StatusStarted).
		SetStartedAt(time.Now()).
		SetWorkerID(w.id).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return task, nil
}

// finishTask writes the terminal status. The update is conditional on
// the task still being started: a concurrent Revoke wins, and the
// revoked status sticks.
func (w *Worker) finishTask(task *ent.StageTask, runErr error) error {
	status := stagetask.StatusSuccess
	update := w.client.StageTask.Update().
		Where(
			stagetask.IDEQ(task.ID),
			stagetask.StatusEQ(stagetask.StatusStarted),
		).
		SetFinishedAt(time.Now())

	if runErr != nil {
		status = stagetask.StatusFailure
		update = update.SetErrorMessage(runErr.Error())
	}
	update = update.SetStatus(status)

	// Background context: the task context may already be cancelled.
	if _, err := update.Save(context.Background()); err != nil {
		return fmt.Errorf("failed to finish task %s: %w", task.ID, err)
	}
	return nil
}

// requeueTask hands a task back to the queue after a shutdown
// interrupted it.
func (w *Worker) requeueTask(task *ent.StageTask) error {
	_, err := w.client.StageTask.Update().
		Where(
			stagetask.IDEQ(task.ID),
			stagetask.StatusEQ(stagetask.StatusStarted),
		).
		SetStatus(stagetask.StatusRetry).
		ClearStartedAt().
		ClearWorkerID().
		Save(context.Background())
	if err != nil {
		return fmt.Errorf("failed to requeue task %s: %w", task.ID, err)
	}

	slog.Info("Task requeued after shutdown", "task_id", task.ID, "queue", task.Queue)
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
