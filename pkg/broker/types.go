// Package broker provides the database-backed task broker that drives
// the monitoring pipeline. Stage tasks are rows in the stage_tasks
// table; workers claim them with FOR UPDATE SKIP LOCKED, so any number
// of replicas can share one queue without double-processing.
package broker

import (
	"context"
	"errors"
	"time"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/stagetask"
)

// Sentinel errors for broker operations.
var (
	// ErrNoTasksAvailable indicates no claimable tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrTaskNotFound indicates the task ID is unknown.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoRunner indicates a task was claimed from a queue no runner
	// is registered for.
	ErrNoRunner = errors.New("no runner registered for queue")
)

// TaskRunner executes one claimed stage task. The runner owns the
// whole stage pass: it loads its own data, talks to the upstream
// platform or LLM, and persists results through short sessions. The
// worker only handles claiming, context, and the terminal task status.
type TaskRunner interface {
	Run(ctx context.Context, task *ent.StageTask) error
}

// TaskRunnerFunc adapts a function to the TaskRunner interface.
type TaskRunnerFunc func(ctx context.Context, task *ent.StageTask) error

// Run calls f(ctx, task).
func (f TaskRunnerFunc) Run(ctx context.Context, task *ent.StageTask) error {
	return f(ctx, task)
}

// inFlightStates are the task states that count as "still owned by the
// broker". The coordinator skips spawning a stage while its previous
// task is in one of these.
var inFlightStates = []stagetask.Status{
	stagetask.StatusPending,
	stagetask.StatusStarted,
	stagetask.StatusRetry,
}

// InFlight reports whether a task state counts as in-flight.
func InFlight(s stagetask.Status) bool {
	switch s {
	case stagetask.StatusPending, stagetask.StatusStarted, stagetask.StatusRetry:
		return true
	default:
		return false
	}
}

// claimableStates are the states workers pick tasks up from. Retry
// covers tasks handed back during a graceful shutdown.
var claimableStates = []stagetask.Status{
	stagetask.StatusPending,
	stagetask.StatusRetry,
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
