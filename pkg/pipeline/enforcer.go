package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/pkg/broker"
	"github.com/yourmoment/yourmoment/pkg/config"
)

// StopReason values recorded when a process leaves RUNNING.
const (
	StopReasonTimeout = "timeout"
	StopReasonManual  = "manual"
)

// Enforcer periodically stops processes that have outlived their
// configured maximum duration: revoke the in-flight stage tasks, then
// mark the process stopped. All pods may run the enforcer; both steps
// are idempotent.
type Enforcer struct {
	client *ent.Client
	broker *broker.Broker
	cfg    *config.PipelineConfig
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewEnforcer creates the timeout enforcer.
func NewEnforcer(client *ent.Client, b *broker.Broker, cfg *config.PipelineConfig) *Enforcer {
	return &Enforcer{
		client: client,
		broker: b,
		cfg:    cfg,
		logger: slog.Default().With("component", "enforcer"),
	}
}

// Start launches the background enforcement loop.
func (e *Enforcer) Start(ctx context.Context) {
	if e.cancel != nil {
		return
	}
	ctx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})

	go e.run(ctx)

	e.logger.Info("Timeout enforcer started", "timeout_interval", e.cfg.TimeoutInterval)
}

// Stop signals the enforcement loop to exit and waits for it to finish.
func (e *Enforcer) Stop() {
	if e.cancel == nil {
		return
	}
	e.cancel()
	<-e.done
	e.logger.Info("Timeout enforcer stopped")
}

func (e *Enforcer) run(ctx context.Context) {
	defer close(e.done)

	e.tick(ctx)

	ticker := time.NewTicker(e.cfg.TimeoutInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

// tick stops every running process past its expiry.
func (e *Enforcer) tick(ctx context.Context) {
	expired, err := e.client.MonitoringProcess.Query().
		Where(
			monitoringprocess.StatusEQ(monitoringprocess.StatusRunning),
			monitoringprocess.ExpiresAtNotNil(),
			monitoringprocess.ExpiresAtLT(time.Now()),
		).
		All(ctx)
	if err != nil {
		e.logger.Error("Failed to query expired processes", "error", err)
		return
	}

	for _, process := range expired {
		if err := e.stopExpired(ctx, process); err != nil {
			e.logger.Error("Failed to stop expired process",
				"process_id", process.ID, "error", err)
		}
	}
}

// stopExpired revokes the process's tasks and marks it stopped with
// reason timeout.
func (e *Enforcer) stopExpired(ctx context.Context, process *ent.MonitoringProcess) error {
	if err := e.broker.RevokeProcess(ctx, process.ID); err != nil {
		return err
	}

	// Conditional on still running: a concurrent manual stop wins.
	n, err := e.client.MonitoringProcess.Update().
		Where(
			monitoringprocess.IDEQ(process.ID),
			monitoringprocess.StatusEQ(monitoringprocess.StatusRunning),
		).
		SetStatus(monitoringprocess.StatusStopped).
		SetStopReason(StopReasonTimeout).
		SetStoppedAt(time.Now()).
		ClearStageTaskIds().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark process %s stopped: %w", process.ID, err)
	}

	if n > 0 {
		e.logger.Info("Process stopped by timeout enforcer",
			"process_id", process.ID,
			"max_duration_minutes", process.MaxDurationMinutes)
	}
	return nil
}
