package broker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	"github.com/yourmoment/yourmoment/pkg/config"
)

// WorkerPool manages a pool of broker workers.
type WorkerPool struct {
	podID   string
	client  *ent.Client
	config  *config.BrokerConfig
	broker  *Broker
	workers []*Worker
	started bool
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.BrokerConfig, broker *Broker) *WorkerPool {
	return &WorkerPool{
		podID:   podID,
		client:  client,
		config:  cfg,
		broker:  broker,
		workers: make([]*Worker, 0, cfg.WorkerCount),
	}
}

// Start spawns worker goroutines. It is safe to call multiple times;
// subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting broker worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.broker)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Broker worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish or requeue their current tasks before exiting.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping broker worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	slog.Info("Broker worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.StageTask.Query().
		Where(stagetask.StatusIn(claimableStates...)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:     len(p.workers) > 0 && dbHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
	}
}
