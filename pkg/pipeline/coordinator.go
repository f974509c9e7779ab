package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	"github.com/yourmoment/yourmoment/pkg/broker"
	"github.com/yourmoment/yourmoment/pkg/config"
)

// stageQueues are the pipeline stages the coordinator keeps alive, in
// pipeline order.
var stageQueues = []stagetask.Queue{
	stagetask.QueueDiscovery,
	stagetask.QueuePreparation,
	stagetask.QueueGeneration,
	stagetask.QueuePosting,
}

// Coordinator periodically re-spawns stage tasks for every RUNNING
// process. A stage gets a fresh task only when its previous one has
// finished, so each (process, stage) pair has at most one in-flight
// task. All pods may run the coordinator; spawning is idempotent
// enough that duplicates are rare and harmless (the extra pass finds
// no records to move).
type Coordinator struct {
	client    *ent.Client
	broker    *broker.Broker
	cfg       *config.PipelineConfig
	brokerCfg *config.BrokerConfig
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewCoordinator creates the pipeline coordinator.
func NewCoordinator(client *ent.Client, b *broker.Broker, cfg *config.PipelineConfig, brokerCfg *config.BrokerConfig) *Coordinator {
	return &Coordinator{
		client:    client,
		broker:    b,
		cfg:       cfg,
		brokerCfg: brokerCfg,
		logger:    slog.Default().With("component", "coordinator"),
	}
}

// RegisterRunners binds the four stage runners to their queues.
func RegisterRunners(b *broker.Broker, stages *Stages) {
	b.Register(stagetask.QueueDiscovery, broker.TaskRunnerFunc(stages.RunDiscovery))
	b.Register(stagetask.QueuePreparation, broker.TaskRunnerFunc(stages.RunPreparation))
	b.Register(stagetask.QueueGeneration, broker.TaskRunnerFunc(stages.RunGeneration))
	b.Register(stagetask.QueuePosting, broker.TaskRunnerFunc(stages.RunPosting))
}

// Start launches the background trigger loop.
func (c *Coordinator) Start(ctx context.Context) {
	if c.cancel != nil {
		return
	}
	ctx, c.cancel = context.WithCancel(ctx)
	c.done = make(chan struct{})

	go c.run(ctx)

	c.logger.Info("Coordinator started", "trigger_interval", c.cfg.TriggerInterval)
}

// Stop signals the trigger loop to exit and waits for it to finish.
func (c *Coordinator) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.logger.Info("Coordinator stopped")
}

func (c *Coordinator) run(ctx context.Context) {
	defer close(c.done)

	c.tick(ctx)

	ticker := time.NewTicker(c.cfg.TriggerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.tick(ctx)
		}
	}
}

// tick runs one trigger pass: reclaim abandoned tasks, then top up
// stage tasks for every running process.
func (c *Coordinator) tick(ctx context.Context) {
	if _, err := c.broker.FailStale(ctx, c.brokerCfg.StaleTaskThreshold); err != nil {
		c.logger.Error("Stale task sweep failed", "error", err)
	}

	processes, err := c.client.MonitoringProcess.Query().
		Where(monitoringprocess.StatusEQ(monitoringprocess.StatusRunning)).
		All(ctx)
	if err != nil {
		c.logger.Error("Failed to list running processes", "error", err)
		return
	}
	if len(processes) == 0 {
		return
	}

	var spawned, skipped atomicCounters
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, process := range processes {
		g.Go(func() error {
			s, k, err := c.spawnStages(gctx, process)
			spawned.add(s)
			skipped.add(k)
			if err != nil {
				c.logger.Error("Failed to spawn stage tasks",
					"process_id", process.ID, "error", err)
			}
			// Never abort the whole tick for one process.
			return nil
		})
	}
	_ = g.Wait()

	c.logger.Debug("Trigger pass complete",
		"processes", len(processes), "spawned", spawned.value(), "skipped", skipped.value())
}

// spawnStages enqueues a task for every idle stage of one process.
// Returns (spawned, skipped).
func (c *Coordinator) spawnStages(ctx context.Context, process *ent.MonitoringProcess) (int, int, error) {
	queues := stageQueues
	if process.GenerateOnly {
		queues = queues[:len(queues)-1] // no posting stage
	}

	taskIDs := make(map[string]string, len(queues))
	for queue, id := range process.StageTaskIds {
		taskIDs[queue] = id
	}

	spawned, skipped := 0, 0
	for _, queue := range queues {
		inFlight, err := c.broker.InFlightTask(ctx, process.ID, queue)
		if err != nil {
			return spawned, skipped, err
		}
		if inFlight != nil {
			skipped++
			continue
		}

		task, err := c.broker.Enqueue(ctx, queue, process.ID)
		if err != nil {
			return spawned, skipped, err
		}
		taskIDs[string(queue)] = task.ID
		spawned++
	}

	if spawned > 0 {
		if err := c.client.MonitoringProcess.UpdateOneID(process.ID).
			SetStageTaskIds(taskIDs).
			Exec(ctx); err != nil {
			return spawned, skipped, fmt.Errorf("failed to record stage task ids: %w", err)
		}
	}
	return spawned, skipped, nil
}

// atomicCounters tallies across errgroup goroutines.
type atomicCounters struct {
	n atomic.Int64
}

func (c *atomicCounters) add(delta int) { c.n.Add(int64(delta)) }
func (c *atomicCounters) value() int    { return int(c.n.Load()) }
