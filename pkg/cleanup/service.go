// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/broker"
	"github.com/yourmoment/yourmoment/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes work records of finished processes past the retention window
//   - Removes finished stage task rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client
	broker *broker.Broker

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, b *broker.Broker) *Service {
	return &Service{
		config: cfg,
		client: client,
		broker: b,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"record_retention_days", s.config.RecordRetentionDays,
		"task_ttl", s.config.TaskTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldRecords(ctx)
	s.deleteFinishedTasks(ctx)
}

// deleteOldRecords removes work records of finished processes past the
// retention window. Records of running processes are never touched.
func (s *Service) deleteOldRecords(_ context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RecordRetentionDays)

	count, err := s.client.WorkRecord.Delete().
		Where(
			workrecord.CreatedAtLT(cutoff),
			workrecord.HasProcessWith(monitoringprocess.StatusIn(
				monitoringprocess.StatusStopped,
				monitoringprocess.StatusCompleted,
				monitoringprocess.StatusFailed,
			)),
		).
		Exec(context.Background())
	if err != nil {
		slog.Error("Retention: work record cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old work records", "count", count)
	}
}

// deleteFinishedTasks removes terminal stage task rows past the TTL.
func (s *Service) deleteFinishedTasks(_ context.Context) {
	cutoff := time.Now().Add(-s.config.TaskTTL)

	count, err := s.broker.DeleteFinishedBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: stage task cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted finished stage tasks", "count", count)
	}
}
