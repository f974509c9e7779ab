package database

import (
	"context"
	"fmt"
	"time"
)

// PoolStats is a snapshot of connection pool pressure.
type PoolStats struct {
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"max_open"`
	WaitCount int64 `json:"wait_count"`
	WaitMs    int64 `json:"wait_ms"`
}

// HealthReport describes database reachability and pool pressure, as
// exposed under the health endpoint's database check.
type HealthReport struct {
	Reachable bool      `json:"reachable"`
	PingMs    int64     `json:"ping_ms"`
	Pool      PoolStats `json:"pool"`
}

// Health pings the database and snapshots the pool. The error carries
// the ping failure; the report is returned either way so callers can
// still surface the ping latency.
func (c *Client) Health(ctx context.Context) (*HealthReport, error) {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return &HealthReport{PingMs: time.Since(start).Milliseconds()},
			fmt.Errorf("database ping failed: %w", err)
	}

	s := c.db.Stats()
	return &HealthReport{
		Reachable: true,
		PingMs:    time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:      s.OpenConnections,
			InUse:     s.InUse,
			Idle:      s.Idle,
			MaxOpen:   s.MaxOpenConnections,
			WaitCount: s.WaitCount,
			WaitMs:    s.WaitDuration.Milliseconds(),
		},
	}, nil
}
