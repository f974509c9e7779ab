package broker

import (
	"time"

	"github.com/yourmoment/yourmoment/pkg/config"
)

func testBrokerConfig() *config.BrokerConfig {
	return &config.BrokerConfig{
		WorkerCount:             2,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      250 * time.Millisecond,
		TaskTimeout:             time.Minute,
		GracefulShutdownTimeout: 5 * time.Second,
		StaleTaskThreshold:      2 * time.Minute,
	}
}
