// yourMoment server — provides the REST API, runs the stage worker
// pool, and drives the comment pipeline for monitoring processes.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/yourmoment/yourmoment/pkg/api"
	"github.com/yourmoment/yourmoment/pkg/broker"
	"github.com/yourmoment/yourmoment/pkg/cleanup"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/crypto"
	"github.com/yourmoment/yourmoment/pkg/database"
	"github.com/yourmoment/yourmoment/pkg/llm"
	"github.com/yourmoment/yourmoment/pkg/pipeline"
	"github.com/yourmoment/yourmoment/pkg/scraper"
	"github.com/yourmoment/yourmoment/pkg/services"
	"github.com/yourmoment/yourmoment/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "."),
		"Path to the directory holding the .env file")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting yourMoment",
		"version", version.Full(),
		"pod_id", podID)

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to the database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Broker plus a one-time sweep for tasks abandoned by a crashed pod
	b := broker.New(dbClient.Client)
	if n, err := b.FailStale(ctx, cfg.Broker.StaleTaskThreshold); err != nil {
		slog.Error("Startup stale-task sweep failed", "error", err)
		// Non-fatal — the coordinator repeats the sweep periodically
	} else if n > 0 {
		slog.Info("Failed stale tasks from previous run", "count", n)
	}

	// 4. Domain services
	encryptor, err := crypto.NewEncryptor(cfg.EncryptionKey)
	if err != nil {
		slog.Error("Failed to initialize encryptor", "error", err)
		os.Exit(1)
	}

	userService := services.NewUserService(dbClient.Client)
	credentialService := services.NewCredentialService(dbClient.Client, encryptor)
	providerService := services.NewProviderService(dbClient.Client, encryptor)
	templateService := services.NewTemplateService(dbClient.Client)
	processService := services.NewProcessService(dbClient.Client, b, cfg.Pipeline,
		credentialService, templateService, providerService)
	recordService := services.NewRecordService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Stage runners and worker pool
	stages := pipeline.NewStages(dbClient.Client, cfg.Pipeline, encryptor,
		scraper.NewFactory(cfg.Scraper), llm.NewGenerator())
	pipeline.RegisterRunners(b, stages)

	workerPool := broker.NewWorkerPool(podID, dbClient.Client, cfg.Broker, b)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 6. Background loops: stage scheduling, duration enforcement, retention
	coordinator := pipeline.NewCoordinator(dbClient.Client, b, cfg.Pipeline, cfg.Broker)
	coordinator.Start(ctx)

	enforcer := pipeline.NewEnforcer(dbClient.Client, b, cfg.Pipeline)
	enforcer.Start(ctx)

	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client, b)
	cleanupService.Start(ctx)

	// 7. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg.HTTP, dbClient, b, workerPool,
		userService, credentialService, providerService, templateService,
		processService, recordService)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("yourMoment started successfully",
		"pod_id", podID,
		"workers", cfg.Broker.WorkerCount)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop producers before the worker pool so no
	// new tasks get claimed while in-flight ones drain.
	coordinator.Stop()
	enforcer.Stop()
	cleanupService.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Broker.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — unfinished tasks were requeued as retry")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
