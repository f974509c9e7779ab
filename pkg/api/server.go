// Package api exposes the REST control surface: account registration,
// credential/provider/template management, process lifecycle, and work
// record inspection.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourmoment/yourmoment/pkg/broker"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/database"
	"github.com/yourmoment/yourmoment/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	cfg        *config.HTTPConfig
	dbClient   *database.Client
	broker     *broker.Broker
	workerPool *broker.WorkerPool

	users       *services.UserService
	credentials *services.CredentialService
	providers   *services.ProviderService
	templates   *services.TemplateService
	processes   *services.ProcessService
	records     *services.RecordService

	router     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.HTTPConfig,
	dbClient *database.Client,
	b *broker.Broker,
	pool *broker.WorkerPool,
	users *services.UserService,
	credentials *services.CredentialService,
	providers *services.ProviderService,
	templates *services.TemplateService,
	processes *services.ProcessService,
	records *services.RecordService,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		broker:      b,
		workerPool:  pool,
		users:       users,
		credentials: credentials,
		providers:   providers,
		templates:   templates,
		processes:   processes,
		records:     records,
		router:      gin.New(),
		logger:      slog.Default().With("component", "api"),
	}

	s.router.Use(gin.Recovery(), requestLogger(s.logger), securityHeaders())
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.healthHandler)

	v1 := s.router.Group("/api/v1")

	v1.POST("/users", s.registerUserHandler)
	v1.POST("/users/login", s.loginHandler)

	// Everything below acts on behalf of a user resolved from the
	// X-User-ID header; request authentication sits in front of this
	// service.
	authed := v1.Group("", requireUser())

	authed.POST("/credentials", s.createCredentialHandler)
	authed.GET("/credentials", s.listCredentialsHandler)
	authed.GET("/credentials/:id", s.getCredentialHandler)
	authed.PATCH("/credentials/:id", s.updateCredentialHandler)
	authed.DELETE("/credentials/:id", s.deleteCredentialHandler)

	authed.POST("/providers", s.createProviderHandler)
	authed.GET("/providers", s.listProvidersHandler)
	authed.GET("/providers/:id", s.getProviderHandler)
	authed.PATCH("/providers/:id", s.updateProviderHandler)
	authed.DELETE("/providers/:id", s.deleteProviderHandler)

	authed.POST("/templates", s.createTemplateHandler)
	authed.GET("/templates", s.listTemplatesHandler)
	authed.GET("/templates/:id", s.getTemplateHandler)
	authed.PATCH("/templates/:id", s.updateTemplateHandler)
	authed.DELETE("/templates/:id", s.deleteTemplateHandler)

	authed.POST("/processes", s.createProcessHandler)
	authed.GET("/processes", s.listProcessesHandler)
	authed.GET("/processes/:id", s.getProcessHandler)
	authed.PATCH("/processes/:id", s.updateProcessHandler)
	authed.DELETE("/processes/:id", s.deleteProcessHandler)
	authed.POST("/processes/:id/start", s.startProcessHandler)
	authed.POST("/processes/:id/stop", s.stopProcessHandler)
	authed.GET("/processes/:id/status", s.processStatusHandler)
	authed.GET("/processes/:id/pipeline-counts", s.pipelineCountsHandler)

	authed.GET("/records", s.listRecordsHandler)
	authed.GET("/records/:id", s.getRecordHandler)
	authed.POST("/records/:id/retry", s.retryRecordHandler)
}

// Start begins serving HTTP requests. Blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("API server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
