package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/broker"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/models"
	"github.com/yourmoment/yourmoment/pkg/pipeline"
)

// ProcessService manages the monitoring process lifecycle. Start and
// Stop only flip the lifecycle state; the coordinator picks up RUNNING
// processes on its next trigger pass.
type ProcessService struct {
	client      *ent.Client
	broker      *broker.Broker
	cfg         *config.PipelineConfig
	credentials *CredentialService
	templates   *TemplateService
	providers   *ProviderService
}

// NewProcessService creates a new ProcessService.
func NewProcessService(
	client *ent.Client,
	b *broker.Broker,
	cfg *config.PipelineConfig,
	credentials *CredentialService,
	templates *TemplateService,
	providers *ProviderService,
) *ProcessService {
	if client == nil {
		panic("NewProcessService: client must not be nil")
	}
	if b == nil {
		panic("NewProcessService: broker must not be nil")
	}
	if cfg == nil {
		panic("NewProcessService: cfg must not be nil")
	}
	if credentials == nil || templates == nil || providers == nil {
		panic("NewProcessService: dependent services must not be nil")
	}
	return &ProcessService{
		client:      client,
		broker:      b,
		cfg:         cfg,
		credentials: credentials,
		templates:   templates,
		providers:   providers,
	}
}

// Create stores a new monitoring process in the CREATED state.
func (s *ProcessService) Create(ctx context.Context, req models.CreateProcessRequest) (*ent.MonitoringProcess, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("name", "name is required")
	}
	if req.MaxDurationMinutes <= 0 {
		return nil, NewValidationError("max_duration_minutes", "max duration must be positive")
	}
	if err := s.checkReferences(ctx, req.UserID, req.CredentialIDs, req.TemplateIDs, req.LLMProviderID); err != nil {
		return nil, err
	}

	create := s.client.MonitoringProcess.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetLlmProviderID(req.LLMProviderID).
		SetGenerateOnly(req.GenerateOnly).
		SetMaxDurationMinutes(req.MaxDurationMinutes).
		AddCredentialIDs(req.CredentialIDs...).
		AddTemplateIDs(req.TemplateIDs...)
	if len(req.TabFilters) > 0 {
		create.SetTabFilters(req.TabFilters)
	}
	if req.CategoryFilter != "" {
		create.SetCategoryFilter(req.CategoryFilter)
	}
	if len(req.KeywordFilters) > 0 {
		create.SetKeywordFilters(req.KeywordFilters)
	}

	process, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create process: %w", err)
	}
	return process, nil
}

// Get loads a process, enforcing ownership.
func (s *ProcessService) Get(ctx context.Context, userID, processID string) (*ent.MonitoringProcess, error) {
	process, err := s.client.MonitoringProcess.Get(ctx, processID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: process %s", ErrNotFound, processID)
		}
		return nil, fmt.Errorf("failed to load process: %w", err)
	}
	if process.UserID != userID {
		return nil, fmt.Errorf("%w: process %s", ErrForbidden, processID)
	}
	return process, nil
}

// List returns all processes owned by the user, newest first.
func (s *ProcessService) List(ctx context.Context, userID string) ([]*ent.MonitoringProcess, error) {
	processes, err := s.client.MonitoringProcess.Query().
		Where(monitoringprocess.UserIDEQ(userID)).
		Order(ent.Desc(monitoringprocess.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	return processes, nil
}

// Update applies the non-nil fields of the request. Only processes
// still in the CREATED state may be reconfigured.
func (s *ProcessService) Update(ctx context.Context, userID, processID string, req models.UpdateProcessRequest) (*ent.MonitoringProcess, error) {
	process, err := s.Get(ctx, userID, processID)
	if err != nil {
		return nil, err
	}
	if process.Status != monitoringprocess.StatusCreated {
		return nil, fmt.Errorf("%w: process %s is %s, only created processes can be updated",
			ErrInvalidState, processID, process.Status)
	}

	update := process.Update()
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, NewValidationError("name", "name must not be empty")
		}
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.LLMProviderID != nil {
		if _, err := s.providers.Get(ctx, userID, *req.LLMProviderID); err != nil {
			return nil, err
		}
		update.SetLlmProviderID(*req.LLMProviderID)
	}
	if req.CredentialIDs != nil {
		if len(*req.CredentialIDs) == 0 {
			return nil, NewValidationError("credential_ids", "at least one credential is required")
		}
		for _, id := range *req.CredentialIDs {
			if _, err := s.credentials.Get(ctx, userID, id); err != nil {
				return nil, err
			}
		}
		update.ClearCredentials().AddCredentialIDs(*req.CredentialIDs...)
	}
	if req.TemplateIDs != nil {
		if len(*req.TemplateIDs) == 0 {
			return nil, NewValidationError("template_ids", "at least one template is required")
		}
		for _, id := range *req.TemplateIDs {
			if _, err := s.templates.Get(ctx, userID, id); err != nil {
				return nil, err
			}
		}
		update.ClearTemplates().AddTemplateIDs(*req.TemplateIDs...)
	}
	if req.TabFilters != nil {
		update.SetTabFilters(*req.TabFilters)
	}
	if req.CategoryFilter != nil {
		if *req.CategoryFilter == "" {
			update.ClearCategoryFilter()
		} else {
			update.SetCategoryFilter(*req.CategoryFilter)
		}
	}
	if req.KeywordFilters != nil {
		update.SetKeywordFilters(*req.KeywordFilters)
	}
	if req.GenerateOnly != nil {
		update.SetGenerateOnly(*req.GenerateOnly)
	}
	if req.MaxDurationMinutes != nil {
		if *req.MaxDurationMinutes <= 0 {
			return nil, NewValidationError("max_duration_minutes", "max duration must be positive")
		}
		update.SetMaxDurationMinutes(*req.MaxDurationMinutes)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update process: %w", err)
	}
	return updated, nil
}

// Delete removes a process and (by cascade) its work records and stage
// tasks. Running processes must be stopped first.
func (s *ProcessService) Delete(ctx context.Context, userID, processID string) error {
	process, err := s.Get(ctx, userID, processID)
	if err != nil {
		return err
	}
	if process.Status == monitoringprocess.StatusRunning {
		return fmt.Errorf("%w: process %s is running, stop it first", ErrInvalidState, processID)
	}
	if err := s.client.MonitoringProcess.DeleteOneID(processID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete process: %w", err)
	}
	return nil
}

// Start transitions a process to RUNNING and arms its expiry. The
// coordinator spawns the stage tasks on its next pass; Start itself
// enqueues nothing.
func (s *ProcessService) Start(ctx context.Context, userID, processID string) (*ent.MonitoringProcess, error) {
	process, err := s.Get(ctx, userID, processID)
	if err != nil {
		return nil, err
	}
	if process.Status != monitoringprocess.StatusCreated && process.Status != monitoringprocess.StatusStopped {
		return nil, fmt.Errorf("%w: process %s is %s", ErrInvalidState, processID, process.Status)
	}

	// Re-validate references at start time; attached entities may have
	// been deleted or deactivated since Create.
	credentialIDs, templateIDs, err := s.attachedIDs(ctx, process)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, userID, credentialIDs, templateIDs, process.LlmProviderID); err != nil {
		return nil, err
	}

	running, err := s.client.MonitoringProcess.Query().
		Where(
			monitoringprocess.UserIDEQ(userID),
			monitoringprocess.StatusEQ(monitoringprocess.StatusRunning),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count running processes: %w", err)
	}
	if running >= s.cfg.MaxProcessesPerUser {
		return nil, fmt.Errorf("%w: at most %d running processes per user",
			ErrInvalidState, s.cfg.MaxProcessesPerUser)
	}

	now := time.Now()
	started, err := process.Update().
		SetStatus(monitoringprocess.StatusRunning).
		SetStartedAt(now).
		SetExpiresAt(now.Add(time.Duration(process.MaxDurationMinutes) * time.Minute)).
		ClearStopReason().
		ClearStoppedAt().
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start process: %w", err)
	}
	return started, nil
}

// Stop revokes the process's in-flight stage tasks and marks it
// stopped with reason manual.
func (s *ProcessService) Stop(ctx context.Context, userID, processID string) (*ent.MonitoringProcess, error) {
	process, err := s.Get(ctx, userID, processID)
	if err != nil {
		return nil, err
	}
	if process.Status != monitoringprocess.StatusRunning {
		return nil, fmt.Errorf("%w: process %s is %s", ErrInvalidState, processID, process.Status)
	}

	if err := s.broker.RevokeProcess(ctx, processID); err != nil {
		return nil, fmt.Errorf("failed to revoke stage tasks: %w", err)
	}

	// Conditional on still running: the timeout enforcer may have won.
	_, err = s.client.MonitoringProcess.Update().
		Where(
			monitoringprocess.IDEQ(processID),
			monitoringprocess.StatusEQ(monitoringprocess.StatusRunning),
		).
		SetStatus(monitoringprocess.StatusStopped).
		SetStopReason(pipeline.StopReasonManual).
		SetStoppedAt(time.Now()).
		ClearStageTaskIds().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to stop process: %w", err)
	}

	return s.Get(ctx, userID, processID)
}

// Status returns the live view of a process: lifecycle timestamps,
// pipeline counters and the state of each stored stage task.
func (s *ProcessService) Status(ctx context.Context, userID, processID string) (*models.ProcessStatusResponse, error) {
	process, err := s.Get(ctx, userID, processID)
	if err != nil {
		return nil, err
	}

	resp := &models.ProcessStatusResponse{
		ProcessID:  process.ID,
		Status:     string(process.Status),
		StopReason: process.StopReason,
		Counters: models.PipelineCounters{
			ArticlesDiscovered: process.ArticlesDiscovered,
			ArticlesPrepared:   process.ArticlesPrepared,
			CommentsGenerated:  process.CommentsGenerated,
			CommentsPosted:     process.CommentsPosted,
			ErrorsDiscovery:    process.ErrorsDiscovery,
			ErrorsPreparation:  process.ErrorsPreparation,
			ErrorsGeneration:   process.ErrorsGeneration,
			ErrorsPosting:      process.ErrorsPosting,
		},
	}
	resp.StartedAt = formatTime(process.StartedAt)
	resp.ExpiresAt = formatTime(process.ExpiresAt)
	resp.StoppedAt = formatTime(process.StoppedAt)

	if len(process.StageTaskIds) > 0 {
		resp.StageTasks = make(map[string]string, len(process.StageTaskIds))
		for queue, taskID := range process.StageTaskIds {
			state, err := s.broker.State(ctx, taskID)
			if err != nil {
				resp.StageTasks[queue] = "unknown"
				continue
			}
			resp.StageTasks[queue] = string(state)
		}
	}
	return resp, nil
}

// PipelineCounts aggregates the process's work records by status.
func (s *ProcessService) PipelineCounts(ctx context.Context, userID, processID string) (*models.PipelineCountsResponse, error) {
	if _, err := s.Get(ctx, userID, processID); err != nil {
		return nil, err
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.WorkRecord.Query().
		Where(workrecord.ProcessIDEQ(processID)).
		GroupBy(workrecord.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate record counts: %w", err)
	}

	resp := &models.PipelineCountsResponse{
		ProcessID: processID,
		ByStatus:  make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		resp.ByStatus[row.Status] = row.Count
		resp.Total += row.Count
	}
	return resp, nil
}

// checkReferences validates that every referenced credential, template
// and the provider exist and are usable by the user.
func (s *ProcessService) checkReferences(ctx context.Context, userID string, credentialIDs, templateIDs []string, providerID string) error {
	if len(credentialIDs) == 0 {
		return NewValidationError("credential_ids", "at least one credential is required")
	}
	if len(templateIDs) == 0 {
		return NewValidationError("template_ids", "at least one template is required")
	}
	if providerID == "" {
		return NewValidationError("llm_provider_id", "an LLM provider is required")
	}

	for _, id := range credentialIDs {
		if _, err := s.credentials.Get(ctx, userID, id); err != nil {
			return err
		}
	}
	for _, id := range templateIDs {
		if _, err := s.templates.Get(ctx, userID, id); err != nil {
			return err
		}
	}
	provider, err := s.providers.Get(ctx, userID, providerID)
	if err != nil {
		return err
	}
	if !provider.IsActive {
		return NewValidationError("llm_provider_id", "provider is deactivated")
	}
	return nil
}

// attachedIDs loads the process's credential and template edge IDs.
func (s *ProcessService) attachedIDs(ctx context.Context, process *ent.MonitoringProcess) ([]string, []string, error) {
	credentialIDs, err := process.QueryCredentials().IDs(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load process credentials: %w", err)
	}
	templateIDs, err := process.QueryTemplates().IDs(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load process templates: %w", err)
	}
	return credentialIDs, templateIDs, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
