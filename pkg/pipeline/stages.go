package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/config"
	"github.com/yourmoment/yourmoment/pkg/crypto"
	"github.com/yourmoment/yourmoment/pkg/llm"
	"github.com/yourmoment/yourmoment/pkg/models"
	"github.com/yourmoment/yourmoment/pkg/scraper"
)

// Stages bundles the dependencies shared by all four stage runners.
// Every runner follows the same discipline: load inputs in one short
// session, do the external I/O with no transaction open, persist each
// result in its own short session.
type Stages struct {
	client     *ent.Client
	cfg        *config.PipelineConfig
	encryptor  *crypto.Encryptor
	newScraper scraper.Factory
	generator  llm.Generator
	logger     *slog.Logger
}

// NewStages creates the stage runner set.
func NewStages(
	client *ent.Client,
	cfg *config.PipelineConfig,
	encryptor *crypto.Encryptor,
	factory scraper.Factory,
	generator llm.Generator,
) *Stages {
	return &Stages{
		client:     client,
		cfg:        cfg,
		encryptor:  encryptor,
		newScraper: factory,
		generator:  generator,
		logger:     slog.Default().With("component", "pipeline"),
	}
}

// credentialLogin is the transiently decrypted view of one upstream
// credential. Instances live on the stack for the duration of a stage
// pass and are never persisted or logged.
type credentialLogin struct {
	ID       string
	Username string
	Password string
}

// runningProcess loads the process and reports whether the stage pass
// should proceed. A task claimed after its process left RUNNING is a
// silent no-op; revocation may have raced the claim.
func (s *Stages) runningProcess(ctx context.Context, processID string) (*ent.MonitoringProcess, bool, error) {
	process, err := s.client.MonitoringProcess.Get(ctx, processID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load process %s: %w", processID, err)
	}
	if process.Status != monitoringprocess.StatusRunning {
		s.logger.Debug("Skipping stage pass, process not running",
			"process_id", processID, "status", process.Status)
		return nil, false, nil
	}
	return process, true, nil
}

// activeCredentials loads and decrypts the process's active upstream
// credentials.
func (s *Stages) activeCredentials(ctx context.Context, process *ent.MonitoringProcess) ([]credentialLogin, error) {
	creds, err := process.QueryCredentials().
		Where(upstreamcredential.IsActive(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials for process %s: %w", process.ID, err)
	}

	logins := make([]credentialLogin, 0, len(creds))
	for _, cred := range creds {
		password, err := s.encryptor.Decrypt(cred.PasswordEncrypted)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt credential %s: %w", cred.ID, err)
		}
		logins = append(logins, credentialLogin{
			ID:       cred.ID,
			Username: cred.Username,
			Password: password,
		})
	}
	return logins, nil
}

// providerSettings loads and decrypts the process's LLM provider
// configuration.
func (s *Stages) providerSettings(ctx context.Context, process *ent.MonitoringProcess) (llm.ProviderSettings, error) {
	provider, err := s.client.LLMProviderConfig.Get(ctx, process.LlmProviderID)
	if err != nil {
		return llm.ProviderSettings{}, fmt.Errorf("failed to load LLM provider %s: %w", process.LlmProviderID, err)
	}
	if !provider.IsActive {
		return llm.ProviderSettings{}, fmt.Errorf("LLM provider %s is inactive", provider.ID)
	}

	apiKey, err := s.encryptor.Decrypt(provider.APIKeyEncrypted)
	if err != nil {
		return llm.ProviderSettings{}, fmt.Errorf("failed to decrypt API key for provider %s: %w", provider.ID, err)
	}

	return llm.ProviderSettings{
		VendorTag:   string(provider.VendorTag),
		ModelName:   provider.ModelName,
		APIKey:      apiKey,
		Temperature: provider.Temperature,
		MaxTokens:   provider.MaxTokens,
		JSONMode:    provider.JSONMode,
	}, nil
}

// login opens a fresh platform session for one credential and marks
// its last use.
func (s *Stages) login(ctx context.Context, cred credentialLogin) (scraper.Client, error) {
	client, err := s.newScraper()
	if err != nil {
		return nil, err
	}
	if err := client.Login(ctx, cred.Username, cred.Password); err != nil {
		return nil, fmt.Errorf("login failed for credential %s: %w", cred.ID, err)
	}

	if err := s.client.UpstreamCredential.UpdateOneID(cred.ID).
		SetLastUsedAt(time.Now()).
		Exec(ctx); err != nil {
		s.logger.Warn("Failed to record credential use", "credential_id", cred.ID, "error", err)
	}
	return client, nil
}

// recordsInStatus loads a process's work records sitting in the given
// stage input status, FIFO by creation time.
func (s *Stages) recordsInStatus(ctx context.Context, processID string, status workrecord.Status) ([]*ent.WorkRecord, error) {
	records, err := s.client.WorkRecord.Query().
		Where(
			workrecord.ProcessIDEQ(processID),
			workrecord.StatusEQ(status),
		).
		Order(ent.Asc(workrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s records for process %s: %w", status, processID, err)
	}
	return records, nil
}

// transitionRecord applies a guarded single-record update: the change
// only lands while the record still sits in the expected status, so a
// duplicate stage pass racing on the same snapshot is a no-op. Returns
// whether this caller won the transition.
func (s *Stages) transitionRecord(ctx context.Context, recordID string, from workrecord.Status, build func(*ent.WorkRecordUpdate)) (bool, error) {
	update := s.client.WorkRecord.Update().
		Where(
			workrecord.IDEQ(recordID),
			workrecord.StatusEQ(from),
		)
	build(update)
	n, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update record %s: %w", recordID, err)
	}
	return n > 0, nil
}

// failRecord moves a record from its stage input status to the
// terminal failed status, counting the attempt. Returns whether the
// record was still in from.
func (s *Stages) failRecord(ctx context.Context, recordID string, from workrecord.Status, cause error) (bool, error) {
	return s.transitionRecord(ctx, recordID, from, func(u *ent.WorkRecordUpdate) {
		u.SetStatus(workrecord.StatusFailed).
			SetErrorMessage(cause.Error()).
			SetFailedAt(time.Now()).
			AddRetryCount(1)
	})
}

// processFilter assembles the discovery filter from process config.
func processFilter(process *ent.MonitoringProcess) models.ArticleFilter {
	filter := models.ArticleFilter{
		Tabs:     process.TabFilters,
		Keywords: process.KeywordFilters,
	}
	if process.CategoryFilter != nil {
		filter.Category = *process.CategoryFilter
	}
	return filter
}

// pause waits for the configured pacing delay, bailing out early when
// the task context ends.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
