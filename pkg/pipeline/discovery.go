package pipeline

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/models"
	"github.com/yourmoment/yourmoment/pkg/scraper"
)

// RunDiscovery is the discovery stage pass: scan the configured tabs
// with every active credential and create a discovered work record per
// new (credential, template, article) combination. Known combinations
// are skipped via the unique index, so re-running is free.
func (s *Stages) RunDiscovery(ctx context.Context, task *ent.StageTask) error {
	process, ok, err := s.runningProcess(ctx, task.ProcessID)
	if err != nil || !ok {
		return err
	}

	creds, err := s.activeCredentials(ctx, process)
	if err != nil {
		return err
	}
	if len(creds) == 0 {
		return fmt.Errorf("process %s has no active credentials", process.ID)
	}

	templates, err := process.QueryTemplates().
		Order(ent.Asc(prompttemplate.FieldName)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load templates for process %s: %w", process.ID, err)
	}
	if len(templates) == 0 {
		return fmt.Errorf("process %s has no prompt templates", process.ID)
	}

	filter := processFilter(process)
	discovered, failures := 0, 0

	for _, cred := range creds {
		n, err := s.discoverForCredential(ctx, process, cred, templates, filter)
		discovered += n
		if err != nil {
			failures++
			s.logger.Warn("Discovery pass failed for credential",
				"process_id", process.ID, "credential_id", cred.ID, "error", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	if discovered > 0 || failures > 0 {
		update := s.client.MonitoringProcess.UpdateOneID(process.ID)
		if discovered > 0 {
			update = update.AddArticlesDiscovered(discovered)
		}
		if failures > 0 {
			update = update.AddErrorsDiscovery(failures)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update discovery counters: %w", err)
		}
	}

	s.logger.Info("Discovery pass complete",
		"process_id", process.ID, "discovered", discovered, "credential_failures", failures)

	if failures == len(creds) {
		return fmt.Errorf("discovery failed for all %d credentials", len(creds))
	}
	return nil
}

// discoverForCredential scans the filter's tabs with one login,
// collects the matching articles, and batch-inserts the prospective
// records in one short transaction. Returns how many records were
// created.
func (s *Stages) discoverForCredential(
	ctx context.Context,
	process *ent.MonitoringProcess,
	cred credentialLogin,
	templates []*ent.PromptTemplate,
	filter models.ArticleFilter,
) (int, error) {
	client, err := s.login(ctx, cred)
	if err != nil {
		return 0, err
	}
	defer func() { _ = client.Logout(context.WithoutCancel(ctx)) }()

	// An article can show up on more than one tab; keep one listing.
	matches := make([]models.ArticleListing, 0, 32)
	seen := make(map[string]bool)
	for _, tab := range scraper.Tabs(filter) {
		listings, err := client.ListArticles(ctx, tab)
		if err != nil {
			return 0, fmt.Errorf("failed to list tab %q: %w", tab, err)
		}
		for _, listing := range listings {
			if seen[listing.ID] || !scraper.MatchesFilter(listing, filter) {
				continue
			}
			seen[listing.ID] = true
			matches = append(matches, listing)
		}
	}
	if len(matches) == 0 {
		return 0, nil
	}

	return s.insertDiscovered(ctx, process, cred.ID, templates, matches)
}

// insertDiscovered batch-inserts the new (article × template) records
// for one credential. Combinations already discovered on an earlier
// pass are filtered out up front; ON CONFLICT DO NOTHING covers the
// rare race with a concurrent pass.
func (s *Stages) insertDiscovered(
	ctx context.Context,
	process *ent.MonitoringProcess,
	credentialID string,
	templates []*ent.PromptTemplate,
	listings []models.ArticleListing,
) (int, error) {
	existing, err := s.client.WorkRecord.Query().
		Where(
			workrecord.ProcessIDEQ(process.ID),
			workrecord.CredentialIDEQ(credentialID),
		).
		Select(workrecord.FieldTemplateID, workrecord.FieldUpstreamArticleID).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load known records for process %s: %w", process.ID, err)
	}
	known := make(map[string]bool, len(existing))
	for _, record := range existing {
		known[record.TemplateID+"\x00"+record.UpstreamArticleID] = true
	}

	var builders []*ent.WorkRecordCreate
	for _, listing := range listings {
		for _, template := range templates {
			if known[template.ID+"\x00"+listing.ID] {
				continue
			}
			builders = append(builders, s.newDiscoveredRecord(process, credentialID, template.ID, listing))
		}
	}
	if len(builders) == 0 {
		return 0, nil
	}

	err = s.client.WorkRecord.CreateBulk(builders...).
		OnConflict(
			sql.ConflictColumns(
				workrecord.FieldProcessID,
				workrecord.FieldCredentialID,
				workrecord.FieldTemplateID,
				workrecord.FieldUpstreamArticleID,
			),
		).
		DoNothing().
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to insert discovered records for process %s: %w", process.ID, err)
	}
	return len(builders), nil
}

// newDiscoveredRecord builds one prospective work record from an
// article listing.
func (s *Stages) newDiscoveredRecord(
	process *ent.MonitoringProcess,
	credentialID, templateID string,
	listing models.ArticleListing,
) *ent.WorkRecordCreate {
	create := s.client.WorkRecord.Create().
		SetID(uuid.New().String()).
		SetProcessID(process.ID).
		SetUserID(process.UserID).
		SetCredentialID(credentialID).
		SetTemplateID(templateID).
		SetLlmProviderID(process.LlmProviderID).
		SetUpstreamArticleID(listing.ID).
		SetArticleTitle(listing.Title).
		SetArticleAuthor(listing.Author).
		SetArticleCategory(listing.Category).
		SetArticleURL(listing.URL)
	if listing.EditedAt != nil {
		create = create.SetArticleEditedAt(*listing.EditedAt)
	}
	if listing.PublishedAt != nil {
		create = create.SetArticlePublishedAt(*listing.PublishedAt)
	}
	return create
}
