package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workrecord"
)

// RunPreparation is the preparation stage pass: fetch the full content
// of every discovered article and snapshot it onto the record. A fetch
// failure fails the record with its error; failures never spill over
// to the other records of the pass.
func (s *Stages) RunPreparation(ctx context.Context, task *ent.StageTask) error {
	process, ok, err := s.runningProcess(ctx, task.ProcessID)
	if err != nil || !ok {
		return err
	}

	records, err := s.recordsInStatus(ctx, process.ID, workrecord.StatusDiscovered)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	creds, err := s.activeCredentials(ctx, process)
	if err != nil {
		return err
	}
	byCredential := groupByCredential(records)

	prepared, failures := 0, 0
	for _, cred := range creds {
		credRecords := byCredential[cred.ID]
		if len(credRecords) == 0 {
			continue
		}

		n, f, err := s.prepareForCredential(ctx, cred, credRecords)
		prepared += n
		failures += f
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			s.logger.Warn("Preparation pass failed for credential",
				"process_id", process.ID, "credential_id", cred.ID, "error", err)
		}
	}

	if prepared > 0 || failures > 0 {
		update := s.client.MonitoringProcess.UpdateOneID(process.ID)
		if prepared > 0 {
			update = update.AddArticlesPrepared(prepared)
		}
		if failures > 0 {
			update = update.AddErrorsPreparation(failures)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update preparation counters: %w", err)
		}
	}

	s.logger.Info("Preparation pass complete",
		"process_id", process.ID, "prepared", prepared, "failures", failures)
	return nil
}

// prepareForCredential fetches articles with one login, pacing fetches
// with the preparation delay. Returns (prepared, failed-records).
func (s *Stages) prepareForCredential(ctx context.Context, cred credentialLogin, records []*ent.WorkRecord) (int, int, error) {
	client, err := s.login(ctx, cred)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = client.Logout(context.WithoutCancel(ctx)) }()

	prepared, failed := 0, 0
	for i, record := range records {
		if i > 0 {
			if err := pause(ctx, s.cfg.PreparationDelay); err != nil {
				return prepared, failed, err
			}
		}

		detail, err := client.FetchArticle(ctx, record.UpstreamArticleID)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return prepared, failed, ctx.Err()
			}
			ok, ferr := s.failRecord(ctx, record.ID, workrecord.StatusDiscovered, err)
			if ferr != nil {
				return prepared, failed, ferr
			}
			if ok {
				failed++
			}
			continue
		}

		ok, err := s.transitionRecord(ctx, record.ID, workrecord.StatusDiscovered, func(u *ent.WorkRecordUpdate) {
			u.SetStatus(workrecord.StatusPrepared).
				SetArticleTitle(orDefault(detail.Title, record.ArticleTitle)).
				SetArticleAuthor(orDefault(detail.Author, record.ArticleAuthor)).
				SetArticleContent(detail.Content).
				SetArticleRawHTML(detail.RawHTML).
				SetArticleScrapedAt(detail.ScrapedAt)
		})
		if err != nil {
			return prepared, failed, err
		}
		if ok {
			prepared++
		}
	}
	return prepared, failed, nil
}

func groupByCredential(records []*ent.WorkRecord) map[string][]*ent.WorkRecord {
	grouped := make(map[string][]*ent.WorkRecord)
	for _, record := range records {
		grouped[record.CredentialID] = append(grouped[record.CredentialID], record)
	}
	return grouped
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
