package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/scraper"
)

// RunPosting is the posting stage pass: publish every generated
// comment upstream with the credential that discovered its article.
// Transient failures increment the record's retry count and leave it
// generated until the retry budget runs out; permanent failures and
// prefix violations fail the record immediately.
func (s *Stages) RunPosting(ctx context.Context, task *ent.StageTask) error {
	process, ok, err := s.runningProcess(ctx, task.ProcessID)
	if err != nil || !ok {
		return err
	}
	if process.GenerateOnly {
		// Defensive: the coordinator never spawns posting tasks for
		// generate-only processes.
		s.logger.Warn("Posting task on generate-only process ignored", "process_id", process.ID)
		return nil
	}

	records, err := s.recordsInStatus(ctx, process.ID, workrecord.StatusGenerated)
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

	posted, failures := 0, 0
	for _, cred := range creds {
		credRecords := byCredential[cred.ID]
		if len(credRecords) == 0 {
			continue
		}

		n, f, err := s.postForCredential(ctx, process.ID, cred, credRecords)
		posted += n
		failures += f
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			s.logger.Warn("Posting pass failed for credential",
				"process_id", process.ID, "credential_id", cred.ID, "error", err)
		}
	}

	if posted > 0 || failures > 0 {
		update := s.client.MonitoringProcess.UpdateOneID(process.ID)
		if posted > 0 {
			update = update.AddCommentsPosted(posted)
		}
		if failures > 0 {
			update = update.AddErrorsPosting(failures)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update posting counters: %w", err)
		}
	}

	s.logger.Info("Posting pass complete",
		"process_id", process.ID, "posted", posted, "failures", failures)
	return nil
}

// postForCredential publishes comments with one login, pacing posts
// with the posting delay. Returns (posted, failed-records).
func (s *Stages) postForCredential(ctx context.Context, processID string, cred credentialLogin, records []*ent.WorkRecord) (int, int, error) {
	client, err := s.login(ctx, cred)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = client.Logout(context.WithoutCancel(ctx)) }()

	posted, failed := 0, 0
	for i, record := range records {
		if i > 0 {
			if err := pause(ctx, s.cfg.PostingDelay); err != nil {
				return posted, failed, err
			}
		}

		comment := deref(record.CommentContent)
		if err := ValidateComment(s.cfg.CommentPrefix, comment); err != nil {
			ok, ferr := s.failRecord(ctx, record.ID, workrecord.StatusGenerated, err)
			if ferr != nil {
				return posted, failed, ferr
			}
			if ok {
				failed++
			}
			continue
		}

		// Claim the record before the external call: the guarded flip
		// to posted makes this pass the only one submitting the
		// comment. The platform returns no comment ID; the
		// deterministic marker stands in. A crash between claim and
		// post loses one comment, it never posts twice.
		marker := CommentMarker(processID, record.UpstreamArticleID, record.ID)
		claimed, err := s.transitionRecord(ctx, record.ID, workrecord.StatusGenerated, func(u *ent.WorkRecordUpdate) {
			u.SetStatus(workrecord.StatusPosted).
				SetUpstreamCommentID(marker).
				SetPostedAt(time.Now())
		})
		if err != nil {
			return posted, failed, err
		}
		if !claimed {
			continue
		}

		if err := client.PostComment(ctx, record.UpstreamArticleID, comment); err != nil {
			handled, herr := s.handlePostFailure(ctx, record, err)
			if herr != nil {
				return posted, failed, herr
			}
			failed += handled
			continue
		}
		posted++
	}
	return posted, failed, nil
}

// handlePostFailure resolves a claimed record after its post failed.
// A transient failure inside the retry budget releases the claim so
// the next pass retries; everything else is terminal. Returns 1 when
// the record was failed, 0 otherwise.
func (s *Stages) handlePostFailure(ctx context.Context, record *ent.WorkRecord, cause error) (int, error) {
	if errors.Is(cause, context.Canceled) {
		// Revocation interrupted the post; hand the claim back
		// without charging the retry budget.
		_, err := s.transitionRecord(ctx, record.ID, workrecord.StatusPosted, releasePostClaim(0, ""))
		return 0, err
	}

	if scraper.IsTransient(cause) && record.RetryCount+1 < s.cfg.MaxPostRetries {
		if _, err := s.transitionRecord(ctx, record.ID, workrecord.StatusPosted, releasePostClaim(1, cause.Error())); err != nil {
			return 0, err
		}
		s.logger.Debug("Transient post failure, will retry",
			"record_id", record.ID, "retry_count", record.RetryCount+1, "error", cause)
		return 0, nil
	}

	if _, err := s.failRecord(ctx, record.ID, workrecord.StatusPosted, cause); err != nil {
		return 0, err
	}
	return 1, nil
}

// releasePostClaim moves a claimed record back to generated, undoing
// the optimistic posted fields.
func releasePostClaim(retryDelta int, errorMessage string) func(*ent.WorkRecordUpdate) {
	return func(u *ent.WorkRecordUpdate) {
		u.SetStatus(workrecord.StatusGenerated).
			ClearUpstreamCommentID().
			ClearPostedAt()
		if retryDelta > 0 {
			u.AddRetryCount(retryDelta)
		}
		if errorMessage != "" {
			u.SetErrorMessage(errorMessage)
		}
	}
}
