package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/llm"
)

// RunGeneration is the generation stage pass: render the prompt for
// every prepared record and produce the comment through the process's
// LLM provider. Transient LLM failures bump the record's retry count
// and leave it prepared for the next pass; permanent ones fail the
// record. Either way the failure lands in the stage error counter.
func (s *Stages) RunGeneration(ctx context.Context, task *ent.StageTask) error {
	process, ok, err := s.runningProcess(ctx, task.ProcessID)
	if err != nil || !ok {
		return err
	}

	records, err := s.recordsInStatus(ctx, process.ID, workrecord.StatusPrepared)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	settings, err := s.providerSettings(ctx, process)
	if err != nil {
		return err
	}

	templates, err := s.templatesByID(ctx, process)
	if err != nil {
		return err
	}

	nicknames, err := s.usernamesByCredential(ctx, process)
	if err != nil {
		return err
	}

	generated, failures := 0, 0
	for _, record := range records {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		template, ok := templates[record.TemplateID]
		if !ok {
			failures++
			if _, err := s.failRecord(ctx, record.ID, workrecord.StatusPrepared, fmt.Errorf("template %s no longer attached to process", record.TemplateID)); err != nil {
				return err
			}
			continue
		}

		completion, err := s.generator.Generate(ctx, settings, llm.Request{
			SystemPrompt: template.SystemPrompt,
			UserPrompt:   RenderUserPrompt(template.UserPromptTemplate, promptArticle(record), nicknames[record.CredentialID]),
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			failures++
			if llm.IsTransient(err) {
				// The record stays prepared for the next pass; process
				// expiry bounds how long this can go on.
				if _, terr := s.transitionRecord(ctx, record.ID, workrecord.StatusPrepared, func(u *ent.WorkRecordUpdate) {
					u.AddRetryCount(1).SetErrorMessage(err.Error())
				}); terr != nil {
					return terr
				}
				s.logger.Debug("Transient generation failure, will retry",
					"record_id", record.ID, "error", err)
				continue
			}
			if _, err := s.failRecord(ctx, record.ID, workrecord.StatusPrepared, err); err != nil {
				return err
			}
			continue
		}

		comment := ComposeComment(s.cfg.CommentPrefix, completion.Text)
		ok, err = s.transitionRecord(ctx, record.ID, workrecord.StatusPrepared, func(u *ent.WorkRecordUpdate) {
			u.SetStatus(workrecord.StatusGenerated).
				ClearErrorMessage().
				SetCommentContent(comment).
				SetAiModelName(completion.ModelName).
				SetAiVendorTag(settings.VendorTag).
				SetGenerationTokens(completion.TotalTokens).
				SetGenerationTimeMs(int(completion.Duration.Milliseconds()))
		})
		if err != nil {
			return err
		}
		if ok {
			generated++
		}
	}

	if generated > 0 || failures > 0 {
		update := s.client.MonitoringProcess.UpdateOneID(process.ID)
		if generated > 0 {
			update = update.AddCommentsGenerated(generated)
		}
		if failures > 0 {
			update = update.AddErrorsGeneration(failures)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update generation counters: %w", err)
		}
	}

	s.logger.Info("Generation pass complete",
		"process_id", process.ID, "generated", generated, "failures", failures)
	return nil
}

// promptArticle projects a record's article snapshot for rendering.
func promptArticle(record *ent.WorkRecord) PromptArticle {
	return PromptArticle{
		Title:    record.ArticleTitle,
		Author:   record.ArticleAuthor,
		Category: record.ArticleCategory,
		Content:  record.ArticleContent,
		RawHTML:  record.ArticleRawHTML,
	}
}

// usernamesByCredential maps the process's credential IDs to their
// myMoment usernames. Usernames only, nothing here is decrypted.
func (s *Stages) usernamesByCredential(ctx context.Context, process *ent.MonitoringProcess) (map[string]string, error) {
	creds, err := process.QueryCredentials().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials for process %s: %w", process.ID, err)
	}

	names := make(map[string]string, len(creds))
	for _, c := range creds {
		names[c.ID] = c.Username
	}
	return names, nil
}

// templatesByID loads the process's templates keyed by ID.
func (s *Stages) templatesByID(ctx context.Context, process *ent.MonitoringProcess) (map[string]*ent.PromptTemplate, error) {
	templates, err := process.QueryTemplates().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates for process %s: %w", process.ID, err)
	}

	byID := make(map[string]*ent.PromptTemplate, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}
	return byID, nil
}
