package services

import (
	"context"
	"fmt"

	"github.com/yourmoment/yourmoment/ent"
	"github.com/yourmoment/yourmoment/ent/workrecord"
	"github.com/yourmoment/yourmoment/pkg/models"
)

// defaultRecordLimit bounds unpaginated record listings.
const defaultRecordLimit = 100

// RecordService exposes work records for inspection and retry.
type RecordService struct {
	client *ent.Client
}

// NewRecordService creates a new RecordService.
func NewRecordService(client *ent.Client) *RecordService {
	if client == nil {
		panic("NewRecordService: client must not be nil")
	}
	return &RecordService{client: client}
}

// List returns the user's work records, newest first, narrowed by the
// optional process and status filters.
func (s *RecordService) List(ctx context.Context, userID string, filter models.ListRecordsFilter) ([]*ent.WorkRecord, error) {
	query := s.client.WorkRecord.Query().
		Where(workrecord.UserIDEQ(userID))

	if filter.ProcessID != "" {
		query = query.Where(workrecord.ProcessIDEQ(filter.ProcessID))
	}
	if filter.Status != "" {
		status := workrecord.Status(filter.Status)
		if err := workrecord.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "unknown record status")
		}
		query = query.Where(workrecord.StatusEQ(status))
	}

	limit := filter.Limit
	if limit <= 0 || limit > defaultRecordLimit {
		limit = defaultRecordLimit
	}

	records, err := query.
		Order(ent.Desc(workrecord.FieldCreatedAt)).
		Limit(limit).
		Offset(filter.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// Get loads a work record, enforcing ownership.
func (s *RecordService) Get(ctx context.Context, userID, recordID string) (*ent.WorkRecord, error) {
	record, err := s.client.WorkRecord.Get(ctx, recordID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: record %s", ErrNotFound, recordID)
		}
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	if record.UserID != userID {
		return nil, fmt.Errorf("%w: record %s", ErrForbidden, recordID)
	}
	return record, nil
}

// Retry resets a failed record to the furthest status its stored data
// still supports, so the pipeline picks it up again on the next pass:
// a record with a generated comment re-enters at posting, one with
// article content at generation, anything else at preparation.
func (s *RecordService) Retry(ctx context.Context, userID, recordID string) (*ent.WorkRecord, error) {
	record, err := s.Get(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status != workrecord.StatusFailed {
		return nil, fmt.Errorf("%w: record %s is %s, only failed records can be retried",
			ErrInvalidState, recordID, record.Status)
	}

	status := workrecord.StatusDiscovered
	switch {
	case record.CommentContent != nil && *record.CommentContent != "":
		status = workrecord.StatusGenerated
	case record.ArticleContent != nil:
		status = workrecord.StatusPrepared
	}

	retried, err := record.Update().
		SetStatus(status).
		SetRetryCount(0).
		ClearErrorMessage().
		ClearFailedAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retry record: %w", err)
	}
	return retried, nil
}
