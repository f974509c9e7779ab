package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search over article snapshots and
// generated comments in the pipeline status views.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_work_records_article_content_gin
		ON work_records USING gin(to_tsvector('german', COALESCE(article_content, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create article_content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_work_records_comment_content_gin
		ON work_records USING gin(to_tsvector('german', COALESCE(comment_content, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create comment_content GIN index: %w", err)
	}

	return nil
}
