package rss_db

import (
	"context"
	_ "embed"
	"fmt"

	"rss-reader/utils/logger"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the idempotent schema.
func (r *RSSDBRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to apply schema", "error", err)
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Logger.InfoContext(ctx, "schema applied")
	return nil
}
