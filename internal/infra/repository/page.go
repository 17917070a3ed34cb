package repository

import (
	"context"

	"portfolio-api/internal/infra/db"
	"portfolio-api/internal/pkg/pgconv"
)

type PageRepository struct {
	db db.DBTX
}

func NewPageRepository(db db.DBTX) *PageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) Upsert(ctx context.Context, path string, isEnabled bool, redirectTo *string) error {
	query := `
		INSERT INTO pages (path, is_enabled, redirect_to, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (path)
		DO UPDATE SET is_enabled = EXCLUDED.is_enabled, redirect_to = EXCLUDED.redirect_to, updated_at = now()
	`

	_, err := r.db.Exec(ctx, query, path, isEnabled, pgconv.StringPtrToPgtype(redirectTo))
	if err != nil {
		return wrapPgErr("failed to upsert page setting", err)
	}

	return nil
}
