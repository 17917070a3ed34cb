package readstore

import (
	"context"

	"portfolio-api/internal/infra"
	"portfolio-api/internal/infra/db"
	"portfolio-api/internal/pkg/pgconv"
	"portfolio-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type PageReadStore struct {
	db db.DBTX
}

func NewPageReadStore(db db.DBTX) *PageReadStore {
	return &PageReadStore{db: db}
}

func (s *PageReadStore) FindByPath(ctx context.Context, path string) (*queries.PageView, error) {
	query := `
		SELECT path, is_enabled, redirect_to, updated_at
		FROM pages
		WHERE path = $1
	`

	var (
		view       queries.PageView
		redirectTo pgtype.Text
		updatedAt  pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, query, path).Scan(&view.Path, &view.IsEnabled, &redirectTo, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("page setting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find page setting", err)
	}

	view.RedirectTo = pgconv.StringPtrFromPgtype(redirectTo)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

func (s *PageReadStore) List(ctx context.Context) ([]*queries.PageView, error) {
	query := `
		SELECT path, is_enabled, redirect_to, updated_at
		FROM pages
		ORDER BY path
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list page settings", err)
	}
	defer rows.Close()

	var views []*queries.PageView
	for rows.Next() {
		var (
			view       queries.PageView
			redirectTo pgtype.Text
			updatedAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&view.Path, &view.IsEnabled, &redirectTo, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan page setting", err)
		}
		view.RedirectTo = pgconv.StringPtrFromPgtype(redirectTo)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read page settings", err)
	}

	return views, nil
}
