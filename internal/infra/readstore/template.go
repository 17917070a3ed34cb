package readstore

import (
	"context"

	"portfolio-api/internal/infra"
	"portfolio-api/internal/infra/db"
	"portfolio-api/internal/pkg/pgconv"
	"portfolio-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TemplateReadStore struct {
	db db.DBTX
}

func NewTemplateReadStore(db db.DBTX) *TemplateReadStore {
	return &TemplateReadStore{db: db}
}

func (s *TemplateReadStore) List(ctx context.Context) ([]*queries.TemplateView, error) {
	query := `
		SELECT id, day_of_week, start_time, duration_minutes, is_active, created_at, updated_at
		FROM slot_templates
		ORDER BY day_of_week, start_time
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slot templates", err)
	}
	defer rows.Close()

	var views []*queries.TemplateView
	for rows.Next() {
		var (
			view      queries.TemplateView
			id        uuid.UUID
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &view.DayOfWeek, &view.StartTime, &view.DurationMinutes, &view.IsActive, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot template", err)
		}
		view.ID = id
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot templates", err)
	}

	return views, nil
}
