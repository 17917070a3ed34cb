package repository

import (
	"context"

	"portfolio-api/internal/domain/schedule"
	"portfolio-api/internal/infra"
	"portfolio-api/internal/infra/db"
	"portfolio-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TemplateRepository struct {
	db db.DBTX
}

func NewTemplateRepository(db db.DBTX) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, t *schedule.Template) error {
	query := `
		INSERT INTO slot_templates (id, day_of_week, start_time, duration_minutes, is_active)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		t.ID(),
		t.DayOfWeek().Int(),
		t.StartTime().String(),
		t.Duration().Minutes(),
		t.IsActive(),
	)
	if err != nil {
		return wrapPgErr("failed to create slot template", err)
	}

	return nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Template, error) {
	query := `
		SELECT id, day_of_week, start_time, duration_minutes, is_active, created_at, updated_at
		FROM slot_templates
		WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, id)
	template, err := scanTemplate(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot template", err)
	}

	return template, nil
}

func (r *TemplateRepository) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	query := `
		UPDATE slot_templates
		SET is_active = $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, isActive)
	if err != nil {
		return wrapPgErr("failed to toggle slot template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot template not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM slot_templates WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete slot template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot template not found", nil, infra.KindNotFound)
	}

	return nil
}

type templateRow interface {
	Scan(dest ...any) error
}

func scanTemplate(row templateRow) (*schedule.Template, error) {
	var (
		id              uuid.UUID
		dayOfWeek       int
		startTime       string
		durationMinutes int
		isActive        bool
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)

	if err := row.Scan(&id, &dayOfWeek, &startTime, &durationMinutes, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	dow, err := schedule.NewDayOfWeek(dayOfWeek)
	if err != nil {
		return nil, err
	}
	start, err := schedule.NewTimeOfDay(startTime)
	if err != nil {
		return nil, err
	}
	duration, err := schedule.NewDuration(durationMinutes)
	if err != nil {
		return nil, err
	}

	return schedule.ReconstructTemplate(
		id, dow, start, duration, isActive,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
