package readstore

import (
	"context"
	"time"

	"portfolio-api/internal/domain/schedule"
	"portfolio-api/internal/infra"
	"portfolio-api/internal/infra/db"
	"portfolio-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(db db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

func (s *AvailabilityReadStore) ActiveTemplatesByWeekday(ctx context.Context, weekday int) ([]*schedule.Template, error) {
	query := `
		SELECT id, day_of_week, start_time, duration_minutes, is_active, created_at, updated_at
		FROM slot_templates
		WHERE is_active AND day_of_week = $1
		ORDER BY start_time
	`

	rows, err := s.db.Query(ctx, query, weekday)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active templates", err)
	}
	defer rows.Close()

	var templates []*schedule.Template
	for rows.Next() {
		var (
			id              uuid.UUID
			dayOfWeek       int
			startTime       string
			durationMinutes int
			isActive        bool
			createdAt       pgtype.Timestamptz
			updatedAt       pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &dayOfWeek, &startTime, &durationMinutes, &isActive, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan template", err)
		}

		template, err := reconstructTemplate(id, dayOfWeek, startTime, durationMinutes, isActive, createdAt, updatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt template row", err)
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read templates", err)
	}

	return templates, nil
}

func (s *AvailabilityReadStore) ActiveReservationTemplateIDs(ctx context.Context, date time.Time) (map[uuid.UUID]bool, error) {
	query := `
		SELECT template_id
		FROM reservations
		WHERE slot_date = $1 AND status IN ('pending', 'confirmed')
	`

	rows, err := s.db.Query(ctx, query, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reserved slots", err)
	}
	defer rows.Close()

	reserved := make(map[uuid.UUID]bool)
	for rows.Next() {
		var templateID uuid.UUID
		if err := rows.Scan(&templateID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reserved slot", err)
		}
		reserved[templateID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reserved slots", err)
	}

	return reserved, nil
}

func reconstructTemplate(
	id uuid.UUID,
	dayOfWeek int,
	startTime string,
	durationMinutes int,
	isActive bool,
	createdAt, updatedAt pgtype.Timestamptz,
) (*schedule.Template, error) {
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
