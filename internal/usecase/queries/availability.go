package queries

import (
	"context"
	"time"

	"portfolio-api/internal/domain/schedule"
	"portfolio-api/internal/pkg/clock"
	"portfolio-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDate = errs.New("invalid date")

type AvailabilityReadStore interface {
	ActiveTemplatesByWeekday(ctx context.Context, weekday int) ([]*schedule.Template, error)
	// ActiveReservationTemplateIDs returns the template ids holding a pending
	// or confirmed reservation on the given date.
	ActiveReservationTemplateIDs(ctx context.Context, date time.Time) (map[uuid.UUID]bool, error)
}

type AvailabilityQueries interface {
	GetAvailableSlots(ctx context.Context, date string) ([]schedule.SlotInstance, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store AvailabilityReadStore, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clock}
}

// GetAvailableSlots materializes the bookable windows for one date. Past
// dates yield an empty list, not an error: the caller asked a well-formed
// question with a well-defined answer.
func (q *availabilityQueriesImpl) GetAvailableSlots(ctx context.Context, date string) ([]schedule.SlotInstance, error) {
	day, err := time.Parse(schedule.DateLayout, date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	today := q.clock.Now()
	if schedule.BeforeDate(day, today) {
		return []schedule.SlotInstance{}, nil
	}

	templates, err := q.store.ActiveTemplatesByWeekday(ctx, int(day.Weekday()))
	if err != nil {
		return nil, err
	}

	reserved, err := q.store.ActiveReservationTemplateIDs(ctx, day)
	if err != nil {
		return nil, err
	}

	return schedule.Materialize(day, today, templates, reserved), nil
}
