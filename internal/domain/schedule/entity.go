package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Template is a recurring weekly availability rule. Concrete bookable windows
// are derived from it per query date and never persisted.
type Template struct {
	id        uuid.UUID
	dayOfWeek DayOfWeek
	startTime TimeOfDay
	duration  Duration
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTemplate(dayOfWeek int, startTime string, durationMinutes int) (*Template, error) {
	dow, err := NewDayOfWeek(dayOfWeek)
	if err != nil {
		return nil, err
	}

	start, err := NewTimeOfDay(startTime)
	if err != nil {
		return nil, err
	}

	duration, err := NewDuration(durationMinutes)
	if err != nil {
		return nil, err
	}

	return &Template{
		id:        uuid.New(),
		dayOfWeek: dow,
		startTime: start,
		duration:  duration,
		isActive:  true,
	}, nil
}

func ReconstructTemplate(
	id uuid.UUID,
	dayOfWeek DayOfWeek,
	startTime TimeOfDay,
	duration Duration,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Template {
	return &Template{
		id:        id,
		dayOfWeek: dayOfWeek,
		startTime: startTime,
		duration:  duration,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Template) EndTime() TimeOfDay {
	return t.startTime.AddMinutes(t.duration.Minutes())
}

func (t *Template) ID() uuid.UUID        { return t.id }
func (t *Template) DayOfWeek() DayOfWeek { return t.dayOfWeek }
func (t *Template) StartTime() TimeOfDay { return t.startTime }
func (t *Template) Duration() Duration   { return t.duration }
func (t *Template) IsActive() bool       { return t.isActive }
func (t *Template) CreatedAt() time.Time { return t.createdAt }
func (t *Template) UpdatedAt() time.Time { return t.updatedAt }
