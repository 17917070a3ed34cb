package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")
	ErrInvalidTimeOfDay = errors.New("start time must be a valid HH:MM value")
	ErrInvalidDuration  = errors.New("duration must be a positive number of minutes")
)

// DateLayout is the wire format for calendar dates across the scheduling core.
const DateLayout = "2006-01-02"

// DayOfWeek follows time.Weekday numbering: 0 = Sunday .. 6 = Saturday.
type DayOfWeek int

func NewDayOfWeek(value int) (DayOfWeek, error) {
	if value < 0 || value > 6 {
		return 0, ErrInvalidDayOfWeek
	}
	return DayOfWeek(value), nil
}

func (d DayOfWeek) Int() int {
	return int(d)
}

func (d DayOfWeek) Matches(date time.Time) bool {
	return int(date.Weekday()) == int(d)
}

// TimeOfDay is a wall-clock minute offset, carried as HH:MM on the wire.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// AddMinutes wraps past midnight, mirroring how window ends are displayed.
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	total := (t.minutes + minutes) % (24 * 60)
	return TimeOfDay{minutes: total}
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

type Duration struct {
	minutes int
}

func NewDuration(minutes int) (Duration, error) {
	if minutes <= 0 {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{minutes: minutes}, nil
}

func (d Duration) Minutes() int {
	return d.minutes
}
