package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// SlotInstance is a concrete bookable window on one calendar date, derived
// from a template. Recomputed on every query, never stored.
type SlotInstance struct {
	TemplateID uuid.UUID
	Date       string
	StartTime  string
	EndTime    string
}

// Materialize expands active templates into bookable windows for date.
// Dates strictly before today yield nothing: past windows are never bookable.
// Templates whose (template, date) pair already carries an active reservation
// are excluded. Output is ordered by start time.
func Materialize(date time.Time, today time.Time, templates []*Template, reserved map[uuid.UUID]bool) []SlotInstance {
	if BeforeDate(date, today) {
		return []SlotInstance{}
	}

	slots := make([]SlotInstance, 0, len(templates))
	for _, t := range templates {
		if !t.IsActive() || !t.DayOfWeek().Matches(date) {
			continue
		}
		if reserved[t.ID()] {
			continue
		}
		slots = append(slots, SlotInstance{
			TemplateID: t.ID(),
			Date:       date.Format(DateLayout),
			StartTime:  t.StartTime().String(),
			EndTime:    t.EndTime().String(),
		})
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime < slots[j].StartTime
	})

	return slots
}

// BeforeDate reports whether a falls on an earlier calendar date than b.
// Only the date fields are compared: query dates arrive parsed in UTC while
// the clock reads server-local time, and comparing instants across those
// locations would shift "today" near midnight.
func BeforeDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
