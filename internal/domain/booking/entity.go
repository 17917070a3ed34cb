package booking

import (
	"errors"
	"time"

	"portfolio-api/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrTemplateInactive = errors.New("slot template is inactive")
	ErrWeekdayMismatch  = errors.New("date does not fall on the template weekday")
	ErrPastDate         = errors.New("date is in the past")
)

// Reservation is a booking request against one materialized slot. At most one
// reservation with an active status may exist per (template, date) pair; that
// invariant is enforced by the storage layer, not here.
type Reservation struct {
	id         uuid.UUID
	templateID uuid.UUID
	date       time.Time
	contact    Contact
	note       Note
	status     Status
	adminNotes *string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(now time.Time, template *schedule.Template, date time.Time, contact Contact, note Note) (*Reservation, error) {
	if !template.IsActive() {
		return nil, ErrTemplateInactive
	}
	if !template.DayOfWeek().Matches(date) {
		return nil, ErrWeekdayMismatch
	}
	if schedule.BeforeDate(date, now) {
		return nil, ErrPastDate
	}

	return &Reservation{
		id:         uuid.New(),
		templateID: template.ID(),
		date:       dateOnly(date),
		contact:    contact,
		note:       note,
		status:     StatusPending,
	}, nil
}

func ReconstructReservation(
	id, templateID uuid.UUID,
	date time.Time,
	contact Contact,
	note Note,
	status Status,
	adminNotes *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		templateID: templateID,
		date:       date,
		contact:    contact,
		note:       note,
		status:     status,
		adminNotes: adminNotes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) TemplateID() uuid.UUID { return r.templateID }
func (r *Reservation) Date() time.Time       { return r.date }
func (r *Reservation) Contact() Contact      { return r.contact }
func (r *Reservation) Note() Note            { return r.note }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) AdminNotes() *string   { return r.adminNotes }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
