//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"portfolio-api/internal/domain/booking"
	"portfolio-api/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name        string
			contactName string
			email       string
			errIs       error
		}{
			{name: "valid contact", contactName: "Jane Visitor", email: "jane@example.com"},
			{name: "empty name", contactName: "", email: "jane@example.com", errIs: booking.ErrInvalidContactName},
			{name: "whitespace only name", contactName: "   ", email: "jane@example.com", errIs: booking.ErrInvalidContactName},
			{name: "email without at sign", contactName: "Jane", email: "jane.example.com", errIs: booking.ErrInvalidContactEmail},
			{name: "email without local part", contactName: "Jane", email: "@example.com", errIs: booking.ErrInvalidContactEmail},
			{name: "email without domain", contactName: "Jane", email: "jane@", errIs: booking.ErrInvalidContactEmail},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				contact, err := booking.NewContact(c.contactName, c.email)
				if c.errIs == nil {
					require.NoError(t, err)
					assert.Equal(t, strings.TrimSpace(c.contactName), contact.Name())
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("normalizes email", func(t *testing.T) {
		contact, err := booking.NewContact("Jane", "  Jane@Example.COM ")
		require.NoError(t, err)

		assert.Equal(t, "jane@example.com", contact.Email())
	})
}

func TestNote(t *testing.T) {
	t.Run("empty note is allowed", func(t *testing.T) {
		note, err := booking.NewNote("")
		require.NoError(t, err)
		assert.True(t, note.IsEmpty())
	})

	t.Run("note at maximum length", func(t *testing.T) {
		note, err := booking.NewNote(strings.Repeat("a", booking.MaxNoteLength))
		require.NoError(t, err)
		assert.False(t, note.IsEmpty())
	})

	t.Run("note above maximum length", func(t *testing.T) {
		_, err := booking.NewNote(strings.Repeat("a", booking.MaxNoteLength+1))
		require.ErrorIs(t, err, booking.ErrNoteTooLong)
	})

	t.Run("note is trimmed", func(t *testing.T) {
		note, err := booking.NewNote("  hello  ")
		require.NoError(t, err)
		assert.Equal(t, "hello", note.String())
	})
}

func TestStatus(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		for _, valid := range []string{"pending", "confirmed", "cancelled"} {
			status, err := booking.NewStatus(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, status.String())
		}

		_, err := booking.NewStatus("approved")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)

		_, err = booking.NewStatus("")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("only pending and confirmed occupy a slot", func(t *testing.T) {
		assert.True(t, booking.StatusPending.IsActive())
		assert.True(t, booking.StatusConfirmed.IsActive())
		assert.False(t, booking.StatusCancelled.IsActive())
	})
}

func TestNewReservation(t *testing.T) {
	// 2030-01-02 is a Wednesday
	wednesday := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)

	contact, err := booking.NewContact("Jane Visitor", "jane@example.com")
	require.NoError(t, err)
	note, err := booking.NewNote("looking forward to it")
	require.NoError(t, err)

	newTemplate := func(t *testing.T) *schedule.Template {
		t.Helper()
		template, err := schedule.NewTemplate(3, "10:00", 45)
		require.NoError(t, err)
		return template
	}

	t.Run("starts pending against the template slot", func(t *testing.T) {
		template := newTemplate(t)

		reservation, err := booking.NewReservation(now, template, wednesday, contact, note)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, reservation.ID())
		assert.Equal(t, template.ID(), reservation.TemplateID())
		assert.Equal(t, booking.StatusPending, reservation.Status())
		assert.True(t, reservation.IsActive())
	})

	t.Run("rejects inactive template", func(t *testing.T) {
		template := newTemplate(t)
		inactive := schedule.ReconstructTemplate(
			template.ID(), template.DayOfWeek(), template.StartTime(), template.Duration(),
			false, now, now,
		)

		_, err := booking.NewReservation(now, inactive, wednesday, contact, note)
		require.ErrorIs(t, err, booking.ErrTemplateInactive)
	})

	t.Run("rejects weekday mismatch", func(t *testing.T) {
		template := newTemplate(t)
		thursday := wednesday.AddDate(0, 0, 1)

		_, err := booking.NewReservation(now, template, thursday, contact, note)
		require.ErrorIs(t, err, booking.ErrWeekdayMismatch)
	})

	t.Run("rejects past dates", func(t *testing.T) {
		template := newTemplate(t)
		lastWednesday := wednesday.AddDate(0, 0, -7)

		_, err := booking.NewReservation(now, template, lastWednesday, contact, note)
		require.ErrorIs(t, err, booking.ErrPastDate)
	})

	t.Run("booking today is allowed", func(t *testing.T) {
		template := newTemplate(t)

		_, err := booking.NewReservation(wednesday, template, wednesday, contact, note)
		require.NoError(t, err)
	})

	t.Run("booking today is allowed when the clock runs behind UTC", func(t *testing.T) {
		template := newTemplate(t)
		// Same calendar day as the UTC date, but an earlier instant once
		// truncated in its own location.
		localNow := time.Date(2030, 1, 2, 8, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))

		_, err := booking.NewReservation(localNow, template, wednesday, contact, note)
		require.NoError(t, err)
	})

	t.Run("rejects yesterday when the clock runs ahead of UTC", func(t *testing.T) {
		template := newTemplate(t)
		localNow := time.Date(2030, 1, 3, 1, 0, 0, 0, time.FixedZone("UTC+9", 9*60*60))

		_, err := booking.NewReservation(localNow, template, wednesday, contact, note)
		require.ErrorIs(t, err, booking.ErrPastDate)
	})
}
