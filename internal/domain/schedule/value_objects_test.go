//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"portfolio-api/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOfWeek(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			value int
			errIs error
		}{
			{name: "sunday is the lower bound", value: 0},
			{name: "saturday is the upper bound", value: 6},
			{name: "below lower bound", value: -1, errIs: schedule.ErrInvalidDayOfWeek},
			{name: "above upper bound", value: 7, errIs: schedule.ErrInvalidDayOfWeek},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				dow, err := schedule.NewDayOfWeek(c.value)
				if c.errIs == nil {
					require.NoError(t, err)
					assert.Equal(t, c.value, dow.Int())
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("matches weekday of a date", func(t *testing.T) {
		wednesday, err := schedule.NewDayOfWeek(3)
		require.NoError(t, err)

		// 2030-01-02 is a Wednesday
		date := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)
		assert.True(t, wednesday.Matches(date))
		assert.False(t, wednesday.Matches(date.AddDate(0, 0, 1)))
	})
}

func TestTimeOfDay(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			value string
			errIs error
		}{
			{name: "midnight", value: "00:00"},
			{name: "late evening", value: "23:59"},
			{name: "missing minutes", value: "10", errIs: schedule.ErrInvalidTimeOfDay},
			{name: "hour out of range", value: "24:00", errIs: schedule.ErrInvalidTimeOfDay},
			{name: "not a time", value: "morning", errIs: schedule.ErrInvalidTimeOfDay},
			{name: "empty", value: "", errIs: schedule.ErrInvalidTimeOfDay},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				tod, err := schedule.NewTimeOfDay(c.value)
				if c.errIs == nil {
					require.NoError(t, err)
					assert.Equal(t, c.value, tod.String())
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("add minutes", func(t *testing.T) {
		start, err := schedule.NewTimeOfDay("10:00")
		require.NoError(t, err)

		assert.Equal(t, "10:45", start.AddMinutes(45).String())
		assert.Equal(t, "11:30", start.AddMinutes(90).String())
	})

	t.Run("add minutes wraps past midnight", func(t *testing.T) {
		late, err := schedule.NewTimeOfDay("23:30")
		require.NoError(t, err)

		assert.Equal(t, "00:15", late.AddMinutes(45).String())
	})

	t.Run("ordering", func(t *testing.T) {
		early, _ := schedule.NewTimeOfDay("09:00")
		late, _ := schedule.NewTimeOfDay("14:00")

		assert.True(t, early.Before(late))
		assert.False(t, late.Before(early))
		assert.False(t, early.Before(early))
	})
}

func TestDuration(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		errIs   error
	}{
		{name: "single minute", minutes: 1},
		{name: "typical meeting length", minutes: 45},
		{name: "zero", minutes: 0, errIs: schedule.ErrInvalidDuration},
		{name: "negative", minutes: -30, errIs: schedule.ErrInvalidDuration},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := schedule.NewDuration(c.minutes)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.minutes, d.Minutes())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewTemplate(t *testing.T) {
	t.Run("defaults to active", func(t *testing.T) {
		template, err := schedule.NewTemplate(3, "10:00", 45)
		require.NoError(t, err)

		assert.True(t, template.IsActive())
		assert.Equal(t, 3, template.DayOfWeek().Int())
		assert.Equal(t, "10:00", template.StartTime().String())
		assert.Equal(t, "10:45", template.EndTime().String())
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		cases := []struct {
			name      string
			dayOfWeek int
			startTime string
			duration  int
			errIs     error
		}{
			{name: "bad weekday", dayOfWeek: 9, startTime: "10:00", duration: 45, errIs: schedule.ErrInvalidDayOfWeek},
			{name: "bad start time", dayOfWeek: 3, startTime: "25:00", duration: 45, errIs: schedule.ErrInvalidTimeOfDay},
			{name: "bad duration", dayOfWeek: 3, startTime: "10:00", duration: 0, errIs: schedule.ErrInvalidDuration},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				template, err := schedule.NewTemplate(c.dayOfWeek, c.startTime, c.duration)
				require.Nil(t, template)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}
