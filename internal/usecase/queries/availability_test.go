//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-api/internal/domain/schedule"
	"portfolio-api/internal/pkg/clock"
	"portfolio-api/internal/usecase/queries"
	queriesmock "portfolio-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockAvailabilityReadStore
	clock     *clock.MockClock
	queries   queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockAvailabilityReadStore(s.mockCtrl)
	// 2030-01-01 is a Tuesday
	s.clock = clock.NewMockClock(time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC))
	s.queries = queries.NewAvailabilityQueries(s.mockStore, s.clock)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestGetAvailableSlots() {
	s.Run("error: malformed date", func() {
		_, err := s.queries.GetAvailableSlots(context.Background(), "01/02/2030")
		s.ErrorIs(err, queries.ErrInvalidDate)
	})

	s.Run("success: past date yields empty list without touching storage", func() {
		slots, err := s.queries.GetAvailableSlots(context.Background(), "2029-12-31")

		s.NoError(err)
		s.NotNil(slots)
		s.Empty(slots)
	})

	s.Run("success: materializes free slots for the requested date", func() {
		template, err := schedule.NewTemplate(3, "10:00", 45)
		s.Require().NoError(err)
		booked, err := schedule.NewTemplate(3, "14:00", 30)
		s.Require().NoError(err)

		// 2030-01-02 is a Wednesday
		date := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)
		s.mockStore.EXPECT().ActiveTemplatesByWeekday(gomock.Any(), 3).
			Return([]*schedule.Template{template, booked}, nil).Times(1)
		s.mockStore.EXPECT().ActiveReservationTemplateIDs(gomock.Any(), date).
			Return(map[uuid.UUID]bool{booked.ID(): true}, nil).Times(1)

		slots, err := s.queries.GetAvailableSlots(context.Background(), "2030-01-02")

		s.NoError(err)
		s.Require().Len(slots, 1)
		s.Equal(template.ID(), slots[0].TemplateID)
		s.Equal("2030-01-02", slots[0].Date)
		s.Equal("10:00", slots[0].StartTime)
		s.Equal("10:45", slots[0].EndTime)
	})

	s.Run("error: storage failure is passed through", func() {
		storeErr := errors.New("connection refused")
		s.mockStore.EXPECT().ActiveTemplatesByWeekday(gomock.Any(), 3).
			Return(nil, storeErr).Times(1)

		_, err := s.queries.GetAvailableSlots(context.Background(), "2030-01-02")
		s.ErrorIs(err, storeErr)
	})
}
