//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"portfolio-api/internal/domain/schedule"
	"portfolio-api/internal/handler/api"
	resdto "portfolio-api/internal/handler/dto/response"
	"portfolio-api/internal/pkg/errs"
	"portfolio-api/internal/usecase/queries"
	"portfolio-api/tests/common/httptest"
	queriesmock "portfolio-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/availability", s.handler.GetSlots)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetSlots() {
	s.Run("success: returns materialized slots", func() {
		slots := []schedule.SlotInstance{
			{TemplateID: uuid.New(), Date: "2030-01-02", StartTime: "10:00", EndTime: "10:45"},
			{TemplateID: uuid.New(), Date: "2030-01-02", StartTime: "14:00", EndTime: "14:30"},
		}
		s.mockQueries.EXPECT().GetAvailableSlots(gomock.Any(), "2030-01-02").
			Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2030-01-02", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2030-01-02", response.Date)
		s.Require().Len(response.Slots, 2)
		s.Equal("10:00", response.Slots[0].StartTime)
	})

	s.Run("success: empty day still returns a list", func() {
		s.mockQueries.EXPECT().GetAvailableSlots(gomock.Any(), "2030-01-05").
			Return([]schedule.SlotInstance{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2030-01-05", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Slots)
		s.Empty(response.Slots)
	})

	s.Run("error: missing date parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date query parameter is required")
	})

	s.Run("error: malformed date", func() {
		s.mockQueries.EXPECT().GetAvailableSlots(gomock.Any(), "01/02/2030").
			Return(nil, errs.Mark(errors.New("parse error"), queries.ErrInvalidDate)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=01%2F02%2F2030", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: storage failure", func() {
		s.mockQueries.EXPECT().GetAvailableSlots(gomock.Any(), "2030-01-02").
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?date=2030-01-02", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
