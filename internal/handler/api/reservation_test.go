//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"portfolio-api/internal/handler/api"
	resdto "portfolio-api/internal/handler/dto/response"
	"portfolio-api/internal/usecase/commands"
	"portfolio-api/internal/usecase/queries"
	"portfolio-api/tests/common/builder"
	"portfolio-api/tests/common/httptest"
	"portfolio-api/tests/common/testutil"
	commandsmock "portfolio-api/tests/mock/commands"
	queriesmock "portfolio-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/admin/reservations", s.handler.List)
	s.router.GET("/admin/reservations/:id", s.handler.Get)
	s.router.PATCH("/admin/reservations/:id", s.handler.UpdateStatus)
	s.router.DELETE("/admin/reservations/:id", s.handler.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildDTO()

	s.Run("success: returns 201 with the created reservation", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildInput()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing template_id", mutate: testutil.Field("template_id", nil)},
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
		}

		for _, c := range cases {
			s.Run(c.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, c.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid reservation data",
			},
			{
				name:           "slot unavailable",
				commandsError:  commands.ErrSlotUnavailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Slot is not available",
			},
			{
				name:           "slot already booked",
				commandsError:  commands.ErrSlotConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot is already booked",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildInput()).
					Return(nil, c.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, c.expectedStatus, c.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	url := "/admin/reservations"

	s.Run("success: returns all reservations", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().BuildView(),
			builder.NewReservationBuilder().WithStatus("confirmed").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: storage failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: returns the reservation", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/"+view.ID.String(), nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String()

	s.Run("success: returns the updated reservation", func() {
		view := builder.NewReservationBuilder().WithStatus("confirmed").BuildView()
		notes := "payment received"
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "confirmed", &notes).
			Return(view, nil).Times(1)

		body := map[string]any{"status": "confirmed", "admin_notes": notes}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: malformed id", func() {
		body := map[string]any{"status": "confirmed"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/reservations/not-a-uuid", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid status",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid reservation status",
			},
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "cancelled", nil).
					Return(nil, c.commandsError).Times(1)

				body := map[string]any{"status": "cancelled"}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, c.expectedStatus, c.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: reservation not found", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
