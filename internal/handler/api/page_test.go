//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"portfolio-api/internal/handler/api"
	resdto "portfolio-api/internal/handler/dto/response"
	"portfolio-api/internal/usecase/commands"
	"portfolio-api/internal/usecase/queries"
	"portfolio-api/tests/common/httptest"
	commandsmock "portfolio-api/tests/mock/commands"
	queriesmock "portfolio-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PageHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPageCommands
	mockQueries  *queriesmock.MockPageQueries
	handler      *api.PageHandler
}

func (s *PageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPageCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPageQueries(s.mockCtrl)
	s.handler = api.NewPageHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/pages", s.handler.List)
	s.router.PUT("/admin/pages", s.handler.Set)
}

func (s *PageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPageHandlerSuite(t *testing.T) {
	suite.Run(t, new(PageHandlerTestSuite))
}

func (s *PageHandlerTestSuite) TestList() {
	url := "/admin/pages"

	s.Run("success: returns all page settings", func() {
		redirect := "/maintenance"
		views := []*queries.PageView{
			{Path: "/booking", IsEnabled: true, UpdatedAt: time.Now()},
			{Path: "/contact", IsEnabled: false, RedirectTo: &redirect, UpdatedAt: time.Now()},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.PageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("/booking", response[0].Path)
		s.Require().NotNil(response[1].RedirectTo)
		s.Equal("/maintenance", *response[1].RedirectTo)
	})

	s.Run("error: storage failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *PageHandlerTestSuite) TestSet() {
	url := "/admin/pages"

	s.Run("success: disables a path with a redirect", func() {
		redirect := "/maintenance"
		s.mockCommands.EXPECT().Set(gomock.Any(), "/booking", false, &redirect).
			Return(nil).Times(1)

		body := map[string]any{"path": "/booking", "is_enabled": false, "redirect_to": redirect}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: re-enables a path", func() {
		s.mockCommands.EXPECT().Set(gomock.Any(), "/booking", true, nil).
			Return(nil).Times(1)

		body := map[string]any{"path": "/booking", "is_enabled": true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: missing fields", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing path", body: map[string]any{"is_enabled": true}},
			{name: "missing is_enabled", body: map[string]any{"path": "/booking"}},
		}

		for _, c := range cases {
			s.Run(c.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, c.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: domain validation", func() {
		s.mockCommands.EXPECT().Set(gomock.Any(), "booking", true, nil).
			Return(commands.ErrDomainValidation).Times(1)

		body := map[string]any{"path": "booking", "is_enabled": true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid page setting")
	})
}
