//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"portfolio-api/internal/handler/middleware"
	"portfolio-api/internal/infra"
	"portfolio-api/internal/infra/metrics"
	"portfolio-api/internal/usecase/queries"
	"portfolio-api/tests/common/httptest"
	queriesmock "portfolio-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PageGateTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockPages *queriesmock.MockPageReadStore
	metrics   *metrics.Metrics
}

func (s *PageGateTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPages = queriesmock.NewMockPageReadStore(s.mockCtrl)
	s.metrics = metrics.New(prometheus.NewRegistry())

	gate := middleware.NewPageGate(s.mockPages, s.metrics)
	s.router.GET("/booking", gate.Handler(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "served"})
	})
}

func (s *PageGateTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPageGateSuite(t *testing.T) {
	suite.Run(t, new(PageGateTestSuite))
}

func (s *PageGateTestSuite) pageView(enabled bool, redirectTo *string) *queries.PageView {
	return &queries.PageView{
		Path:       "/booking",
		IsEnabled:  enabled,
		RedirectTo: redirectTo,
		UpdatedAt:  time.Now(),
	}
}

func (s *PageGateTestSuite) TestHandler() {
	s.Run("enabled path is served", func() {
		s.mockPages.EXPECT().FindByPath(gomock.Any(), "/booking").
			Return(s.pageView(true, nil), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Zero(testutil.ToFloat64(s.metrics.GateRedirects))
	})

	s.Run("unconfigured path is served without counting a fail-open", func() {
		s.mockPages.EXPECT().FindByPath(gomock.Any(), "/booking").
			Return(nil, infra.WrapRepoErr("page setting not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Zero(testutil.ToFloat64(s.metrics.GateFailOpens))
	})

	s.Run("storage failure serves the request and counts a fail-open", func() {
		s.mockPages.EXPECT().FindByPath(gomock.Any(), "/booking").
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.GateFailOpens))
	})

	s.Run("disabled path with a redirect target returns 302", func() {
		redirect := "/maintenance"
		s.mockPages.EXPECT().FindByPath(gomock.Any(), "/booking").
			Return(s.pageView(false, &redirect), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking", nil, "")

		s.Equal(http.StatusFound, rec.Code)
		s.Equal("/maintenance", rec.Header().Get("Location"))
		s.Equal(float64(1), testutil.ToFloat64(s.metrics.GateRedirects))
	})

	s.Run("disabled path without a redirect target returns 404", func() {
		s.mockPages.EXPECT().FindByPath(gomock.Any(), "/booking").
			Return(s.pageView(false, nil), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Page not available")
	})
}
