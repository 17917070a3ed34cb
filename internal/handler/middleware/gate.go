package middleware

import (
	"log/slog"
	"net/http"

	"portfolio-api/internal/infra"
	"portfolio-api/internal/infra/metrics"
	"portfolio-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PageGate enforces per-path enablement with a redirect fallback.
//
// The gate fails open: when the enablement check errors the request is
// served, and the occurrence is counted so it stays visible in metrics.
type PageGate struct {
	pages   queries.PageReadStore
	metrics *metrics.Metrics
}

func NewPageGate(pages queries.PageReadStore, metrics *metrics.Metrics) *PageGate {
	return &PageGate{pages: pages, metrics: metrics}
}

func (g *PageGate) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := g.pages.FindByPath(c.Request.Context(), c.Request.URL.Path)
		if err != nil {
			// An unconfigured path is simply enabled.
			if !infra.IsKind(err, infra.KindNotFound) {
				g.metrics.GateFailOpens.Inc()
				slog.Warn("page gate check failed, serving anyway", "path", c.Request.URL.Path, "error", err.Error())
			}
			c.Next()
			return
		}

		if page.IsEnabled {
			c.Next()
			return
		}

		g.metrics.GateRedirects.Inc()
		if page.RedirectTo != nil {
			c.Redirect(http.StatusFound, *page.RedirectTo)
			c.Abort()
			return
		}

		c.JSON(http.StatusNotFound, gin.H{
			"error": "Page not available",
		})
		c.Abort()
	}
}
