package api

import (
	"errors"
	"net/http"

	reqdto "portfolio-api/internal/handler/dto/request"
	resdto "portfolio-api/internal/handler/dto/response"
	"portfolio-api/internal/usecase/commands"
	"portfolio-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	pageCommands commands.PageCommands
	pageQueries  queries.PageQueries
}

func NewPageHandler(pageCommands commands.PageCommands, pageQueries queries.PageQueries) *PageHandler {
	return &PageHandler{
		pageCommands: pageCommands,
		pageQueries:  pageQueries,
	}
}

// @Summary List page settings
// @Description List the enablement settings for all configured paths
// @Tags admin-pages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PageResponse
// @Failure 401 {object} map[string]string
// @Router /admin/pages [get]
func (h *PageHandler) List(c *gin.Context) {
	views, err := h.pageQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromPageList(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Set page enablement
// @Description Enable or disable a path, optionally with a redirect target
// @Tags admin-pages
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SetPageRequest true "Page setting"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/pages [put]
func (h *PageHandler) Set(c *gin.Context) {
	var req reqdto.SetPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.pageCommands.Set(c.Request.Context(), req.Path, *req.IsEnabled, req.RedirectTo); err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid page setting",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
