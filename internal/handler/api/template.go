package api

import (
	"errors"
	"net/http"

	reqdto "portfolio-api/internal/handler/dto/request"
	resdto "portfolio-api/internal/handler/dto/response"
	"portfolio-api/internal/usecase/commands"
	"portfolio-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TemplateHandler struct {
	templateCommands commands.TemplateCommands
	templateQueries  queries.TemplateQueries
}

func NewTemplateHandler(templateCommands commands.TemplateCommands, templateQueries queries.TemplateQueries) *TemplateHandler {
	return &TemplateHandler{
		templateCommands: templateCommands,
		templateQueries:  templateQueries,
	}
}

// @Summary List slot templates
// @Description List all recurring slot templates, active and inactive
// @Tags admin-availability
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TemplateResponse
// @Failure 401 {object} map[string]string
// @Router /admin/availability [get]
func (h *TemplateHandler) List(c *gin.Context) {
	views, err := h.templateQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromTemplateList(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Create slot template
// @Description Create a recurring weekly slot template
// @Tags admin-availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTemplateRequest true "Template request"
// @Success 201 {object} resdto.CreatedTemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/availability [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var req reqdto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.templateCommands.Create(c.Request.Context(), req.DayOfWeek, req.StartTime, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid template data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateTemplateResult(result))
}

// @Summary Toggle slot template
// @Description Activate or deactivate a slot template
// @Tags admin-availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body reqdto.ToggleTemplateRequest true "Toggle request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/availability/{id} [patch]
func (h *TemplateHandler) Toggle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid template ID format",
		})
		return
	}

	var req reqdto.ToggleTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.templateCommands.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		switch {
		case errors.Is(err, commands.ErrTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Template not found",
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

// @Summary Delete slot template
// @Description Delete a slot template, keeping past reservations as history
// @Tags admin-availability
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/availability/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid template ID format",
		})
		return
	}

	if err := h.templateCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Template not found",
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
