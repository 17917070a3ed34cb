package response

import (
	"time"

	"portfolio-api/internal/usecase/commands"
	"portfolio-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TemplateResponse struct {
	ID              uuid.UUID `json:"id"`
	DayOfWeek       int       `json:"day_of_week"`
	StartTime       string    `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromTemplateView(v *queries.TemplateView) (*TemplateResponse, error) {
	var resp TemplateResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromTemplateList(views []*queries.TemplateView) ([]*TemplateResponse, error) {
	res := make([]*TemplateResponse, len(views))
	for i, v := range views {
		resp, err := FromTemplateView(v)
		if err != nil {
			return nil, err
		}
		res[i] = resp
	}
	return res, nil
}

type CreatedTemplateResponse struct {
	ID              uuid.UUID `json:"id"`
	DayOfWeek       int       `json:"day_of_week"`
	StartTime       string    `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
}

func FromCreateTemplateResult(r *commands.CreateTemplateResult) *CreatedTemplateResponse {
	return &CreatedTemplateResponse{
		ID:              r.ID,
		DayOfWeek:       r.DayOfWeek,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		IsActive:        r.IsActive,
	}
}
