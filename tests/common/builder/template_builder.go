//go:build unit || e2e

package builder

import (
	"time"

	"portfolio-api/internal/domain/schedule"
	reqdto "portfolio-api/internal/handler/dto/request"
	"portfolio-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type TemplateBuilder struct {
	ID              uuid.UUID
	DayOfWeek       int
	StartTime       string
	DurationMinutes int
	IsActive        bool
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		ID:              uuid.New(),
		DayOfWeek:       3, // Wednesday
		StartTime:       "10:00",
		DurationMinutes: 45,
		IsActive:        true,
	}
}

func (b *TemplateBuilder) BuildDomain() (*schedule.Template, error) {
	dow, err := schedule.NewDayOfWeek(b.DayOfWeek)
	if err != nil {
		return nil, err
	}
	start, err := schedule.NewTimeOfDay(b.StartTime)
	if err != nil {
		return nil, err
	}
	duration, err := schedule.NewDuration(b.DurationMinutes)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return schedule.ReconstructTemplate(b.ID, dow, start, duration, b.IsActive, now, now), nil
}

func (b *TemplateBuilder) BuildView() *queries.TemplateView {
	now := time.Now()
	return &queries.TemplateView{
		ID:              b.ID,
		DayOfWeek:       b.DayOfWeek,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		IsActive:        b.IsActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *TemplateBuilder) BuildDTO() reqdto.CreateTemplateRequest {
	return reqdto.CreateTemplateRequest{
		DayOfWeek:       b.DayOfWeek,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
	}
}

func (b *TemplateBuilder) WithDayOfWeek(dow int) *TemplateBuilder {
	b.DayOfWeek = dow
	return b
}

func (b *TemplateBuilder) WithStartTime(start string) *TemplateBuilder {
	b.StartTime = start
	return b
}

func (b *TemplateBuilder) AsInactive() *TemplateBuilder {
	b.IsActive = false
	return b
}
