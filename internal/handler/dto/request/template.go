package request

type CreateTemplateRequest struct {
	DayOfWeek       int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

type ToggleTemplateRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
