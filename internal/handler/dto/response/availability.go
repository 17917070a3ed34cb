package response

import (
	"portfolio-api/internal/domain/schedule"

	"github.com/google/uuid"
)

type SlotResponse struct {
	TemplateID uuid.UUID `json:"template_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
}

type AvailabilityResponse struct {
	Date  string          `json:"date"`
	Slots []*SlotResponse `json:"slots"`
}

func FromSlots(date string, slots []schedule.SlotInstance) *AvailabilityResponse {
	res := make([]*SlotResponse, len(slots))
	for i, s := range slots {
		res[i] = &SlotResponse{
			TemplateID: s.TemplateID,
			Date:       s.Date,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
		}
	}
	return &AvailabilityResponse{Date: date, Slots: res}
}
