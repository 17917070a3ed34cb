package response

import (
	"time"

	"portfolio-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	TemplateID   uuid.UUID `json:"template_id"`
	Date         string    `json:"date"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	Note         *string   `json:"note,omitempty"`
	Status       string    `json:"status"`
	AdminNotes   *string   `json:"admin_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           v.ID,
		TemplateID:   v.TemplateID,
		Date:         v.Date,
		ContactName:  v.ContactName,
		ContactEmail: v.ContactEmail,
		Note:         v.Note,
		Status:       v.Status,
		AdminNotes:   v.AdminNotes,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromReservationList(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}
