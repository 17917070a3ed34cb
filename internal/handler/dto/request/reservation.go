package request

import (
	"strings"

	"portfolio-api/internal/pkg/patch"
	"portfolio-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	TemplateID uuid.UUID `json:"template_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	Email      string    `json:"email" binding:"required,email"`
	Note       *string   `json:"note,omitempty" binding:"omitempty,max=1000"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		TemplateID: r.TemplateID,
		Date:       r.Date,
		Name:       strings.TrimSpace(r.Name),
		Email:      strings.TrimSpace(r.Email),
		Note:       strings.TrimSpace(patch.Coalesce(r.Note, "")),
	}
}

// UpdateReservationRequest changes a reservation's status. AdminNotes is
// tri-state: omitted keeps the stored notes, an empty string clears them,
// any other value replaces them.
type UpdateReservationRequest struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"admin_notes,omitempty" binding:"omitempty,max=1000"`
}
