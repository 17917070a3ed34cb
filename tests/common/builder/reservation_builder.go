//go:build unit || e2e

package builder

import (
	"time"

	reqdto "portfolio-api/internal/handler/dto/request"
	"portfolio-api/internal/usecase/commands"
	"portfolio-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	TemplateID uuid.UUID
	Date       string
	Name       string
	Email      string
	Note       *string
	Status     string
	AdminNotes *string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		TemplateID: uuid.New(),
		Date:       "2030-01-02", // a Wednesday
		Name:       "Jane Visitor",
		Email:      "jane@example.com",
		Status:     "pending",
	}
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		TemplateID: b.TemplateID,
		Date:       b.Date,
		Name:       b.Name,
		Email:      b.Email,
		Note:       b.Note,
	}
}

func (b *ReservationBuilder) BuildInput() commands.CreateReservationInput {
	note := ""
	if b.Note != nil {
		note = *b.Note
	}
	return commands.CreateReservationInput{
		TemplateID: b.TemplateID,
		Date:       b.Date,
		Name:       b.Name,
		Email:      b.Email,
		Note:       note,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:           b.ID,
		TemplateID:   b.TemplateID,
		Date:         b.Date,
		ContactName:  b.Name,
		ContactEmail: b.Email,
		Note:         b.Note,
		Status:       b.Status,
		AdminNotes:   b.AdminNotes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithNote(note string) *ReservationBuilder {
	b.Note = &note
	return b
}
