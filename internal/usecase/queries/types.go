package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type TemplateView struct {
	ID              uuid.UUID `json:"id"`
	DayOfWeek       int       `json:"day_of_week"`
	StartTime       string    `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReservationView struct {
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

type PageView struct {
	Path       string    `json:"path"`
	IsEnabled  bool      `json:"is_enabled"`
	RedirectTo *string   `json:"redirect_to,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
