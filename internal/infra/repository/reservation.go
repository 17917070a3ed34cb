package repository

import (
	"context"

	"portfolio-api/internal/domain/booking"
	"portfolio-api/internal/infra"
	"portfolio-api/internal/infra/db"
	"portfolio-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts the reservation inside the caller's transaction. A unique
// violation on the active-slot index surfaces as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *booking.Reservation) error {
	query := `
		INSERT INTO reservations (id, template_id, slot_date, contact_name, contact_email, note, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var note *string
	if !res.Note().IsEmpty() {
		value := res.Note().String()
		note = &value
	}

	_, err := tx.Exec(ctx, query,
		res.ID(),
		res.TemplateID(),
		pgconv.DateToPgtype(res.Date()),
		res.Contact().Name(),
		res.Contact().Email(),
		pgconv.StringPtrToPgtype(note),
		res.Status().String(),
	)
	if err != nil {
		return wrapPgErr("failed to create reservation", err)
	}

	return nil
}

// UpdateStatus sets the status and, when adminNotes is non-nil, replaces the
// notes. A nil adminNotes leaves the stored notes untouched; an empty string
// clears them back to NULL.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, adminNotes *string) error {
	query := `
		UPDATE reservations
		SET status = $2,
		    admin_notes = CASE WHEN $3::bool THEN $4 ELSE admin_notes END,
		    updated_at = now()
		WHERE id = $1
	`

	setNotes, notes := notesUpdate(adminNotes)
	tag, err := r.db.Exec(ctx, query, id, status.String(), setNotes, notes)
	if err != nil {
		return wrapPgErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

// notesUpdate maps the request tri-state onto the update arguments: nil
// means keep, empty string means clear to NULL, anything else replaces.
func notesUpdate(adminNotes *string) (bool, pgtype.Text) {
	if adminNotes == nil {
		return false, pgtype.Text{Valid: false}
	}
	if *adminNotes == "" {
		return true, pgtype.Text{Valid: false}
	}
	return true, pgconv.StringPtrToPgtype(adminNotes)
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return wrapPgErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}
