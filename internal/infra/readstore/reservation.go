package readstore

import (
	"context"

	"portfolio-api/internal/domain/schedule"
	"portfolio-api/internal/infra"
	"portfolio-api/internal/infra/db"
	"portfolio-api/internal/pkg/pgconv"
	"portfolio-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationColumns = `
	id, template_id, slot_date, contact_name, contact_email, note, status, admin_notes, created_at, updated_at
`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	row := s.db.QueryRow(ctx, query, id)
	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	return view, nil
}

func (s *ReservationReadStore) List(ctx context.Context) ([]*queries.ReservationView, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}

	return views, nil
}

type reservationRow interface {
	Scan(dest ...any) error
}

func scanReservationView(row reservationRow) (*queries.ReservationView, error) {
	var (
		view       queries.ReservationView
		slotDate   pgtype.Date
		note       pgtype.Text
		adminNotes pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID,
		&view.TemplateID,
		&slotDate,
		&view.ContactName,
		&view.ContactEmail,
		&note,
		&view.Status,
		&adminNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.Date = pgconv.DateFromPgtype(slotDate).Format(schedule.DateLayout)
	view.Note = pgconv.StringPtrFromPgtype(note)
	view.AdminNotes = pgconv.StringPtrFromPgtype(adminNotes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}
