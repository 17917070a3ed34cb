package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"portfolio-api/internal/domain/booking"
	"portfolio-api/internal/domain/schedule"
	"portfolio-api/internal/infra"
	"portfolio-api/internal/infra/db"
	"portfolio-api/internal/infra/metrics"
	"portfolio-api/internal/pkg/clock"
	"portfolio-api/internal/pkg/errs"
	"portfolio-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDomainValidation        = errs.New("domain validation error")
	ErrSlotUnavailable         = errs.New("slot unavailable")
	ErrSlotConflict            = errs.New("slot already booked")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *booking.Reservation) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, adminNotes *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type CreateReservationInput struct {
	TemplateID uuid.UUID
	Date       string
	Name       string
	Email      string
	Note       string
}

type ReservationCommands interface {
	Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, adminNotes *string) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	reservationRepo  ReservationRepository
	templateRepo     TemplateRepository
	notificationRepo NotificationRepository
	reservationReads queries.ReservationReadStore
	pool             *pgxpool.Pool
	clock            clock.Clock
	metrics          *metrics.Metrics
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	templateRepo TemplateRepository,
	notificationRepo NotificationRepository,
	reservationReads queries.ReservationReadStore,
	pool *pgxpool.Pool,
	clock clock.Clock,
	metrics *metrics.Metrics,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:  reservationRepo,
		templateRepo:     templateRepo,
		notificationRepo: notificationRepo,
		reservationReads: reservationReads,
		pool:             pool,
		clock:            clock,
		metrics:          metrics,
	}
}

// Create books a slot. The check-and-insert is not atomic at this layer: the
// partial unique index on (template_id, slot_date) over active statuses is
// what guarantees that two concurrent attempts cannot both succeed.
func (c *reservationCommandsImpl) Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error) {
	reservation, err := c.buildReservation(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := c.executeBookingTransaction(ctx, reservation); err != nil {
		return nil, err
	}

	c.metrics.BookingsCreated.Inc()

	view, err := c.reservationReads.FindByID(ctx, reservation.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *reservationCommandsImpl) buildReservation(ctx context.Context, input CreateReservationInput) (*booking.Reservation, error) {
	date, err := time.Parse(schedule.DateLayout, input.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	contact, err := booking.NewContact(input.Name, input.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	note, err := booking.NewNote(input.Note)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	template, err := c.templateRepo.FindByID(ctx, input.TemplateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotUnavailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	reservation, err := booking.NewReservation(c.clock.Now(), template, date, contact, note)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrTemplateInactive):
			return nil, ErrSlotUnavailable
		default:
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	return reservation, nil
}

func (c *reservationCommandsImpl) executeBookingTransaction(ctx context.Context, reservation *booking.Reservation) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := c.reservationRepo.Create(ctx, tx, reservation); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			c.metrics.BookingConflicts.Inc()
			return ErrSlotConflict
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.createNotificationJob(ctx, tx, reservation); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (c *reservationCommandsImpl) createNotificationJob(ctx context.Context, tx db.DBTX, reservation *booking.Reservation) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservation.ID(),
		"template_id":    reservation.TemplateID(),
		"date":           reservation.Date().Format(schedule.DateLayout),
		"type":           "reservation_requested",
	})
	if err != nil {
		return err
	}

	return c.notificationRepo.CreateJob(ctx, tx, "email", "reservation_requested", payload, c.clock.Now())
}

func (c *reservationCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string, adminNotes *string) (*queries.ReservationView, error) {
	newStatus, err := booking.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.reservationRepo.UpdateStatus(ctx, id, newStatus, adminNotes); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.reservationReads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.reservationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
