package repository

import (
	"context"
	"time"

	"portfolio-api/internal/infra/db"
)

// NotificationRepository writes delivery jobs in the same transaction as the
// state change they announce. An external worker drains the table.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	query := `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := tx.Exec(ctx, query, kind, topic, payload, runAt)
	if err != nil {
		return wrapPgErr("failed to create notification job", err)
	}

	return nil
}
