//go:build unit

package repository

import (
	"errors"
	"fmt"
	"testing"

	"portfolio-api/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapPgErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "unique violation becomes conflict",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "reservations_active_slot_key"},
			wantKind: infra.KindConflict,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "other pg error falls back to db failure",
			err:      &pgconn.PgError{Code: "42P01"},
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "non-pg error falls back to db failure",
			err:      errors.New("connection refused"),
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "wrapped pg error is still recognized",
			err:      fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: "23505"}),
			wantKind: infra.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapPgErr("create reservation", tt.err)

			assert.True(t, infra.IsKind(got, tt.wantKind))
			assert.ErrorContains(t, got, "create reservation")
		})
	}
}
