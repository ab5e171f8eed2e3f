package repository

import (
	"context"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CancellationRepository interface {
	Create(ctx context.Context, cancellation *entity.Cancellation) error
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Cancellation, error)
	FindByStatus(ctx context.Context, status entity.CancellationStatus) ([]*entity.Cancellation, error)
	UpdateStatus(ctx context.Context, bookingID string, from, to entity.CancellationStatus, approvedAt *time.Time) (bool, error)
}

type cancellationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCancellationRepository(db database.PgxIface, log *zap.Logger) CancellationRepository {
	return &cancellationRepository{
		db:  db,
		log: log.With(zap.String("repository", "cancellation")),
	}
}

const cancellationColumns = `booking_id, status, remarks, requested_at, approved_at`

func scanCancellation(row pgx.Row) (*entity.Cancellation, error) {
	var cancellation entity.Cancellation
	err := row.Scan(
		&cancellation.BookingID,
		&cancellation.Status,
		&cancellation.Remarks,
		&cancellation.RequestedAt,
		&cancellation.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cancellation, nil
}

func (r *cancellationRepository) Create(ctx context.Context, cancellation *entity.Cancellation) error {
	query := `
		INSERT INTO cancellations (` + cancellationColumns + `)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		cancellation.BookingID,
		cancellation.Status,
		cancellation.Remarks,
		cancellation.RequestedAt,
		cancellation.ApprovedAt,
	)

	if err != nil {
		r.log.Error("Failed to create cancellation",
			zap.Error(err),
			zap.String("booking_id", cancellation.BookingID),
		)
		return fmt.Errorf("create cancellation for booking %s: %w", cancellation.BookingID, err)
	}

	return nil
}

func (r *cancellationRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Cancellation, error) {
	query := `SELECT ` + cancellationColumns + ` FROM cancellations WHERE booking_id = $1`

	cancellation, err := scanCancellation(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cancellation",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find cancellation for booking %s: %w", bookingID, err)
	}

	return cancellation, nil
}

func (r *cancellationRepository) FindByStatus(ctx context.Context, status entity.CancellationStatus) ([]*entity.Cancellation, error) {
	query := `SELECT ` + cancellationColumns + ` FROM cancellations WHERE status = $1 ORDER BY requested_at`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to list cancellations",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("list %s cancellations: %w", status, err)
	}
	defer rows.Close()

	var cancellations []*entity.Cancellation
	for rows.Next() {
		cancellation, err := scanCancellation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cancellation row: %w", err)
		}
		cancellations = append(cancellations, cancellation)
	}
	return cancellations, rows.Err()
}

// UpdateStatus moves a cancellation from one status to another in a single
// conditional UPDATE. It reports false when no row was in the expected status,
// so concurrent decisions on the same request resolve to exactly one winner.
func (r *cancellationRepository) UpdateStatus(ctx context.Context, bookingID string, from, to entity.CancellationStatus, approvedAt *time.Time) (bool, error) {
	query := `
		UPDATE cancellations
		SET status = $3, approved_at = $4
		WHERE booking_id = $1 AND status = $2
	`

	result, err := r.db.Exec(ctx, query, bookingID, from, to, approvedAt)
	if err != nil {
		r.log.Error("Failed to update cancellation status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", string(to)),
		)
		return false, fmt.Errorf("update cancellation for booking %s to %s: %w", bookingID, to, err)
	}

	return result.RowsAffected() > 0, nil
}
