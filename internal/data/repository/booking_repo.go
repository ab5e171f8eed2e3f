package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	FindByUsername(ctx context.Context, username string) ([]*entity.Booking, error)
	FindByFlightNumber(ctx context.Context, flightNumber string) ([]*entity.Booking, error)
	UpdateSnapshot(ctx context.Context, bookingID string, flight *entity.Flight) error
	Delete(ctx context.Context, bookingID string) error
	DeleteByFlightNumber(ctx context.Context, flightNumber string) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `booking_id, username, flight_number, date, from_city, to_city,
		departure_time, arrival_time, general_info, passengers, allocated_seats, total_price`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	var generalInfo, passengers []byte

	err := row.Scan(
		&booking.BookingID,
		&booking.Username,
		&booking.FlightNumber,
		&booking.Date,
		&booking.From,
		&booking.To,
		&booking.DepartureTime,
		&booking.ArrivalTime,
		&generalInfo,
		&passengers,
		&booking.AllocatedSeats,
		&booking.TotalPrice,
	)
	if err != nil {
		return nil, err
	}

	if len(generalInfo) > 0 {
		if err := json.Unmarshal(generalInfo, &booking.GeneralInfo); err != nil {
			return nil, fmt.Errorf("decode general info: %w", err)
		}
	}
	if len(passengers) > 0 {
		if err := json.Unmarshal(passengers, &booking.Passengers); err != nil {
			return nil, fmt.Errorf("decode passengers: %w", err)
		}
	}

	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	generalInfo, err := json.Marshal(booking.GeneralInfo)
	if err != nil {
		return fmt.Errorf("encode general info: %w", err)
	}
	passengers, err := json.Marshal(booking.Passengers)
	if err != nil {
		return fmt.Errorf("encode passengers: %w", err)
	}

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = r.db.Exec(ctx, query,
		booking.BookingID,
		booking.Username,
		booking.FlightNumber,
		booking.Date,
		booking.From,
		booking.To,
		booking.DepartureTime,
		booking.ArrivalTime,
		generalInfo,
		passengers,
		booking.AllocatedSeats,
		booking.TotalPrice,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
			zap.String("username", booking.Username),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	return nil
}

func (r *bookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUsername(ctx context.Context, username string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE username = $1 ORDER BY date, departure_time`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		r.log.Error("Failed to find bookings by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find bookings for user %s: %w", username, err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindByFlightNumber(ctx context.Context, flightNumber string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE flight_number = $1`

	rows, err := r.db.Query(ctx, query, flightNumber)
	if err != nil {
		r.log.Error("Failed to find bookings by flight",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
		)
		return nil, fmt.Errorf("find bookings for flight %s: %w", flightNumber, err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// UpdateSnapshot rewrites the denormalized route and timing copied from the
// flight. Seat allocation is untouched.
func (r *bookingRepository) UpdateSnapshot(ctx context.Context, bookingID string, flight *entity.Flight) error {
	query := `
		UPDATE bookings
		SET date = $2, from_city = $3, to_city = $4, departure_time = $5, arrival_time = $6
		WHERE booking_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		bookingID,
		flight.Date,
		flight.Source,
		flight.Destination,
		flight.StartTime,
		flight.EndTime,
	)
	if err != nil {
		r.log.Error("Failed to update booking snapshot",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("update snapshot of booking %s: %w", bookingID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, bookingID string) error {
	query := `DELETE FROM bookings WHERE booking_id = $1`

	result, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", bookingID))
	return nil
}

func (r *bookingRepository) DeleteByFlightNumber(ctx context.Context, flightNumber string) error {
	query := `DELETE FROM bookings WHERE flight_number = $1`

	result, err := r.db.Exec(ctx, query, flightNumber)
	if err != nil {
		r.log.Error("Failed to delete bookings for flight",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
		)
		return fmt.Errorf("delete bookings for flight %s: %w", flightNumber, err)
	}

	r.log.Info("Bookings deleted for flight",
		zap.String("flight_number", flightNumber),
		zap.Int64("count", result.RowsAffected()),
	)
	return nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
