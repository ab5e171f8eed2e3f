package repository

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FlightSearchFilter narrows the public flight search. Zero values are skipped.
type FlightSearchFilter struct {
	From       string
	To         string
	Date       string // 2006-01-02; empty means "anything from now on"
	StartTime  string // 15:04 lower bound when Date is set
	Today      string // caller-supplied "today" for the open-ended window
	Now        string // caller-supplied current time 15:04
	Passengers int
	Class      entity.SeatClass
}

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.Flight, error)
	FindAll(ctx context.Context) ([]*entity.Flight, error)
	Search(ctx context.Context, filter FlightSearchFilter) ([]*entity.Flight, error)
	UpdateSchedule(ctx context.Context, flight *entity.Flight) error
	Delete(ctx context.Context, flightNumber string) error

	// Seat inventory. AllocateSeats and ReleaseSeats are each a single
	// conditional UPDATE so that concurrent calls on the same flight
	// serialize on the row and overlapping seat sets cannot both succeed.
	AllocateSeats(ctx context.Context, flightNumber string, seats []string, count entity.SeatCount) (bool, error)
	ReleaseSeats(ctx context.Context, flightNumber string, seats []string, count entity.SeatCount) error
	AppendBookingID(ctx context.Context, flightNumber, bookingID string) error

	// Rollover sweep
	FindStale(ctx context.Context, today string) ([]*entity.Flight, error)
	ResetForRollover(ctx context.Context, flightNumber, newDate string) error
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

const flightColumns = `flight_number, source, destination, date, start_time, end_time,
		total_seats, p_seats, b_seats, e_seats, booked_seats, booking_ids,
		p_price, b_price, e_price, status`

func scanFlight(row pgx.Row) (*entity.Flight, error) {
	var flight entity.Flight
	err := row.Scan(
		&flight.FlightNumber,
		&flight.Source,
		&flight.Destination,
		&flight.Date,
		&flight.StartTime,
		&flight.EndTime,
		&flight.TotalSeats,
		&flight.PSeats,
		&flight.BSeats,
		&flight.ESeats,
		&flight.BookedSeats,
		&flight.BookingIDs,
		&flight.PPrice,
		&flight.BPrice,
		&flight.EPrice,
		&flight.Status,
	)
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (` + flightColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		flight.FlightNumber,
		flight.Source,
		flight.Destination,
		flight.Date,
		flight.StartTime,
		flight.EndTime,
		flight.TotalSeats,
		flight.PSeats,
		flight.BSeats,
		flight.ESeats,
		flight.BookedSeats,
		flight.BookingIDs,
		flight.PPrice,
		flight.BPrice,
		flight.EPrice,
		flight.Status,
	)

	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("flight_number", flight.FlightNumber),
		)
		return fmt.Errorf("create flight %s: %w", flight.FlightNumber, err)
	}

	return nil
}

func (r *flightRepository) FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE flight_number = $1`

	flight, err := scanFlight(r.db.QueryRow(ctx, query, flightNumber))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
		)
		return nil, fmt.Errorf("find flight %s: %w", flightNumber, err)
	}

	return flight, nil
}

func (r *flightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights ORDER BY date, start_time`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list flights", zap.Error(err))
		return nil, fmt.Errorf("list flights: %w", err)
	}
	defer rows.Close()

	return collectFlights(rows)
}

func (r *flightRepository) Search(ctx context.Context, filter FlightSearchFilter) ([]*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights
		WHERE source ILIKE '%' || $1 || '%'
		  AND destination ILIKE '%' || $2 || '%'
		  AND status IN ('Scheduled', 'Delayed')`
	args := []any{filter.From, filter.To}

	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))

		startTime := filter.StartTime
		if startTime == "" {
			startTime = filter.Now
		}
		args = append(args, startTime)
		query += fmt.Sprintf(" AND start_time >= $%d", len(args))
	} else {
		args = append(args, filter.Today, filter.Now)
		query += fmt.Sprintf(" AND (date > $%d OR (date = $%d AND start_time >= $%d))",
			len(args)-1, len(args)-1, len(args))
	}

	if filter.Passengers > 0 {
		args = append(args, filter.Passengers)
		switch filter.Class {
		case entity.SeatClassPlatinum:
			query += fmt.Sprintf(" AND p_seats >= $%d", len(args))
		case entity.SeatClassBusiness:
			query += fmt.Sprintf(" AND b_seats >= $%d", len(args))
		case entity.SeatClassEconomy:
			query += fmt.Sprintf(" AND e_seats >= $%d", len(args))
		default:
			query += fmt.Sprintf(" AND total_seats >= $%d", len(args))
		}
	}

	query += " ORDER BY date, start_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search flights",
			zap.Error(err),
			zap.String("from", filter.From),
			zap.String("to", filter.To),
		)
		return nil, fmt.Errorf("search flights: %w", err)
	}
	defer rows.Close()

	return collectFlights(rows)
}

func (r *flightRepository) UpdateSchedule(ctx context.Context, flight *entity.Flight) error {
	query := `
		UPDATE flights
		SET source = $2, destination = $3, date = $4, start_time = $5, end_time = $6,
		    p_price = $7, b_price = $8, e_price = $9, status = $10
		WHERE flight_number = $1
	`

	result, err := r.db.Exec(ctx, query,
		flight.FlightNumber,
		flight.Source,
		flight.Destination,
		flight.Date,
		flight.StartTime,
		flight.EndTime,
		flight.PPrice,
		flight.BPrice,
		flight.EPrice,
		flight.Status,
	)

	if err != nil {
		r.log.Error("Failed to update flight",
			zap.Error(err),
			zap.String("flight_number", flight.FlightNumber),
		)
		return fmt.Errorf("update flight %s: %w", flight.FlightNumber, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", flight.FlightNumber)
	}

	return nil
}

func (r *flightRepository) Delete(ctx context.Context, flightNumber string) error {
	query := `DELETE FROM flights WHERE flight_number = $1`

	result, err := r.db.Exec(ctx, query, flightNumber)
	if err != nil {
		r.log.Error("Failed to delete flight",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
		)
		return fmt.Errorf("delete flight %s: %w", flightNumber, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", flightNumber)
	}

	r.log.Info("Flight deleted", zap.String("flight_number", flightNumber))
	return nil
}

// AllocateSeats appends the seat codes and decrements the class counters in one
// conditional statement. The overlap guard (NOT booked_seats && $2) makes two
// concurrent allocations of the same seat resolve to exactly one winner; the
// counter guards refuse class-capacity underflow. Returns false when no row
// matched, the caller distinguishes missing flight, conflict, or capacity.
func (r *flightRepository) AllocateSeats(ctx context.Context, flightNumber string, seats []string, count entity.SeatCount) (bool, error) {
	query := `
		UPDATE flights
		SET booked_seats = booked_seats || $2,
		    p_seats = p_seats - $3,
		    b_seats = b_seats - $4,
		    e_seats = e_seats - $5,
		    total_seats = total_seats - $6
		WHERE flight_number = $1
		  AND NOT (booked_seats && $2)
		  AND p_seats >= $3
		  AND b_seats >= $4
		  AND e_seats >= $5
	`

	result, err := r.db.Exec(ctx, query,
		flightNumber,
		seats,
		count.Platinum,
		count.Business,
		count.Economy,
		count.Total(),
	)
	if err != nil {
		r.log.Error("Failed to allocate seats",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
			zap.Strings("seats", seats),
		)
		return false, fmt.Errorf("allocate seats on flight %s: %w", flightNumber, err)
	}

	return result.RowsAffected() > 0, nil
}

// ReleaseSeats is the exact inverse of AllocateSeats.
func (r *flightRepository) ReleaseSeats(ctx context.Context, flightNumber string, seats []string, count entity.SeatCount) error {
	query := `
		UPDATE flights
		SET booked_seats = (
		        SELECT COALESCE(array_agg(s), '{}')
		        FROM unnest(booked_seats) AS s
		        WHERE s <> ALL($2)
		    ),
		    p_seats = p_seats + $3,
		    b_seats = b_seats + $4,
		    e_seats = e_seats + $5,
		    total_seats = total_seats + $6
		WHERE flight_number = $1
	`

	result, err := r.db.Exec(ctx, query,
		flightNumber,
		seats,
		count.Platinum,
		count.Business,
		count.Economy,
		count.Total(),
	)
	if err != nil {
		r.log.Error("Failed to release seats",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
			zap.Strings("seats", seats),
		)
		return fmt.Errorf("release seats on flight %s: %w", flightNumber, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", flightNumber)
	}

	return nil
}

func (r *flightRepository) AppendBookingID(ctx context.Context, flightNumber, bookingID string) error {
	query := `UPDATE flights SET booking_ids = array_append(booking_ids, $2) WHERE flight_number = $1`

	result, err := r.db.Exec(ctx, query, flightNumber, bookingID)
	if err != nil {
		r.log.Error("Failed to link booking to flight",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("link booking %s to flight %s: %w", bookingID, flightNumber, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", flightNumber)
	}

	return nil
}

func (r *flightRepository) FindStale(ctx context.Context, today string) ([]*entity.Flight, error) {
	// ISO dates compare correctly as text
	query := `SELECT ` + flightColumns + ` FROM flights WHERE date < $1`

	rows, err := r.db.Query(ctx, query, today)
	if err != nil {
		r.log.Error("Failed to find stale flights", zap.Error(err), zap.String("today", today))
		return nil, fmt.Errorf("find stale flights: %w", err)
	}
	defer rows.Close()

	return collectFlights(rows)
}

func (r *flightRepository) ResetForRollover(ctx context.Context, flightNumber, newDate string) error {
	query := `
		UPDATE flights
		SET date = $2,
		    booked_seats = '{}',
		    booking_ids = '{}',
		    total_seats = $3,
		    p_seats = $4,
		    b_seats = $5,
		    e_seats = $6,
		    status = $7
		WHERE flight_number = $1
	`

	_, err := r.db.Exec(ctx, query,
		flightNumber,
		newDate,
		entity.TotalSeatCapacity,
		entity.PlatinumSeatCapacity,
		entity.BusinessSeatCapacity,
		entity.EconomySeatCapacity,
		entity.FlightStatusScheduled,
	)
	if err != nil {
		r.log.Error("Failed to reset flight for rollover",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
			zap.String("new_date", newDate),
		)
		return fmt.Errorf("reset flight %s: %w", flightNumber, err)
	}

	return nil
}

func collectFlights(rows pgx.Rows) ([]*entity.Flight, error) {
	var flights []*entity.Flight
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, flight)
	}
	return flights, rows.Err()
}
