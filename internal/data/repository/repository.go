package repository

import (
	"flight-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Admin        AdminRepository
	Flight       FlightRepository
	Booking      BookingRepository
	Cancellation CancellationRepository
	Staff        StaffRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Admin:        NewAdminRepository(db, log),
		Flight:       NewFlightRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Cancellation: NewCancellationRepository(db, log),
		Staff:        NewStaffRepository(db, log),
	}
}
