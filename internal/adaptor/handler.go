package adaptor

import (
	"flight-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Flight       *FlightHandler
	Booking      *BookingHandler
	Cancellation *CancellationHandler
	Staff        *StaffHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		User:         NewUserHandler(service.User, log),
		Flight:       NewFlightHandler(service.Flight, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Cancellation: NewCancellationHandler(service.Cancellation, log),
		Staff:        NewStaffHandler(service.Staff, log),
	}
}
