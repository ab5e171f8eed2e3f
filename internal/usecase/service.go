package usecase

import (
	"flight-booking/internal/cache"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/events"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Flight       FlightService
	Booking      BookingService
	Cancellation CancellationService
	Staff        StaffService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	flightCache *cache.FlightCache,
	producer *events.Producer,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(repo, log),
		User:         NewUserService(repo.User, log),
		Flight:       NewFlightService(repo, flightCache, producer, log),
		Booking:      NewBookingService(repo, producer, log),
		Cancellation: NewCancellationService(repo, flightCache, producer, log),
		Staff:        NewStaffService(repo.Staff, log),
	}
}
