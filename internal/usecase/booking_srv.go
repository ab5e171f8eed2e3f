package usecase

import (
	"context"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/events"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListPastBookings(ctx context.Context, username string) ([]response.BookingResponse, error)
	ListUpcomingBookings(ctx context.Context, username string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	producer *events.Producer
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, producer *events.Producer, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		producer: producer,
		log:      log,
	}
}

// CreateBooking records a booking whose seats the seat-update endpoint has
// already taken out of the flight inventory, then links the booking id into
// the owning user and flight. The linking steps compensate backwards on
// failure so a half-created booking never survives.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		s.log.Error("create booking validation failed", zap.Any("errors", verrs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	bookingID := req.BookingID
	if bookingID == "" {
		bookingID = utils.GenerateBookingID()
	}

	existing, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("failed to check booking id", zap.String("booking_id", bookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %s", err.Error())
	}
	if existing != nil {
		return nil, fmt.Errorf("booking %s already exists", bookingID)
	}

	booking := &entity.Booking{
		BookingID:     bookingID,
		Username:      req.Username,
		FlightNumber:  req.FlightNumber,
		Date:          req.Date,
		From:          req.From,
		To:            req.To,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		GeneralInfo: entity.GeneralInfo{
			FullName: req.GeneralInfo.FullName,
			Email:    req.GeneralInfo.Email,
			Phone:    req.GeneralInfo.Phone,
		},
		Passengers:     make([]entity.Passenger, 0, len(req.Passengers)),
		AllocatedSeats: req.AllocatedSeats,
		TotalPrice:     req.TotalPrice,
	}
	for _, p := range req.Passengers {
		booking.Passengers = append(booking.Passengers, entity.Passenger{
			FullName:       p.FullName,
			PassportNumber: p.PassportNumber,
			DOB:            p.DOB,
			SeatAllocation: p.SeatAllocation,
		})
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("failed to create booking", zap.String("booking_id", bookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %s", err.Error())
	}

	if err := s.repo.User.AppendBookingID(ctx, req.Username, bookingID); err != nil {
		s.log.Error("failed to link booking to user, rolling back",
			zap.String("booking_id", bookingID),
			zap.String("username", req.Username), zap.Error(err))
		if delErr := s.repo.Booking.Delete(ctx, bookingID); delErr != nil {
			s.log.Error("rollback of booking record failed",
				zap.String("booking_id", bookingID), zap.Error(delErr))
		}
		return nil, err
	}

	if err := s.repo.Flight.AppendBookingID(ctx, req.FlightNumber, bookingID); err != nil {
		s.log.Error("failed to link booking to flight, rolling back",
			zap.String("booking_id", bookingID),
			zap.String("flight_number", req.FlightNumber), zap.Error(err))
		if rmErr := s.repo.User.RemoveBookingID(ctx, req.Username, bookingID); rmErr != nil {
			s.log.Error("rollback of user link failed",
				zap.String("booking_id", bookingID), zap.Error(rmErr))
		}
		if delErr := s.repo.Booking.Delete(ctx, bookingID); delErr != nil {
			s.log.Error("rollback of booking record failed",
				zap.String("booking_id", bookingID), zap.Error(delErr))
		}
		return nil, err
	}

	s.producer.Publish(ctx, events.TypeBookingCreated, bookingID, booking)
	s.log.Info("booking created",
		zap.String("booking_id", bookingID),
		zap.String("username", req.Username),
		zap.String("flight_number", req.FlightNumber),
		zap.Strings("seats", req.AllocatedSeats))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListPastBookings(ctx context.Context, username string) ([]response.BookingResponse, error) {
	return s.listBookings(ctx, username, true)
}

func (s *bookingService) ListUpcomingBookings(ctx context.Context, username string) ([]response.BookingResponse, error) {
	return s.listBookings(ctx, username, false)
}

// listBookings splits a user's bookings around the current instant using the
// snapshot date and departure time. Records with an unparsable snapshot are
// dropped from both views.
func (s *bookingService) listBookings(ctx context.Context, username string, past bool) ([]response.BookingResponse, error) {
	if username == "" {
		return nil, fmt.Errorf("validation failed: username is required")
	}

	bookings, err := s.repo.Booking.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("failed to list bookings", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings: %s", err.Error())
	}

	now := time.Now()
	selected := make([]*entity.Booking, 0, len(bookings))
	for _, booking := range bookings {
		departure, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.DepartureTime, time.Local)
		if err != nil {
			s.log.Warn("booking has unparsable departure, skipping",
				zap.String("booking_id", booking.BookingID),
				zap.String("date", booking.Date),
				zap.String("departure_time", booking.DepartureTime))
			continue
		}
		if departure.After(now) == past {
			continue
		}
		selected = append(selected, booking)
	}
	return response.BookingsToResponse(selected), nil
}
