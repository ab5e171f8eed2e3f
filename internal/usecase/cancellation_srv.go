package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flight-booking/internal/cache"
	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/events"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type CancellationService interface {
	RequestCancellation(ctx context.Context, req *request.RequestCancellationRequest) (*response.CancellationResponse, error)
	ApproveCancellation(ctx context.Context, req *request.ApproveCancellationRequest) error
	RejectCancellation(ctx context.Context, req *request.RejectCancellationRequest) error
	ListRequested(ctx context.Context) ([]response.CancellationDetailResponse, error)
}

type cancellationService struct {
	repo        *repository.Repository
	flightCache *cache.FlightCache
	producer    *events.Producer
	log         *zap.Logger
}

func NewCancellationService(repo *repository.Repository, flightCache *cache.FlightCache, producer *events.Producer, log *zap.Logger) CancellationService {
	return &cancellationService{
		repo:        repo,
		flightCache: flightCache,
		producer:    producer,
		log:         log,
	}
}

func (s *cancellationService) RequestCancellation(ctx context.Context, req *request.RequestCancellationRequest) (*response.CancellationResponse, error) {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		s.log.Error("cancellation request validation failed", zap.Any("errors", verrs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	booking, err := s.repo.Booking.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		s.log.Error("failed to load booking for cancellation", zap.String("booking_id", req.BookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to request cancellation: %s", err.Error())
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}

	existing, err := s.repo.Cancellation.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		s.log.Error("failed to check existing cancellation", zap.String("booking_id", req.BookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to request cancellation: %s", err.Error())
	}
	if existing != nil {
		return nil, fmt.Errorf("cancellation already requested for booking %s", req.BookingID)
	}

	cancellation := &entity.Cancellation{
		BookingID:   req.BookingID,
		Status:      entity.CancellationStatusRequested,
		Remarks:     req.Reason,
		RequestedAt: time.Now(),
	}
	if err := s.repo.Cancellation.Create(ctx, cancellation); err != nil {
		s.log.Error("failed to create cancellation", zap.String("booking_id", req.BookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to request cancellation: %s", err.Error())
	}

	s.producer.Publish(ctx, events.TypeCancellationRequested, req.BookingID, cancellation)
	s.log.Info("cancellation requested", zap.String("booking_id", req.BookingID))

	resp := response.CancellationToResponse(cancellation)
	return &resp, nil
}

// ApproveCancellation frees the booking's seats, notifies the passenger and
// removes the booking. The status flips first through a conditional update
// that only moves a still-requested row, so a concurrent decision on the same
// request cannot release the seats twice; any later failure reverts it.
func (s *cancellationService) ApproveCancellation(ctx context.Context, req *request.ApproveCancellationRequest) error {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	cancellation, err := s.repo.Cancellation.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		s.log.Error("failed to load cancellation", zap.String("booking_id", req.BookingID), zap.Error(err))
		return fmt.Errorf("failed to approve cancellation: %s", err.Error())
	}
	if cancellation == nil {
		return fmt.Errorf("cancellation for booking %s not found", req.BookingID)
	}
	if !cancellation.IsOpen() {
		return fmt.Errorf("cancellation for booking %s already %s", req.BookingID, cancellation.Status)
	}

	booking, err := s.repo.Booking.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		s.log.Error("failed to load booking for approval", zap.String("booking_id", req.BookingID), zap.Error(err))
		return fmt.Errorf("failed to approve cancellation: %s", err.Error())
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", req.BookingID)
	}

	flight, err := s.repo.Flight.FindByFlightNumber(ctx, booking.FlightNumber)
	if err != nil {
		s.log.Error("failed to load flight for approval", zap.String("flight_number", booking.FlightNumber), zap.Error(err))
		return fmt.Errorf("failed to approve cancellation: %s", err.Error())
	}
	if flight == nil {
		// Without the flight the seats cannot be returned to inventory, so
		// the approval is refused rather than completed lossily.
		return fmt.Errorf("flight %s not found", booking.FlightNumber)
	}

	approvedAt := time.Now()
	approved, err := s.repo.Cancellation.UpdateStatus(ctx, req.BookingID, entity.CancellationStatusRequested, entity.CancellationStatusApproved, &approvedAt)
	if err != nil {
		s.log.Error("failed to mark cancellation approved", zap.String("booking_id", req.BookingID), zap.Error(err))
		return fmt.Errorf("failed to approve cancellation: %s", err.Error())
	}
	if !approved {
		// Another decision on this request landed between the read above and
		// this write, so the seats stay untouched.
		return s.alreadyDecided(ctx, req.BookingID)
	}

	count, _ := entity.CountSeatsByClass(booking.AllocatedSeats)
	if err := s.repo.Flight.ReleaseSeats(ctx, booking.FlightNumber, booking.AllocatedSeats, count); err != nil {
		s.log.Error("failed to release seats, reverting approval",
			zap.String("booking_id", req.BookingID),
			zap.String("flight_number", booking.FlightNumber), zap.Error(err))
		s.revertToRequested(ctx, req.BookingID)
		return fmt.Errorf("failed to approve cancellation: %s", err.Error())
	}

	s.notifyApproval(ctx, booking)

	if err := s.repo.Booking.Delete(ctx, req.BookingID); err != nil {
		s.log.Error("failed to delete booking, reverting approval",
			zap.String("booking_id", req.BookingID), zap.Error(err))
		if _, allocErr := s.repo.Flight.AllocateSeats(ctx, booking.FlightNumber, booking.AllocatedSeats, count); allocErr != nil {
			s.log.Error("failed to re-allocate seats during revert",
				zap.String("booking_id", req.BookingID), zap.Error(allocErr))
		}
		s.revertToRequested(ctx, req.BookingID)
		return fmt.Errorf("failed to approve cancellation: %s", err.Error())
	}

	if err := s.repo.User.RemoveBookingID(ctx, booking.Username, req.BookingID); err != nil {
		s.log.Warn("failed to detach booking from user",
			zap.String("username", booking.Username),
			zap.String("booking_id", req.BookingID), zap.Error(err))
	}

	s.flightCache.Invalidate(ctx)
	s.producer.Publish(ctx, events.TypeCancellationApproved, req.BookingID, map[string]any{
		"bookingId":    req.BookingID,
		"flightNumber": booking.FlightNumber,
		"seats":        booking.AllocatedSeats,
	})
	s.log.Info("cancellation approved",
		zap.String("booking_id", req.BookingID),
		zap.String("flight_number", booking.FlightNumber),
		zap.Strings("seats", booking.AllocatedSeats))
	return nil
}

func (s *cancellationService) RejectCancellation(ctx context.Context, req *request.RejectCancellationRequest) error {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	cancellation, err := s.repo.Cancellation.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		s.log.Error("failed to load cancellation", zap.String("booking_id", req.BookingID), zap.Error(err))
		return fmt.Errorf("failed to reject cancellation: %s", err.Error())
	}
	if cancellation == nil {
		return fmt.Errorf("cancellation for booking %s not found", req.BookingID)
	}
	if !cancellation.IsOpen() {
		return fmt.Errorf("cancellation for booking %s already %s", req.BookingID, cancellation.Status)
	}

	rejected, err := s.repo.Cancellation.UpdateStatus(ctx, req.BookingID, entity.CancellationStatusRequested, entity.CancellationStatusRejected, nil)
	if err != nil {
		s.log.Error("failed to mark cancellation rejected", zap.String("booking_id", req.BookingID), zap.Error(err))
		return fmt.Errorf("failed to reject cancellation: %s", err.Error())
	}
	if !rejected {
		return s.alreadyDecided(ctx, req.BookingID)
	}

	s.producer.Publish(ctx, events.TypeCancellationRejected, req.BookingID, map[string]string{
		"bookingId": req.BookingID,
		"remarks":   req.Remarks,
	})
	s.log.Info("cancellation rejected", zap.String("booking_id", req.BookingID))
	return nil
}

func (s *cancellationService) ListRequested(ctx context.Context) ([]response.CancellationDetailResponse, error) {
	cancellations, err := s.repo.Cancellation.FindByStatus(ctx, entity.CancellationStatusRequested)
	if err != nil {
		s.log.Error("failed to list cancellation requests", zap.Error(err))
		return nil, fmt.Errorf("failed to list cancellation requests: %s", err.Error())
	}

	details := make([]response.CancellationDetailResponse, 0, len(cancellations))
	for _, c := range cancellations {
		detail := response.CancellationDetailResponse{
			CancellationResponse: response.CancellationToResponse(c),
		}
		booking, err := s.repo.Booking.FindByBookingID(ctx, c.BookingID)
		if err != nil {
			s.log.Warn("failed to attach booking to cancellation request",
				zap.String("booking_id", c.BookingID), zap.Error(err))
		} else if booking != nil {
			b := response.BookingToResponse(booking)
			detail.Booking = &b
		}
		details = append(details, detail)
	}
	return details, nil
}

// alreadyDecided reports how a lost transition race ended, re-reading the row
// the same way AllocateSeats disambiguates a refused conditional update.
func (s *cancellationService) alreadyDecided(ctx context.Context, bookingID string) error {
	current, err := s.repo.Cancellation.FindByBookingID(ctx, bookingID)
	if err == nil && current != nil {
		return fmt.Errorf("cancellation for booking %s already %s", bookingID, current.Status)
	}
	return fmt.Errorf("cancellation for booking %s not found", bookingID)
}

func (s *cancellationService) revertToRequested(ctx context.Context, bookingID string) {
	reverted, err := s.repo.Cancellation.UpdateStatus(ctx, bookingID, entity.CancellationStatusApproved, entity.CancellationStatusRequested, nil)
	if err != nil || !reverted {
		s.log.Error("failed to revert cancellation status",
			zap.String("booking_id", bookingID), zap.Error(err))
	}
}

// notifyApproval is best effort, an unreachable user record must not undo the
// seat release that already happened.
func (s *cancellationService) notifyApproval(ctx context.Context, booking *entity.Booking) {
	user, err := s.repo.User.FindByUsername(ctx, booking.Username)
	if err != nil || user == nil {
		s.log.Warn("skipping approval notification, user lookup failed",
			zap.String("username", booking.Username), zap.Error(err))
		return
	}

	message := fmt.Sprintf(
		"Your cancellation request for Booking ID %s on flight %s has been approved. Seats %s are released.",
		booking.BookingID, booking.FlightNumber, strings.Join(booking.AllocatedSeats, ", "),
	)
	user.PushNotification(message)
	if err := s.repo.User.UpdateNotifications(ctx, user.Username, user.Notifications); err != nil {
		s.log.Error("failed to store approval notification",
			zap.String("username", user.Username), zap.Error(err))
	}
}
