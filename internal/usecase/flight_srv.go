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

type FlightService interface {
	AddFlight(ctx context.Context, req *request.AddFlightRequest) (*response.FlightResponse, error)
	ListFlights(ctx context.Context) ([]response.FlightResponse, error)
	GetFlight(ctx context.Context, flightNumber string) (*response.FlightDetailResponse, error)
	SearchFlights(ctx context.Context, req *request.SearchFlightsRequest) ([]response.FlightResponse, error)
	UpdateFlight(ctx context.Context, flightNumber string, req *request.UpdateFlightRequest) (*response.FlightResponse, error)
	DeleteFlight(ctx context.Context, flightNumber string) error
	AllocateSeats(ctx context.Context, flightNumber string, req *request.UpdateFlightSeatsRequest) error
	RolloverStaleFlights(ctx context.Context) (int, error)
	DashboardStats(ctx context.Context) (*response.DashboardStatsResponse, error)
}

type flightService struct {
	repo        *repository.Repository
	flightCache *cache.FlightCache
	producer    *events.Producer
	log         *zap.Logger
}

func NewFlightService(repo *repository.Repository, flightCache *cache.FlightCache, producer *events.Producer, log *zap.Logger) FlightService {
	return &flightService{
		repo:        repo,
		flightCache: flightCache,
		producer:    producer,
		log:         log,
	}
}

func (s *flightService) AddFlight(ctx context.Context, req *request.AddFlightRequest) (*response.FlightResponse, error) {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		s.log.Error("add flight validation failed", zap.Any("errors", verrs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	date, startTime, endTime, err := parseScheduleTimes(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %s", err.Error())
	}

	existing, err := s.repo.Flight.FindByFlightNumber(ctx, req.FlightID)
	if err != nil {
		s.log.Error("failed to check flight number", zap.Error(err))
		return nil, fmt.Errorf("failed to add flight: %s", err.Error())
	}
	if existing != nil {
		return nil, fmt.Errorf("flight %s already exists", req.FlightID)
	}

	flight := &entity.Flight{
		FlightNumber: req.FlightID,
		Source:       req.From,
		Destination:  req.To,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		TotalSeats:   entity.TotalSeatCapacity,
		PSeats:       entity.PlatinumSeatCapacity,
		BSeats:       entity.BusinessSeatCapacity,
		ESeats:       entity.EconomySeatCapacity,
		BookedSeats:  []string{},
		BookingIDs:   []string{},
		PPrice:       req.PPrice,
		BPrice:       req.BPrice,
		EPrice:       req.EPrice,
		Status:       entity.FlightStatusScheduled,
	}
	if flight.PPrice == 0 {
		flight.PPrice = entity.DefaultSeatPrice
	}
	if flight.BPrice == 0 {
		flight.BPrice = entity.DefaultSeatPrice
	}
	if flight.EPrice == 0 {
		flight.EPrice = entity.DefaultSeatPrice
	}

	if err := s.repo.Flight.Create(ctx, flight); err != nil {
		s.log.Error("failed to create flight", zap.String("flight_number", flight.FlightNumber), zap.Error(err))
		return nil, fmt.Errorf("failed to add flight: %s", err.Error())
	}

	s.flightCache.Invalidate(ctx)
	s.log.Info("flight added", zap.String("flight_number", flight.FlightNumber), zap.String("route", flight.Route()))

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

func (s *flightService) ListFlights(ctx context.Context) ([]response.FlightResponse, error) {
	cached, err := s.flightCache.GetFlights(ctx)
	if err != nil {
		s.log.Warn("flight cache read failed", zap.Error(err))
	}
	if cached != nil {
		return response.FlightsToResponses(cached), nil
	}

	flights, err := s.repo.Flight.FindAll(ctx)
	if err != nil {
		s.log.Error("failed to list flights", zap.Error(err))
		return nil, fmt.Errorf("failed to list flights: %s", err.Error())
	}

	if err := s.flightCache.SetFlights(ctx, flights); err != nil {
		s.log.Warn("flight cache write failed", zap.Error(err))
	}
	return response.FlightsToResponses(flights), nil
}

func (s *flightService) GetFlight(ctx context.Context, flightNumber string) (*response.FlightDetailResponse, error) {
	flight, err := s.repo.Flight.FindByFlightNumber(ctx, flightNumber)
	if err != nil {
		s.log.Error("failed to get flight", zap.String("flight_number", flightNumber), zap.Error(err))
		return nil, fmt.Errorf("failed to get flight: %s", err.Error())
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %s not found", flightNumber)
	}

	resp := response.FlightToDetailResponse(flight)
	return &resp, nil
}

func (s *flightService) SearchFlights(ctx context.Context, req *request.SearchFlightsRequest) ([]response.FlightResponse, error) {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	now := time.Now()
	filter := repository.FlightSearchFilter{
		From:       req.FromCity,
		To:         req.ToCity,
		Date:       req.DepartureDate,
		StartTime:  req.StartTime,
		Today:      now.Format("2006-01-02"),
		Now:        now.Format("15:04"),
		Passengers: req.Passengers,
		Class:      entity.SeatClass(req.Class),
	}

	flights, err := s.repo.Flight.Search(ctx, filter)
	if err != nil {
		s.log.Error("flight search failed", zap.Error(err))
		return nil, fmt.Errorf("failed to search flights: %s", err.Error())
	}
	return response.FlightsToResponses(flights), nil
}

func (s *flightService) UpdateFlight(ctx context.Context, flightNumber string, req *request.UpdateFlightRequest) (*response.FlightResponse, error) {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		s.log.Error("update flight validation failed", zap.Any("errors", verrs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	date, startTime, endTime, err := parseScheduleTimes(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %s", err.Error())
	}
	if !entity.ValidFlightStatus(req.Status) {
		return nil, fmt.Errorf("validation failed: invalid flight status %q", req.Status)
	}

	flight, err := s.repo.Flight.FindByFlightNumber(ctx, flightNumber)
	if err != nil {
		s.log.Error("failed to load flight for update", zap.String("flight_number", flightNumber), zap.Error(err))
		return nil, fmt.Errorf("failed to update flight: %s", err.Error())
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %s not found", flightNumber)
	}

	flight.Source = req.From
	flight.Destination = req.To
	flight.Date = date
	flight.StartTime = startTime
	flight.EndTime = endTime
	flight.Status = entity.FlightStatus(req.Status)
	flight.PPrice = req.PPrice
	flight.BPrice = req.BPrice
	flight.EPrice = req.EPrice

	if err := s.repo.Flight.UpdateSchedule(ctx, flight); err != nil {
		s.log.Error("failed to update flight", zap.String("flight_number", flightNumber), zap.Error(err))
		return nil, fmt.Errorf("failed to update flight: %s", err.Error())
	}

	s.flightCache.Invalidate(ctx)
	s.propagateFlightChange(ctx, flight)
	s.producer.Publish(ctx, events.TypeFlightUpdated, flight.FlightNumber, flight)

	resp := response.FlightToResponse(flight)
	return &resp, nil
}

// propagateFlightChange rewrites the schedule snapshot on every booking of
// the flight and pushes a notification to each affected passenger. Every
// edit propagates, even when only prices changed. Failures on a single
// booking are logged and skipped so one stale record cannot block the rest.
func (s *flightService) propagateFlightChange(ctx context.Context, flight *entity.Flight) {
	bookings, err := s.repo.Booking.FindByFlightNumber(ctx, flight.FlightNumber)
	if err != nil {
		s.log.Error("failed to load bookings for propagation",
			zap.String("flight_number", flight.FlightNumber), zap.Error(err))
		return
	}

	for _, booking := range bookings {
		if err := s.repo.Booking.UpdateSnapshot(ctx, booking.BookingID, flight); err != nil {
			s.log.Error("failed to update booking snapshot",
				zap.String("booking_id", booking.BookingID), zap.Error(err))
			continue
		}

		user, err := s.repo.User.FindByUsername(ctx, booking.Username)
		if err != nil || user == nil {
			s.log.Warn("skipping notification, user lookup failed",
				zap.String("username", booking.Username), zap.Error(err))
			continue
		}

		message := fmt.Sprintf(
			"Booking ID: %s\nYour flight from %s to %s on %s has changed status to %q. New timing: %s - %s.",
			booking.BookingID, flight.Source, flight.Destination, flight.Date,
			flight.Status, flight.StartTime, flight.EndTime,
		)
		user.PushNotification(message)
		if err := s.repo.User.UpdateNotifications(ctx, user.Username, user.Notifications); err != nil {
			s.log.Error("failed to store notification",
				zap.String("username", user.Username), zap.Error(err))
		}
	}
}

func (s *flightService) DeleteFlight(ctx context.Context, flightNumber string) error {
	flight, err := s.repo.Flight.FindByFlightNumber(ctx, flightNumber)
	if err != nil {
		s.log.Error("failed to load flight for delete", zap.String("flight_number", flightNumber), zap.Error(err))
		return fmt.Errorf("failed to delete flight: %s", err.Error())
	}
	if flight == nil {
		return fmt.Errorf("flight %s not found", flightNumber)
	}

	bookings, err := s.repo.Booking.FindByFlightNumber(ctx, flightNumber)
	if err != nil {
		s.log.Error("failed to load bookings for delete", zap.String("flight_number", flightNumber), zap.Error(err))
		return fmt.Errorf("failed to delete flight: %s", err.Error())
	}
	for _, booking := range bookings {
		if err := s.repo.User.RemoveBookingID(ctx, booking.Username, booking.BookingID); err != nil {
			s.log.Warn("failed to detach booking from user",
				zap.String("username", booking.Username),
				zap.String("booking_id", booking.BookingID), zap.Error(err))
		}
	}
	if err := s.repo.Booking.DeleteByFlightNumber(ctx, flightNumber); err != nil {
		s.log.Error("failed to delete bookings of flight", zap.String("flight_number", flightNumber), zap.Error(err))
		return fmt.Errorf("failed to delete flight: %s", err.Error())
	}

	if err := s.repo.Flight.Delete(ctx, flightNumber); err != nil {
		s.log.Error("failed to delete flight", zap.String("flight_number", flightNumber), zap.Error(err))
		return fmt.Errorf("failed to delete flight: %s", err.Error())
	}

	s.flightCache.Invalidate(ctx)
	s.producer.Publish(ctx, events.TypeFlightDeleted, flightNumber, map[string]string{"flightNumber": flightNumber})
	s.log.Info("flight deleted", zap.String("flight_number", flightNumber), zap.Int("bookings_removed", len(bookings)))
	return nil
}

func (s *flightService) AllocateSeats(ctx context.Context, flightNumber string, req *request.UpdateFlightSeatsRequest) error {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		s.log.Error("allocate seats validation failed", zap.Any("errors", verrs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	if dupes := duplicateSeats(req.BookedSeats); len(dupes) > 0 {
		return fmt.Errorf("validation failed: duplicate seat code(s) in request: %s", strings.Join(dupes, ", "))
	}
	count, unknown := entity.CountSeatsByClass(req.BookedSeats)
	if len(unknown) > 0 {
		return fmt.Errorf("validation failed: unrecognized seat code(s): %s", strings.Join(unknown, ", "))
	}

	ok, err := s.repo.Flight.AllocateSeats(ctx, flightNumber, req.BookedSeats, count)
	if err != nil {
		s.log.Error("seat allocation failed", zap.String("flight_number", flightNumber), zap.Error(err))
		return fmt.Errorf("failed to allocate seats: %s", err.Error())
	}
	if ok {
		s.flightCache.Invalidate(ctx)
		s.log.Info("seats allocated",
			zap.String("flight_number", flightNumber),
			zap.Strings("seats", req.BookedSeats))
		return nil
	}

	// The guarded update matched nothing. Re-read to report which
	// precondition failed; the allocation itself stays all-or-nothing.
	flight, err := s.repo.Flight.FindByFlightNumber(ctx, flightNumber)
	if err != nil {
		return fmt.Errorf("failed to allocate seats: %s", err.Error())
	}
	if flight == nil {
		return fmt.Errorf("flight %s not found", flightNumber)
	}
	if conflicts := flight.ConflictingSeats(req.BookedSeats); len(conflicts) > 0 {
		return fmt.Errorf("seat(s) already booked: %s", strings.Join(conflicts, ", "))
	}
	return fmt.Errorf("not enough seats available on flight %s", flightNumber)
}

func (s *flightService) RolloverStaleFlights(ctx context.Context) (int, error) {
	rolled := 0
	for {
		today := time.Now().Format("2006-01-02")
		stale, err := s.repo.Flight.FindStale(ctx, today)
		if err != nil {
			return rolled, fmt.Errorf("failed to find stale flights: %s", err.Error())
		}
		if len(stale) == 0 {
			break
		}

		updated := 0
		for _, flight := range stale {
			date, err := time.Parse("2006-01-02", flight.Date)
			if err != nil {
				s.log.Error("stale flight has unparsable date, skipping",
					zap.String("flight_number", flight.FlightNumber),
					zap.String("date", flight.Date))
				continue
			}
			newDate := date.AddDate(0, 0, 28).Format("2006-01-02")
			if err := s.repo.Flight.ResetForRollover(ctx, flight.FlightNumber, newDate); err != nil {
				s.log.Error("failed to roll flight over",
					zap.String("flight_number", flight.FlightNumber), zap.Error(err))
				continue
			}
			s.log.Info("flight rolled over",
				zap.String("flight_number", flight.FlightNumber),
				zap.String("old_date", flight.Date),
				zap.String("new_date", newDate))
			updated++
		}
		rolled += updated
		if updated == 0 {
			// Nothing progressed this pass, bail out instead of spinning
			// on records that keep failing.
			break
		}
	}

	if rolled > 0 {
		s.flightCache.Invalidate(ctx)
	}
	return rolled, nil
}

func (s *flightService) DashboardStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	flights, err := s.repo.Flight.FindAll(ctx)
	if err != nil {
		s.log.Error("failed to load flights for dashboard", zap.Error(err))
		return nil, fmt.Errorf("failed to load dashboard stats: %s", err.Error())
	}

	now := time.Now()
	stats := &response.DashboardStatsResponse{}
	for _, flight := range flights {
		start, errStart := time.ParseInLocation("2006-01-02 15:04", flight.Date+" "+flight.StartTime, time.Local)
		end, errEnd := time.ParseInLocation("2006-01-02 15:04", flight.Date+" "+flight.EndTime, time.Local)
		if errStart != nil || errEnd != nil {
			continue
		}
		if !start.After(now) && !end.Before(now) {
			stats.ActiveFlights++
			stats.PassengersToday += entity.TotalSeatCapacity - flight.TotalSeats
		}
	}
	return stats, nil
}

// parseScheduleTimes splits a pair of RFC 3339 timestamps into the stored
// date and wall-clock components. The departure timestamp carries the date.
func parseScheduleTimes(startRFC, endRFC string) (date, startTime, endTime string, err error) {
	start, err := time.Parse(time.RFC3339, startRFC)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid start time %q, expected RFC 3339", startRFC)
	}
	end, err := time.Parse(time.RFC3339, endRFC)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid end time %q, expected RFC 3339", endRFC)
	}
	return start.Format("2006-01-02"), start.Format("15:04"), end.Format("15:04"), nil
}

func duplicateSeats(seats []string) []string {
	seen := make(map[string]bool, len(seats))
	var dupes []string
	for _, seat := range seats {
		if seen[seat] {
			dupes = append(dupes, seat)
		}
		seen[seat] = true
	}
	return dupes
}
