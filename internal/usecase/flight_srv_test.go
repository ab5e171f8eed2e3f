package usecase

import (
	"context"
	"testing"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFlightWithDefaults(flightNumber string) *entity.Flight {
	return &entity.Flight{
		FlightNumber: flightNumber,
		Source:       "London",
		Destination:  "Paris",
		Date:         "2026-09-10",
		StartTime:    "09:00",
		EndTime:      "11:30",
		TotalSeats:   entity.TotalSeatCapacity,
		PSeats:       entity.PlatinumSeatCapacity,
		BSeats:       entity.BusinessSeatCapacity,
		ESeats:       entity.EconomySeatCapacity,
		BookedSeats:  []string{},
		BookingIDs:   []string{},
		PPrice:       entity.DefaultSeatPrice,
		BPrice:       entity.DefaultSeatPrice,
		EPrice:       entity.DefaultSeatPrice,
		Status:       entity.FlightStatusScheduled,
	}
}

func TestFlightService_AddFlight_DefaultsInventoryAndPrices(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	tr.flights.On("FindByFlightNumber", ctx, "FL-101").Return(nil, nil).Once()
	tr.flights.On("Create", ctx, mock.AnythingOfType("*entity.Flight")).
		Run(func(args mock.Arguments) {
			flight := args.Get(1).(*entity.Flight)
			assert.Equal(t, entity.TotalSeatCapacity, flight.TotalSeats)
			assert.Equal(t, entity.PlatinumSeatCapacity, flight.PSeats)
			assert.Equal(t, entity.BusinessSeatCapacity, flight.BSeats)
			assert.Equal(t, entity.EconomySeatCapacity, flight.ESeats)
			assert.Equal(t, float64(entity.DefaultSeatPrice), flight.PPrice)
			assert.Equal(t, entity.FlightStatusScheduled, flight.Status)
			assert.Equal(t, "2026-09-10", flight.Date)
			assert.Equal(t, "09:00", flight.StartTime)
			assert.Equal(t, "11:30", flight.EndTime)
		}).
		Return(nil).Once()

	resp, err := service.AddFlight(ctx, &request.AddFlightRequest{
		FlightID:  "FL-101",
		From:      "London",
		To:        "Paris",
		StartTime: "2026-09-10T09:00:00Z",
		EndTime:   "2026-09-10T11:30:00Z",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "FL-101", resp.FlightID)
	tr.flights.AssertExpectations(t)
}

func TestFlightService_AddFlight_DuplicateFlightNumber(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	tr.flights.On("FindByFlightNumber", ctx, "FL-101").Return(newFlightWithDefaults("FL-101"), nil).Once()

	resp, err := service.AddFlight(ctx, &request.AddFlightRequest{
		FlightID:  "FL-101",
		From:      "London",
		To:        "Paris",
		StartTime: "2026-09-10T09:00:00Z",
		EndTime:   "2026-09-10T11:30:00Z",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "already exists")
}

func TestFlightService_AddFlight_RejectsBadTimestamp(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())

	_, err := service.AddFlight(context.Background(), &request.AddFlightRequest{
		FlightID:  "FL-101",
		From:      "London",
		To:        "Paris",
		StartTime: "10/09/2026 09:00",
		EndTime:   "2026-09-10T11:30:00Z",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestFlightService_AllocateSeats_Success(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	seats := []string{"p-1A", "e-10C"}
	tr.flights.On("AllocateSeats", ctx, "FL-101", seats, entity.SeatCount{Platinum: 1, Economy: 1}).
		Return(true, nil).Once()

	err := service.AllocateSeats(ctx, "FL-101", &request.UpdateFlightSeatsRequest{BookedSeats: seats})

	assert.NoError(t, err)
	tr.flights.AssertExpectations(t)
}

func TestFlightService_AllocateSeats_RejectsUnknownPrefix(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())

	err := service.AllocateSeats(context.Background(), "FL-101", &request.UpdateFlightSeatsRequest{
		BookedSeats: []string{"p-1A", "z-9Z"},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "z-9Z")
	tr.flights.AssertNotCalled(t, "AllocateSeats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightService_AllocateSeats_RejectsDuplicatesInRequest(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())

	err := service.AllocateSeats(context.Background(), "FL-101", &request.UpdateFlightSeatsRequest{
		BookedSeats: []string{"e-10C", "e-10C"},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate seat code")
}

func TestFlightService_AllocateSeats_ConflictReported(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	flight := newFlightWithDefaults("FL-101")
	flight.BookedSeats = []string{"p-1A"}

	seats := []string{"p-1A", "e-10C"}
	tr.flights.On("AllocateSeats", ctx, "FL-101", seats, mock.Anything).Return(false, nil).Once()
	tr.flights.On("FindByFlightNumber", ctx, "FL-101").Return(flight, nil).Once()

	err := service.AllocateSeats(ctx, "FL-101", &request.UpdateFlightSeatsRequest{BookedSeats: seats})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already booked")
	assert.Contains(t, err.Error(), "p-1A")
}

func TestFlightService_AllocateSeats_FlightMissing(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	seats := []string{"e-10C"}
	tr.flights.On("AllocateSeats", ctx, "FL-404", seats, mock.Anything).Return(false, nil).Once()
	tr.flights.On("FindByFlightNumber", ctx, "FL-404").Return(nil, nil).Once()

	err := service.AllocateSeats(ctx, "FL-404", &request.UpdateFlightSeatsRequest{BookedSeats: seats})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFlightService_AllocateSeats_ClassExhausted(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	flight := newFlightWithDefaults("FL-101")
	flight.PSeats = 0

	seats := []string{"p-2B"}
	tr.flights.On("AllocateSeats", ctx, "FL-101", seats, mock.Anything).Return(false, nil).Once()
	tr.flights.On("FindByFlightNumber", ctx, "FL-101").Return(flight, nil).Once()

	err := service.AllocateSeats(ctx, "FL-101", &request.UpdateFlightSeatsRequest{BookedSeats: seats})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not enough seats")
}

func TestFlightService_UpdateFlight_PropagatesToBookingsAndNotifies(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	flight := newFlightWithDefaults("FL-101")
	booking := &entity.Booking{BookingID: "FB-1", Username: "alice", FlightNumber: "FL-101"}
	user := &entity.User{Username: "alice"}

	tr.flights.On("FindByFlightNumber", ctx, "FL-101").Return(flight, nil).Once()
	tr.flights.On("UpdateSchedule", ctx, mock.AnythingOfType("*entity.Flight")).Return(nil).Once()
	tr.bookings.On("FindByFlightNumber", ctx, "FL-101").Return([]*entity.Booking{booking}, nil).Once()
	tr.bookings.On("UpdateSnapshot", ctx, "FB-1", mock.AnythingOfType("*entity.Flight")).Return(nil).Once()
	tr.users.On("FindByUsername", ctx, "alice").Return(user, nil).Once()
	tr.users.On("UpdateNotifications", ctx, "alice", mock.MatchedBy(func(notifications []string) bool {
		return len(notifications) == 1
	})).Return(nil).Once()

	resp, err := service.UpdateFlight(ctx, "FL-101", &request.UpdateFlightRequest{
		From:      "London",
		To:        "Berlin",
		StartTime: "2026-09-12T10:00:00Z",
		EndTime:   "2026-09-12T13:00:00Z",
		Status:    "Delayed",
		PPrice:    9500,
		BPrice:    9000,
		EPrice:    8500,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Berlin", resp.To)
	assert.Equal(t, "Delayed", resp.Status)
	assert.Contains(t, user.Notifications[0], "Booking ID: FB-1")
	assert.Contains(t, user.Notifications[0], "Delayed")
	tr.flights.AssertExpectations(t)
	tr.bookings.AssertExpectations(t)
	tr.users.AssertExpectations(t)
}

func TestFlightService_UpdateFlight_RejectsUnknownStatus(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())

	_, err := service.UpdateFlight(context.Background(), "FL-101", &request.UpdateFlightRequest{
		From:      "London",
		To:        "Paris",
		StartTime: "2026-09-12T10:00:00Z",
		EndTime:   "2026-09-12T13:00:00Z",
		Status:    "Boarding",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid flight status")
}

func TestFlightService_DeleteFlight_CascadesBookings(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	flight := newFlightWithDefaults("FL-101")
	bookings := []*entity.Booking{
		{BookingID: "FB-1", Username: "alice", FlightNumber: "FL-101"},
		{BookingID: "FB-2", Username: "bob", FlightNumber: "FL-101"},
	}

	tr.flights.On("FindByFlightNumber", ctx, "FL-101").Return(flight, nil).Once()
	tr.bookings.On("FindByFlightNumber", ctx, "FL-101").Return(bookings, nil).Once()
	tr.users.On("RemoveBookingID", ctx, "alice", "FB-1").Return(nil).Once()
	tr.users.On("RemoveBookingID", ctx, "bob", "FB-2").Return(nil).Once()
	tr.bookings.On("DeleteByFlightNumber", ctx, "FL-101").Return(nil).Once()
	tr.flights.On("Delete", ctx, "FL-101").Return(nil).Once()

	err := service.DeleteFlight(ctx, "FL-101")

	assert.NoError(t, err)
	tr.flights.AssertExpectations(t)
	tr.bookings.AssertExpectations(t)
	tr.users.AssertExpectations(t)
}

func TestFlightService_RolloverStaleFlights(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	stale := newFlightWithDefaults("FL-OLD")
	stale.Date = "2026-01-01"

	tr.flights.On("FindStale", ctx, mock.AnythingOfType("string")).
		Return([]*entity.Flight{stale}, nil).Once()
	tr.flights.On("ResetForRollover", ctx, "FL-OLD", "2026-01-29").Return(nil).Once()
	tr.flights.On("FindStale", ctx, mock.AnythingOfType("string")).
		Return([]*entity.Flight{}, nil).Once()

	rolled, err := service.RolloverStaleFlights(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, rolled)
	tr.flights.AssertExpectations(t)
}

func TestFlightService_RolloverStaleFlights_StopsWhenNothingProgresses(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	broken := newFlightWithDefaults("FL-BAD")
	broken.Date = "not-a-date"

	tr.flights.On("FindStale", ctx, mock.AnythingOfType("string")).
		Return([]*entity.Flight{broken}, nil).Once()

	rolled, err := service.RolloverStaleFlights(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, rolled)
	tr.flights.AssertNotCalled(t, "ResetForRollover", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightService_DashboardStats(t *testing.T) {
	tr := newTestRepo()
	service := NewFlightService(tr.repo, nil, nil, testLogger())
	ctx := context.Background()

	today := time.Now().Format("2006-01-02")

	active := newFlightWithDefaults("FL-NOW")
	active.Date = today
	active.StartTime = "00:00"
	active.EndTime = "23:59"
	active.TotalSeats = entity.TotalSeatCapacity - 12 // 12 passengers on board

	future := newFlightWithDefaults("FL-LATER")
	future.Date = "2100-01-01"

	tr.flights.On("FindAll", ctx).Return([]*entity.Flight{active, future}, nil).Once()

	stats, err := service.DashboardStats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.ActiveFlights)
	assert.Equal(t, 12, stats.PassengersToday)
}
