package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		Username:      "alice",
		FlightNumber:  "FL-101",
		Date:          "2026-09-10",
		From:          "London",
		To:            "Paris",
		DepartureTime: "09:00",
		ArrivalTime:   "11:30",
		GeneralInfo: request.GeneralInfoPayload{
			FullName: "Alice Smith",
			Email:    "alice@example.com",
		},
		Passengers: []request.PassengerPayload{
			{FullName: "Alice Smith", SeatAllocation: "e-10C"},
		},
		AllocatedSeats: []string{"e-10C"},
		TotalPrice:     9000,
	}
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	tr := newTestRepo()
	service := NewBookingService(tr.repo, nil, testLogger())
	ctx := context.Background()

	tr.bookings.On("FindByBookingID", ctx, mock.AnythingOfType("string")).Return(nil, nil).Once()
	tr.bookings.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()
	tr.users.On("AppendBookingID", ctx, "alice", mock.AnythingOfType("string")).Return(nil).Once()
	tr.flights.On("AppendBookingID", ctx, "FL-101", mock.AnythingOfType("string")).Return(nil).Once()

	resp, err := service.CreateBooking(ctx, validBookingRequest())

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	// A booking id was generated for the caller
	assert.True(t, strings.HasPrefix(resp.BookingID, "FB-"))
	assert.Equal(t, []string{"e-10C"}, resp.AllocatedSeats)
	tr.bookings.AssertExpectations(t)
	tr.users.AssertExpectations(t)
	tr.flights.AssertExpectations(t)
}

func TestBookingService_CreateBooking_KeepsCallerBookingID(t *testing.T) {
	tr := newTestRepo()
	service := NewBookingService(tr.repo, nil, testLogger())
	ctx := context.Background()

	req := validBookingRequest()
	req.BookingID = "FB-CUSTOM-1"

	tr.bookings.On("FindByBookingID", ctx, "FB-CUSTOM-1").Return(nil, nil).Once()
	tr.bookings.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()
	tr.users.On("AppendBookingID", ctx, "alice", "FB-CUSTOM-1").Return(nil).Once()
	tr.flights.On("AppendBookingID", ctx, "FL-101", "FB-CUSTOM-1").Return(nil).Once()

	resp, err := service.CreateBooking(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "FB-CUSTOM-1", resp.BookingID)
}

func TestBookingService_CreateBooking_DuplicateID(t *testing.T) {
	tr := newTestRepo()
	service := NewBookingService(tr.repo, nil, testLogger())
	ctx := context.Background()

	req := validBookingRequest()
	req.BookingID = "FB-CUSTOM-1"

	tr.bookings.On("FindByBookingID", ctx, "FB-CUSTOM-1").
		Return(&entity.Booking{BookingID: "FB-CUSTOM-1"}, nil).Once()

	resp, err := service.CreateBooking(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "already exists")
	tr.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_UserLinkFails_RollsBack(t *testing.T) {
	tr := newTestRepo()
	service := NewBookingService(tr.repo, nil, testLogger())
	ctx := context.Background()

	req := validBookingRequest()
	req.BookingID = "FB-CUSTOM-1"

	tr.bookings.On("FindByBookingID", ctx, "FB-CUSTOM-1").Return(nil, nil).Once()
	tr.bookings.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()
	tr.users.On("AppendBookingID", ctx, "alice", "FB-CUSTOM-1").
		Return(errors.New("user alice not found")).Once()
	tr.bookings.On("Delete", ctx, "FB-CUSTOM-1").Return(nil).Once()

	resp, err := service.CreateBooking(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "not found")
	tr.bookings.AssertExpectations(t)
	tr.flights.AssertNotCalled(t, "AppendBookingID", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_FlightLinkFails_RollsBackBoth(t *testing.T) {
	tr := newTestRepo()
	service := NewBookingService(tr.repo, nil, testLogger())
	ctx := context.Background()

	req := validBookingRequest()
	req.BookingID = "FB-CUSTOM-1"

	tr.bookings.On("FindByBookingID", ctx, "FB-CUSTOM-1").Return(nil, nil).Once()
	tr.bookings.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()
	tr.users.On("AppendBookingID", ctx, "alice", "FB-CUSTOM-1").Return(nil).Once()
	tr.flights.On("AppendBookingID", ctx, "FL-101", "FB-CUSTOM-1").
		Return(errors.New("flight FL-101 not found")).Once()
	tr.users.On("RemoveBookingID", ctx, "alice", "FB-CUSTOM-1").Return(nil).Once()
	tr.bookings.On("Delete", ctx, "FB-CUSTOM-1").Return(nil).Once()

	resp, err := service.CreateBooking(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	tr.bookings.AssertExpectations(t)
	tr.users.AssertExpectations(t)
}

func TestBookingService_CreateBooking_ValidationErrors(t *testing.T) {
	service := NewBookingService(newTestRepo().repo, nil, testLogger())
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(*request.CreateBookingRequest)
	}{
		{"missing username", func(r *request.CreateBookingRequest) { r.Username = "" }},
		{"missing flight number", func(r *request.CreateBookingRequest) { r.FlightNumber = "" }},
		{"no passengers", func(r *request.CreateBookingRequest) { r.Passengers = nil }},
		{"no seats", func(r *request.CreateBookingRequest) { r.AllocatedSeats = nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBookingRequest()
			tc.mutate(req)

			resp, err := service.CreateBooking(ctx, req)

			assert.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestBookingService_ListPastAndUpcoming(t *testing.T) {
	tr := newTestRepo()
	service := NewBookingService(tr.repo, nil, testLogger())
	ctx := context.Background()

	past := &entity.Booking{BookingID: "FB-PAST", Date: "2020-01-01", DepartureTime: "10:00"}
	upcoming := &entity.Booking{BookingID: "FB-NEXT", Date: "2100-01-01", DepartureTime: "10:00"}
	broken := &entity.Booking{BookingID: "FB-BAD", Date: "soon", DepartureTime: "??"}

	tr.bookings.On("FindByUsername", ctx, "alice").
		Return([]*entity.Booking{past, upcoming, broken}, nil).Twice()

	pastList, err := service.ListPastBookings(ctx, "alice")
	assert.NoError(t, err)
	assert.Len(t, pastList, 1)
	assert.Equal(t, "FB-PAST", pastList[0].BookingID)

	upcomingList, err := service.ListUpcomingBookings(ctx, "alice")
	assert.NoError(t, err)
	assert.Len(t, upcomingList, 1)
	assert.Equal(t, "FB-NEXT", upcomingList[0].BookingID)
}
