package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) AddFlight(ctx context.Context, req *request.AddFlightRequest) (*response.FlightResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) ListFlights(ctx context.Context) ([]response.FlightResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) GetFlight(ctx context.Context, flightNumber string) (*response.FlightDetailResponse, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.FlightDetailResponse), args.Error(1)
}

func (m *MockFlightService) SearchFlights(ctx context.Context, req *request.SearchFlightsRequest) ([]response.FlightResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) UpdateFlight(ctx context.Context, flightNumber string, req *request.UpdateFlightRequest) (*response.FlightResponse, error) {
	args := m.Called(ctx, flightNumber, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.FlightResponse), args.Error(1)
}

func (m *MockFlightService) DeleteFlight(ctx context.Context, flightNumber string) error {
	args := m.Called(ctx, flightNumber)
	return args.Error(0)
}

func (m *MockFlightService) AllocateSeats(ctx context.Context, flightNumber string, req *request.UpdateFlightSeatsRequest) error {
	args := m.Called(ctx, flightNumber, req)
	return args.Error(0)
}

func (m *MockFlightService) RolloverStaleFlights(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockFlightService) DashboardStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.DashboardStatsResponse), args.Error(1)
}

func newFlightRouter(service *MockFlightService) *chi.Mux {
	handler := NewFlightHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/flights", handler.GetFlights)
	r.Patch("/api/updateFlightSeats/{flightId}", handler.UpdateFlightSeats)
	return r
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) utils.Response {
	t.Helper()
	var envelope utils.Response
	assert.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestFlightHandler_GetFlights(t *testing.T) {
	service := &MockFlightService{}
	router := newFlightRouter(service)

	service.On("ListFlights", mock.Anything).Return([]response.FlightResponse{
		{FlightID: "FL-101", From: "London", To: "Paris"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/flights", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.True(t, envelope.Status)
	service.AssertExpectations(t)
}

func TestFlightHandler_UpdateFlightSeats_Success(t *testing.T) {
	service := &MockFlightService{}
	router := newFlightRouter(service)

	service.On("AllocateSeats", mock.Anything, "FL-101", mock.MatchedBy(func(r *request.UpdateFlightSeatsRequest) bool {
		return len(r.BookedSeats) == 2
	})).Return(nil).Once()

	body := bytes.NewBufferString(`{"bookedSeats":["p-1A","e-10C"]}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/updateFlightSeats/FL-101", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestFlightHandler_UpdateFlightSeats_Conflict(t *testing.T) {
	service := &MockFlightService{}
	router := newFlightRouter(service)

	service.On("AllocateSeats", mock.Anything, "FL-101", mock.Anything).
		Return(errors.New("seat(s) already booked: p-1A")).Once()

	body := bytes.NewBufferString(`{"bookedSeats":["p-1A"]}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/updateFlightSeats/FL-101", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec.Body)
	assert.False(t, envelope.Status)
	assert.Contains(t, envelope.Message, "p-1A")
}

func TestFlightHandler_UpdateFlightSeats_FlightMissing(t *testing.T) {
	service := &MockFlightService{}
	router := newFlightRouter(service)

	service.On("AllocateSeats", mock.Anything, "FL-404", mock.Anything).
		Return(errors.New("flight FL-404 not found")).Once()

	body := bytes.NewBufferString(`{"bookedSeats":["e-10C"]}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/updateFlightSeats/FL-404", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFlightHandler_UpdateFlightSeats_BadBody(t *testing.T) {
	service := &MockFlightService{}
	router := newFlightRouter(service)

	body := bytes.NewBufferString(`{"bookedSeats":`)
	req := httptest.NewRequest(http.MethodPatch, "/api/updateFlightSeats/FL-101", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "AllocateSeats", mock.Anything, mock.Anything, mock.Anything)
}
