package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// GetFlights handles GET /api/flights
func (h *FlightHandler) GetFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.ListFlights(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list flights")
		return
	}

	utils.ResponseSuccess(w, "Flights retrieved successfully", flights)
}

// GetFlight handles GET /api/flights/{flightId}
func (h *FlightHandler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flightId")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	flight, err := h.service.GetFlight(r.Context(), flightID)
	if err != nil {
		h.handleServiceError(w, err, "get flight")
		return
	}

	utils.ResponseSuccess(w, "Flight retrieved successfully", flight)
}

// SearchFlights handles GET /flights
func (h *FlightHandler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.SearchFlightsRequest{
		FromCity:      query.Get("from"),
		ToCity:        query.Get("to"),
		DepartureDate: query.Get("departureDate"),
		StartTime:     query.Get("startTime"),
		Passengers:    utils.ParseInt(query.Get("passengers"), 1),
		Class:         query.Get("class"),
	}

	flights, err := h.service.SearchFlights(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "search flights")
		return
	}

	utils.ResponseSuccess(w, "Flights retrieved successfully", flights)
}

// AddFlight handles POST /api/flights
func (h *FlightHandler) AddFlight(w http.ResponseWriter, r *http.Request) {
	var req request.AddFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	flight, err := h.service.AddFlight(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add flight")
		return
	}

	utils.ResponseCreated(w, "Flight added successfully", flight)
}

// UpdateFlight handles PUT /api/flights/{flightId}
func (h *FlightHandler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flightId")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	var req request.UpdateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	flight, err := h.service.UpdateFlight(r.Context(), flightID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update flight")
		return
	}

	utils.ResponseSuccess(w, "Flight updated successfully", flight)
}

// DeleteFlight handles DELETE /api/flights/{flightId}
func (h *FlightHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flightId")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	if err := h.service.DeleteFlight(r.Context(), flightID); err != nil {
		h.handleServiceError(w, err, "delete flight")
		return
	}

	utils.ResponseSuccess(w, "Flight deleted successfully", nil)
}

// UpdateFlightSeats handles PATCH /api/updateFlightSeats/{flightId}
func (h *FlightHandler) UpdateFlightSeats(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flightId")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	var req request.UpdateFlightSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AllocateSeats(r.Context(), flightID, &req); err != nil {
		h.handleServiceError(w, err, "allocate seats")
		return
	}

	utils.ResponseSuccess(w, "Seats allocated successfully", nil)
}

// DashboardStats handles GET /admin/dashboard-stats
func (h *FlightHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "load dashboard stats")
		return
	}

	utils.ResponseSuccess(w, "Dashboard stats retrieved successfully", stats)
}

// handleServiceError handles errors for flight operations
func (h *FlightHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "not enough seats"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
