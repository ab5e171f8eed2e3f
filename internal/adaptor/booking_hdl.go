package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/nowbookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", booking)
}

// GetPastBookings handles POST /bookings
func (h *BookingHandler) GetPastBookings(w http.ResponseWriter, r *http.Request) {
	username, ok := h.decodeUsername(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.ListPastBookings(r.Context(), username)
	if err != nil {
		h.handleServiceError(w, err, "list past bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}

// GetUpcomingBookings handles POST /booked-flights
func (h *BookingHandler) GetUpcomingBookings(w http.ResponseWriter, r *http.Request) {
	username, ok := h.decodeUsername(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.ListUpcomingBookings(r.Context(), username)
	if err != nil {
		h.handleServiceError(w, err, "list upcoming bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) decodeUsername(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req request.BookingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return "", false
	}
	if req.Username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return "", false
	}
	return req.Username, true
}

// handleServiceError handles errors for booking operations. Missing users and
// flights surface as 400 here, the client sent an unbookable combination.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
