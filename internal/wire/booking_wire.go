package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Post("/api/nowbookings", bookingHandler.CreateBooking)

	// Both listings POST the username in the body
	r.Post("/bookings", bookingHandler.GetPastBookings)
	r.Post("/booked-flights", bookingHandler.GetUpcomingBookings)
}
