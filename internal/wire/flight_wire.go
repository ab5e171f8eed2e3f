package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	// Public search for the booking front end
	r.Get("/flights", flightHandler.SearchFlights)

	// Admin flight management
	r.Route("/api/flights", func(r chi.Router) {
		r.Get("/", flightHandler.GetFlights)
		r.Post("/", flightHandler.AddFlight)
		r.Get("/{flightId}", flightHandler.GetFlight)
		r.Put("/{flightId}", flightHandler.UpdateFlight)
		r.Delete("/{flightId}", flightHandler.DeleteFlight)
	})

	// Seat allocation during checkout
	r.Patch("/api/updateFlightSeats/{flightId}", flightHandler.UpdateFlightSeats)

	r.Get("/admin/dashboard-stats", flightHandler.DashboardStats)
}
