package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Get("/api/user/notifications/{username}", userHandler.GetNotifications)
	r.Get("/passengers", userHandler.GetPassengers)
}
