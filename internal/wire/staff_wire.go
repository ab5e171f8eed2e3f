package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStaff(r chi.Router, staffHandler *adaptor.StaffHandler) {
	r.Route("/api/staff", func(r chi.Router) {
		r.Get("/", staffHandler.GetStaff)
		r.Post("/", staffHandler.CreateStaff)
		r.Put("/{id}", staffHandler.UpdateStaff)
		r.Delete("/{id}", staffHandler.DeleteStaff)
	})
}
