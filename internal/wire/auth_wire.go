package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/admin-login", authHandler.AdminLogin)
}
