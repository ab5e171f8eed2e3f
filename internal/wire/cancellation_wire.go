package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCancellation(r chi.Router, cancellationHandler *adaptor.CancellationHandler) {
	r.Post("/request-cancellation", cancellationHandler.RequestCancellation)
	r.Post("/approve-cancellation", cancellationHandler.ApproveCancellation)
	r.Post("/reject-cancellation", cancellationHandler.RejectCancellation)
	r.Get("/get-cancellations", cancellationHandler.GetCancellations)
}
