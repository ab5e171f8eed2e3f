package wire

import (
	"net/http"

	"flight-booking/internal/adaptor"
	"flight-booking/internal/cache"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/events"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/middleware"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies. Service is exposed so main can run the
// startup rollover sweep before the router starts serving.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	flightCache *cache.FlightCache,
	producer *events.Producer,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, flightCache, producer, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User)
	wireFlight(r, handler.Flight)
	wireBooking(r, handler.Booking)
	wireCancellation(r, handler.Cancellation)
	wireStaff(r, handler.Staff)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
