package adaptor

import (
	"net/http"
	"strings"

	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetNotifications handles GET /api/user/notifications/{username}
func (h *UserHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}

	notifications, err := h.service.GetNotifications(r.Context(), username)
	if err != nil {
		h.handleServiceError(w, err, "get notifications")
		return
	}

	utils.ResponseSuccess(w, "Notifications retrieved successfully", notifications)
}

// GetPassengers handles GET /passengers
func (h *UserHandler) GetPassengers(w http.ResponseWriter, r *http.Request) {
	passengers, err := h.service.ListPassengers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list passengers")
		return
	}

	utils.ResponseSuccess(w, "Passengers retrieved successfully", passengers)
}

// handleServiceError handles errors for user operations
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
