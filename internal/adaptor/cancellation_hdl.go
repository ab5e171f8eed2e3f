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

type CancellationHandler struct {
	service usecase.CancellationService
	log     *zap.Logger
}

func NewCancellationHandler(service usecase.CancellationService, log *zap.Logger) *CancellationHandler {
	return &CancellationHandler{
		service: service,
		log:     log.With(zap.String("handler", "cancellation")),
	}
}

// RequestCancellation handles POST /request-cancellation
func (h *CancellationHandler) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	var req request.RequestCancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cancellation, err := h.service.RequestCancellation(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "request cancellation")
		return
	}

	utils.ResponseCreated(w, "Cancellation requested successfully", cancellation)
}

// ApproveCancellation handles POST /approve-cancellation
func (h *CancellationHandler) ApproveCancellation(w http.ResponseWriter, r *http.Request) {
	var req request.ApproveCancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ApproveCancellation(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "approve cancellation")
		return
	}

	utils.ResponseSuccess(w, "Cancellation approved, seats released", nil)
}

// RejectCancellation handles POST /reject-cancellation
func (h *CancellationHandler) RejectCancellation(w http.ResponseWriter, r *http.Request) {
	var req request.RejectCancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.RejectCancellation(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "reject cancellation")
		return
	}

	utils.ResponseSuccess(w, "Cancellation rejected", nil)
}

// GetCancellations handles GET /get-cancellations
func (h *CancellationHandler) GetCancellations(w http.ResponseWriter, r *http.Request) {
	cancellations, err := h.service.ListRequested(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list cancellations")
		return
	}

	utils.ResponseSuccess(w, "Cancellation requests retrieved successfully", cancellations)
}

// handleServiceError handles errors for cancellation operations
func (h *CancellationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "already"):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
