package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StaffHandler struct {
	service usecase.StaffService
	log     *zap.Logger
}

func NewStaffHandler(service usecase.StaffService, log *zap.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		log:     log.With(zap.String("handler", "staff")),
	}
}

// CreateStaff handles POST /api/staff
func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	staff, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create staff member")
		return
	}

	utils.ResponseCreated(w, "Staff member created successfully", staff)
}

// GetStaff handles GET /api/staff
func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListStaff(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list staff")
		return
	}

	utils.ResponseSuccess(w, "Staff retrieved successfully", members)
}

// UpdateStaff handles PUT /api/staff/{id}
func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		utils.ResponseBadRequest(w, "Staff ID is required", nil)
		return
	}

	var req request.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	staff, err := h.service.UpdateStaff(r.Context(), staffID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update staff member")
		return
	}

	utils.ResponseSuccess(w, "Staff member updated successfully", staff)
}

// DeleteStaff handles DELETE /api/staff/{id}
func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")
	if staffID == "" {
		utils.ResponseBadRequest(w, "Staff ID is required", nil)
		return
	}

	if err := h.service.DeleteStaff(r.Context(), staffID); err != nil {
		h.handleServiceError(w, err, "delete staff member")
		return
	}

	utils.ResponseSuccess(w, "Staff member deleted successfully", nil)
}

// handleServiceError handles errors for staff operations
func (h *StaffHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "already exists"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
