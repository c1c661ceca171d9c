package get_branch_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/axlexpert/AX-BookingService/internal/api/handlers"
	"github.com/axlexpert/AX-BookingService/internal/api/middleware"
	"github.com/axlexpert/AX-BookingService/internal/domain"
	"github.com/axlexpert/AX-BookingService/internal/service/appointments"
	"github.com/axlexpert/AX-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
	msgInvalidParams   = "некорректные параметры запроса"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgBranchNotFound  = "филиал не найден"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/bookings
// Query params: startDate, endDate, status, search, includeInactive (все опциональны)
// Доступно только менеджерам филиала
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/bookings - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /branches/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetBranchAppointmentsRequest{
		UserID:     userID,
		BranchID:   branchID,
		Status:     r.URL.Query().Get("status"),
		SearchText: r.URL.Query().Get("search"),
	}

	// Разбираем опциональный период
	if raw := r.URL.Query().Get("startDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /branches/{id}/bookings - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.StartDate = &parsed
	}

	if raw := r.URL.Query().Get("endDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /branches/{id}/bookings - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.EndDate = &parsed
	}

	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /branches/{id}/bookings - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.IncludeInactive = parsed
	}

	result, err := h.service.GetBranchAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrBranchNotFound):
			h.logger.Warn("GET /branches/{id}/bookings - Branch not found: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /branches/{id}/bookings - Access denied: branch_id=%d, user_id=%d", branchID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /branches/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /branches/{id}/bookings - Failed: branch_id=%d, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{id}/bookings - %d appointments returned: branch_id=%d, user_id=%d",
		len(result.Appointments), branchID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
