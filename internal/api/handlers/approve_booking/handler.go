package approve_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/axlexpert/AX-BookingService/internal/api/handlers"
	"github.com/axlexpert/AX-BookingService/internal/api/middleware"
	approveBooking "github.com/axlexpert/AX-BookingService/internal/usecase/approve_booking"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgEmployeeRequired     = "для подтверждения записи необходимо указать сотрудника"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgEmployeeNotFound     = "сотрудник не найден"
	msgEmployeeUnavailable  = "сотрудник недоступен для назначения"
	msgForbidden            = "доступ запрещен"
	msgCannotApprove        = "запись нельзя подтвердить из текущего статуса"
)

// ApproveRequest HTTP request model
type ApproveRequest struct {
	EmployeeID *int64 `json:"employeeId"`
}

type Handler struct {
	useCase ApproveBookingUseCase
	logger  Logger
}

func NewHandler(useCase ApproveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{appointmentId}/approve
// Доступно только менеджерам филиала
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/approve - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/approve - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ApproveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveBooking.Request{
		UserID:        userID,
		AppointmentID: appointmentID,
		EmployeeID:    req.EmployeeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/approve - Validation failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondBadRequest(w, msgEmployeeRequired)

		case errors.Is(err, approveBooking.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /bookings/{id}/approve - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, approveBooking.ErrEmployeeNotFound):
			h.logger.Warn("PATCH /bookings/{id}/approve - Employee not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, approveBooking.ErrEmployeeNotAvailable):
			h.logger.Warn("PATCH /bookings/{id}/approve - Employee unavailable: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgEmployeeUnavailable)

		case errors.Is(err, approveBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/approve - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, approveBooking.ErrCannotApprove):
			h.logger.Warn("PATCH /bookings/{id}/approve - Invalid status transition: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgCannotApprove)

		default:
			h.logger.Error("PATCH /bookings/{id}/approve - Failed: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/approve - Appointment approved: appointment_id=%d, employee_id=%d",
		appointmentID, result.AssignedEmployeeID)
	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":                   result.ID,
		"status":               result.Status,
		"assignedEmployeeId":   result.AssignedEmployeeID,
		"assignedEmployeeName": result.AssignedEmployeeName,
	})
}
