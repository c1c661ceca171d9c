package list_employees

import (
	"net/http"

	"github.com/axlexpert/AX-BookingService/internal/api/handlers"
	"github.com/axlexpert/AX-BookingService/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees
// При недоступности StaffService отвечает 200 с пустым списком и degraded=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /employees - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	employees, err := h.service.GetEmployees(r.Context())
	if err != nil {
		h.logger.Error("GET /employees - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /employees - Fetched %d employees (degraded=%t)",
		len(employees.Employees), employees.Degraded)
	handlers.RespondJSON(w, http.StatusOK, employees)
}
