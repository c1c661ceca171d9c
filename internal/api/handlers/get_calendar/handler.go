package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/axlexpert/AX-BookingService/internal/api/handlers"
	getCalendar "github.com/axlexpert/AX-BookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
	msgInvalidPeriod   = "некорректные параметры year/month"
	msgBranchNotFound  = "филиал не найден"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/calendar
// Query params: year, month (по умолчанию - текущий месяц)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/calendar - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /branches/{id}/calendar - Invalid year: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		year = parsed
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			h.logger.Warn("GET /branches/{id}/calendar - Invalid month: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		month = time.Month(parsed)
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		BranchID: branchID,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrBranchNotFound):
			h.logger.Warn("GET /branches/{id}/calendar - Branch not found: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /branches/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /branches/{id}/calendar - Failed: branch_id=%d, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{id}/calendar - Calendar built: branch_id=%d, year=%d, month=%d",
		branchID, year, month)
	handlers.RespondJSON(w, http.StatusOK, result)
}
