package update_branch_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/axlexpert/AX-BookingService/internal/api/handlers"
	"github.com/axlexpert/AX-BookingService/internal/api/middleware"
	configService "github.com/axlexpert/AX-BookingService/internal/service/config"
)

const (
	msgInvalidBranchID    = "некорректный ID филиала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBranchNotFound     = "филиал не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/branches/{branchId}/config
// Доступно только менеджерам филиала
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /branches/{id}/config - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /branches/{id}/config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /branches/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	cfg, err := h.service.Upsert(r.Context(), req.ToServiceRequest(userID, branchID))
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrInvalidInput):
			h.logger.Warn("PUT /branches/{id}/config - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, configService.ErrBranchNotFound):
			h.logger.Warn("PUT /branches/{id}/config - Branch not found: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, configService.ErrServiceNotFound):
			h.logger.Warn("PUT /branches/{id}/config - Service not found: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, configService.ErrAccessDenied):
			h.logger.Warn("PUT /branches/{id}/config - Access denied: branch_id=%d, user_id=%d", branchID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /branches/{id}/config - Failed: branch_id=%d, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /branches/{id}/config - Config saved: id=%d, branch_id=%d, user_id=%d",
		cfg.ID, branchID, userID)
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
