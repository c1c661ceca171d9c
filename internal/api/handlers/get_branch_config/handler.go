package get_branch_config

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
	msgInvalidBranchID  = "некорректный ID филиала"
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgBranchNotFound   = "филиал не найден"
	msgForbidden        = "доступ запрещен"
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

// Handle GET /api/v1/branches/{branchId}/config?serviceId=
// Публичный endpoint: возвращает действующую конфигурацию слотов
// с учетом иерархии service > branch > defaults, 404 не бывает
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/config - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	var serviceID *int64
	if raw := r.URL.Query().Get("serviceId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /branches/{id}/config - Invalid service ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = &id
	}

	cfg, err := h.service.GetWithHierarchy(r.Context(), branchID, serviceID)
	if err != nil {
		h.logger.Error("GET /branches/{id}/config - Failed: branch_id=%d, error=%v", branchID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /branches/{id}/config - Config fetched: branch_id=%d, service_id=%v", branchID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, cfg)
}

// HandleList GET /api/v1/branches/{branchId}/configs
// Все конфигурации филиала, доступно только менеджерам
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	branchID, err := strconv.ParseInt(vars["branchId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/configs - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /branches/{id}/configs - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	configs, err := h.service.GetAllByBranch(r.Context(), branchID, userID)
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrBranchNotFound):
			h.logger.Warn("GET /branches/{id}/configs - Branch not found: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, configService.ErrAccessDenied):
			h.logger.Warn("GET /branches/{id}/configs - Access denied: branch_id=%d, user_id=%d", branchID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /branches/{id}/configs - Failed: branch_id=%d, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{id}/configs - Fetched %d configs: branch_id=%d", len(configs.Configs), branchID)
	handlers.RespondJSON(w, http.StatusOK, configs)
}
