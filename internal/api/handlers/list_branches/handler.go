package list_branches

import (
	"net/http"

	"github.com/axlexpert/AX-BookingService/internal/api/handlers"
)

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

// Handle GET /api/v1/branches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branches, err := h.service.GetBranches(r.Context())
	if err != nil {
		h.logger.Error("GET /branches - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /branches - Fetched %d branches", len(branches.Branches))
	handlers.RespondJSON(w, http.StatusOK, branches)
}
