package list_branches

import (
	"context"

	"github.com/axlexpert/AX-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetBranches(ctx context.Context) (*models.BranchListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
