package get_branch_config

import (
	"context"

	"github.com/axlexpert/AX-BookingService/internal/service/config/models"
)

type ConfigService interface {
	GetWithHierarchy(ctx context.Context, branchID int64, serviceID *int64) (*models.ConfigResponse, error)
	GetAllByBranch(ctx context.Context, branchID int64, userID int64) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
