package config

import (
	"context"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	"github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
)

// ConfigRepository интерфейс репозитория конфигурации слотов
type ConfigRepository interface {
	GetConfigWithHierarchy(ctx context.Context, branchID int64, serviceID *int64) (*domain.BranchSlotsConfig, error)
	GetAllByBranch(ctx context.Context, branchID int64) ([]*domain.BranchSlotsConfig, error)
	Upsert(ctx context.Context, cfg *domain.BranchSlotsConfig) (*domain.BranchSlotsConfig, error)
}

// BranchServiceClient интерфейс клиента для BranchService
type BranchServiceClient interface {
	GetBranch(ctx context.Context, branchID int64) (*branchservice.Branch, error)
	GetService(ctx context.Context, serviceID int64) (*branchservice.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
