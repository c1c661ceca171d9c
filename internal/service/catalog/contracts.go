package catalog

import (
	"context"

	"github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	"github.com/axlexpert/AX-BookingService/internal/integrations/staffservice"
)

// BranchServiceClient интерфейс клиента для BranchService
type BranchServiceClient interface {
	GetAllBranches(ctx context.Context) ([]branchservice.Branch, error)
	GetAllServices(ctx context.Context) ([]branchservice.Service, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetEmployeesWithGracefulDegradation(ctx context.Context) ([]staffservice.Employee, error)
}

// ReferenceCache интерфейс кеша справочных данных.
// Реализация может отсутствовать (nil-safe обёртка в сервисе).
type ReferenceCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) bool
	SetJSON(ctx context.Context, key string, value interface{})
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
