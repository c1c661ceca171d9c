package appointments

import (
	"context"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	"github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
)

// AppointmentRepository интерфейс репозитория записей на обслуживание
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.BranchAppointmentsFilter) ([]*domain.Appointment, error)
	Complete(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64, reason string) error
	Delete(ctx context.Context, id int64) error
}

// BranchServiceClient интерфейс клиента для BranchService
type BranchServiceClient interface {
	GetBranch(ctx context.Context, branchID int64) (*branchservice.Branch, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
