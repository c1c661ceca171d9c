package get_branch_bookings

import (
	"context"

	"github.com/axlexpert/AX-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetBranchAppointments(ctx context.Context, req *models.GetBranchAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
