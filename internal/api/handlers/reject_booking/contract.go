package reject_booking

import (
	"context"

	"github.com/axlexpert/AX-BookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	Reject(ctx context.Context, appointmentID int64, req *models.RejectAppointmentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
