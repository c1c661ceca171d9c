package models

import (
	"time"

	"github.com/axlexpert/AX-BookingService/internal/domain"
)

// Request модели

// RejectAppointmentRequest запрос на отклонение записи
type RejectAppointmentRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// CompleteAppointmentRequest запрос на завершение записи
type CompleteAppointmentRequest struct {
	UserID int64 `json:"userId"`
}

// GetUserAppointmentsRequest запрос на получение записей пользователя
type GetUserAppointmentsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetBranchAppointmentsRequest запрос на получение записей филиала.
// Branch/date фильтруются в хранилище, status/search - поверх выборки.
type GetBranchAppointmentsRequest struct {
	UserID          int64      `json:"userId"`
	BranchID        int64      `json:"branchId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          string     `json:"status,omitempty"`          // Фильтр по статусу; "All" или "" - без фильтра
	SearchText      string     `json:"searchText,omitempty"`      // Поиск по имени клиента
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые записи
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customerId"`
	BranchID   int64 `json:"branchId"`
	ServiceID  int64 `json:"serviceId"`
	VehicleID  int64 `json:"vehicleId"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	Date        string `json:"date"`        // "2025-09-10"
	Time        string `json:"time"`        // "14:30"
	ScheduledAt string `json:"scheduledAt"` // "2025-09-10T14:30:00"
	Status      string `json:"status"`

	// Денормализованные данные
	ServiceName        string  `json:"serviceName"`
	TotalPrice         float64 `json:"totalPrice"`
	BranchName         string  `json:"branchName"`
	VehicleDescription *string `json:"vehicleDescription,omitempty"`
	Notes              *string `json:"notes,omitempty"`

	AssignedEmployeeID   *int64  `json:"assignedEmployeeId,omitempty"`
	AssignedEmployeeName *string `json:"assignedEmployeeName,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                   a.ID,
		CustomerID:           a.CustomerID,
		BranchID:             a.BranchID,
		ServiceID:            a.ServiceID,
		VehicleID:            a.VehicleID,
		CustomerName:         a.CustomerName,
		CustomerPhone:        a.CustomerPhone,
		Date:                 a.Date.Format(domain.DateFormat),
		Time:                 a.Time.String(),
		ScheduledAt:          a.ScheduledAt(),
		Status:               string(a.Status),
		ServiceName:          a.ServiceName,
		TotalPrice:           a.TotalPrice,
		BranchName:           a.BranchName,
		VehicleDescription:   a.VehicleDescription,
		Notes:                a.Notes,
		AssignedEmployeeID:   a.AssignedEmployeeID,
		AssignedEmployeeName: a.AssignedEmployeeName,
		CancellationReason:   a.CancellationReason,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}
