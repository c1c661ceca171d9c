package create_booking

import (
	"time"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	createBooking "github.com/axlexpert/AX-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Time приходит из формы бронирования в 12-часовом виде ("02:30 PM").
type CreateBookingRequest struct {
	BranchID      int64   `json:"branchId"`
	ServiceID     int64   `json:"serviceId"`
	VehicleID     int64   `json:"vehicleId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"` // "2025-09-10"
	Time          string  `json:"time"` // "02:30 PM"
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"customerId"`
	BranchID           int64   `json:"branchId"`
	ServiceID          int64   `json:"serviceId"`
	VehicleID          int64   `json:"vehicleId"`
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	ScheduledAt        string  `json:"scheduledAt"` // "2025-09-10T14:30:00"
	Status             string  `json:"status"`
	ServiceName        string  `json:"serviceName"`
	TotalPrice         float64 `json:"totalPrice"`
	BranchName         string  `json:"branchName"`
	VehicleDescription *string `json:"vehicleDescription,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Время слота не парсится здесь: use case разбирает его лояльно,
// с подстановкой времени открытия.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:    userID,
		BranchID:      r.BranchID,
		ServiceID:     r.ServiceID,
		VehicleID:     r.VehicleID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     r.Time,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                 resp.ID,
		CustomerID:         resp.CustomerID,
		BranchID:           resp.BranchID,
		ServiceID:          resp.ServiceID,
		VehicleID:          resp.VehicleID,
		CustomerName:       resp.CustomerName,
		CustomerPhone:      resp.CustomerPhone,
		Date:               resp.Date.Format(domain.DateFormat),
		Time:               resp.StartTime.String(),
		ScheduledAt:        resp.ScheduledAt,
		Status:             resp.Status,
		ServiceName:        resp.ServiceName,
		TotalPrice:         resp.TotalPrice,
		BranchName:         resp.BranchName,
		VehicleDescription: resp.VehicleDescription,
		Notes:              resp.Notes,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
