package get_available_slots

import (
	"github.com/axlexpert/AX-BookingService/internal/domain"
	getAvailableSlots "github.com/axlexpert/AX-BookingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date     string         `json:"date"` // "2025-09-10"
	BranchID int64          `json:"branchId"`
	Slots    []SlotResponse `json:"slots"`
}

// SlotResponse один слот в ответе
type SlotResponse struct {
	Time            string `json:"time"`    // "14:30"
	Display         string `json:"display"` // "02:30 PM"
	DurationMinutes int    `json:"durationMinutes"`
	AvailableSpots  int    `json:"availableSpots"`
	TotalSpots      int    `json:"totalSpots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:            slot.StartTime.String(),
			Display:         slot.Display,
			DurationMinutes: slot.DurationMinutes,
			AvailableSpots:  slot.AvailableSpots,
			TotalSpots:      slot.TotalSpots,
		}
	}

	return &SlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		BranchID: resp.BranchID,
		Slots:    slots,
	}
}
