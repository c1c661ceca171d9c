package update_branch_config

import "github.com/axlexpert/AX-BookingService/internal/service/config/models"

// UpdateConfigRequest HTTP request model
type UpdateConfigRequest struct {
	ServiceID               *int64 `json:"serviceId,omitempty"`
	SlotDurationMinutes     *int   `json:"slotDurationMinutes,omitempty"`
	MaxConcurrentBookings   *int   `json:"maxConcurrentBookings,omitempty"`
	AdvanceBookingDays      *int   `json:"advanceBookingDays,omitempty"`
	MinBookingNoticeMinutes *int   `json:"minBookingNoticeMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервисного слоя
func (r *UpdateConfigRequest) ToServiceRequest(userID, branchID int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		UserID:                  userID,
		BranchID:                branchID,
		ServiceID:               r.ServiceID,
		SlotDurationMinutes:     r.SlotDurationMinutes,
		MaxConcurrentBookings:   r.MaxConcurrentBookings,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}
}
