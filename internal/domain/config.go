package domain

import "time"

// BranchSlotsConfig represents the slot configuration of a branch.
// Supports hierarchical configuration:
// 1. Service at a branch (branch_id, service_id)
// 2. Branch-wide (branch_id, NULL)
// Absent rows fall back to the canonical defaults in constants.go.
type BranchSlotsConfig struct {
	ID                      int64
	BranchID                int64
	ServiceID               *int64 // NULL = config for all services
	SlotDurationMinutes     int
	MaxConcurrentBookings   int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsBranchWide returns true if this configuration applies to all services
func (c *BranchSlotsConfig) IsBranchWide() bool {
	return c.ServiceID == nil
}

// IsServiceSpecific returns true if this configuration is for one service
func (c *BranchSlotsConfig) IsServiceSpecific() bool {
	return c.ServiceID != nil
}

// HasAdvanceBookingLimit returns true if there is a limit on how far in
// advance appointments can be booked
func (c *BranchSlotsConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// SupportsParallelBookings returns true if a slot holds more than one
// appointment
func (c *BranchSlotsConfig) SupportsParallelBookings() bool {
	return c.MaxConcurrentBookings > 1
}

// DefaultBranchSlotsConfig returns the fallback configuration used when a
// branch has no stored config
func DefaultBranchSlotsConfig() *BranchSlotsConfig {
	return &BranchSlotsConfig{
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		MaxConcurrentBookings:   DefaultMaxConcurrentBookings,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}
