package domain

// Default slot configuration values.
// With these defaults a branch offers the classic AxleXpert grid:
// 17 slots, 30-minute cadence, 09:00 to 17:00, one appointment per slot.
const (
	DefaultOpenTime                = "09:00"
	DefaultCloseTime               = "17:00"
	DefaultSlotDurationMinutes     = 30
	DefaultMaxConcurrentBookings   = 1
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 0
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MinConcurrentBookings       = 1
	MaxConcurrentBookingsLimit  = 100
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MinNoticeMinutes            = 0
	MaxNoticeMinutes            = 10080 // 1 week
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// ScheduledAtFormat combines both for the wire, e.g. "2025-09-10T14:30:00"
	ScheduledAtFormat = "2006-01-02T15:04:05"
)

// Month grid dimensions: 6 rows of 7 weekday columns, always fully emitted
// so short months render the same frame as long ones
const (
	GridColumns = 7
	GridRows    = 6
	GridCells   = GridRows * GridColumns
)

// InactiveStatuses lists statuses that do not occupy slots
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that occupy slots
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusCompleted,
}
