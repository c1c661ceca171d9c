package domain

import (
	"time"

	"github.com/axlexpert/AX-BookingService/pkg/types"
)

// GenerateSlotTemplate builds the ordered list of slot start times offered
// per day: every cadence minutes from open to close inclusive. A slot is a
// point-in-time offering, not a duration, so the closing time itself is a
// valid last slot.
func GenerateSlotTemplate(open, close types.TimeString, cadenceMinutes int) ([]types.TimeString, error) {
	if err := open.Validate(); err != nil {
		return nil, err
	}
	if err := close.Validate(); err != nil {
		return nil, err
	}

	template := make([]types.TimeString, 0)

	current := open
	for !current.IsAfter(close) {
		template = append(template, current)

		next, err := current.AddMinutes(cadenceMinutes)
		if err != nil {
			// ran past midnight, the template ends here
			break
		}
		current = next
	}

	return template, nil
}

// DefaultSlotTemplate returns the canonical 17-slot grid
// (09:00 to 17:00, 30-minute cadence)
func DefaultSlotTemplate() []types.TimeString {
	template, _ := GenerateSlotTemplate(
		types.TimeString(DefaultOpenTime),
		types.TimeString(DefaultCloseTime),
		DefaultSlotDurationMinutes,
	)
	return template
}

// AvailableSlots computes the remaining bookable slots for a day.
//
// A slot is consumed when the number of active appointments at exactly that
// time reaches maxConcurrent; durations never block neighbouring slots.
// Days strictly before today (date-only comparison) offer nothing and must
// be rendered non-interactive by callers.
//
// The function is pure; callers may recompute it on every change or memoize
// per (date, appointments) as they see fit.
func AvailableSlots(
	day time.Time,
	appointmentsOnDay []*Appointment,
	template []types.TimeString,
	maxConcurrent int,
	now time.Time,
) []types.TimeString {
	if DateInPast(day, now) {
		return []types.TimeString{}
	}

	if maxConcurrent < MinConcurrentBookings {
		maxConcurrent = DefaultMaxConcurrentBookings
	}

	taken := make(map[types.TimeString]int, len(appointmentsOnDay))
	for _, appt := range appointmentsOnDay {
		if !appt.IsActive() {
			continue
		}
		if !SameDay(appt.Date, day) {
			continue
		}
		taken[appt.Time]++
	}

	available := make([]types.TimeString, 0, len(template))
	for _, slot := range template {
		if taken[slot] < maxConcurrent {
			available = append(available, slot)
		}
	}

	return available
}
