package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/axlexpert/AX-BookingService/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment.
// The wire form is uppercase; use Display for the title-case form shown
// in the console.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusApproved  AppointmentStatus = "APPROVED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// ParseStatus canonicalizes a status string, accepting any casing
func ParseStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return status, nil
	}
	return "", fmt.Errorf("unknown appointment status %q", s)
}

// Display returns the title-case form, e.g. "Pending"
func (s AppointmentStatus) Display() string {
	if len(s) == 0 {
		return ""
	}
	return string(s[:1]) + strings.ToLower(string(s[1:]))
}

// IsTerminal reports whether no further transitions are possible
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// transitions is the exhaustive lifecycle table:
// PENDING  -> APPROVED | CANCELLED
// APPROVED -> COMPLETED | CANCELLED
// COMPLETED and CANCELLED are terminal. Backward transitions are never
// allowed; there is deliberately no generic status update path around this.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusApproved, StatusCancelled},
	StatusApproved:  {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransitionTo reports whether the lifecycle permits moving to next
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment represents a service appointment at a branch
type Appointment struct {
	ID         int64
	CustomerID int64
	BranchID   int64
	ServiceID  int64
	VehicleID  int64

	CustomerName  string
	CustomerPhone string

	Date   time.Time        // calendar date, time-of-day ignored
	Time   types.TimeString // slot start, "HH:MM"
	Status AppointmentStatus

	// Denormalized data for history
	ServiceName        string
	TotalPrice         float64
	BranchName         string
	VehicleDescription *string
	Notes              *string

	// Present only once the appointment has been approved
	AssignedEmployeeID   *int64
	AssignedEmployeeName *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled reports whether the appointment may still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// CanBeDeleted reports whether physical deletion is permitted.
// Only pending appointments may be deleted; anything later must be
// cancelled so the history survives.
func (a *Appointment) CanBeDeleted() bool {
	return a.Status == StatusPending
}

// IsAssigned reports whether an employee has been assigned
func (a *Appointment) IsAssigned() bool {
	return a.AssignedEmployeeID != nil
}

// ScheduledAt combines date and slot time into the wire form
// "YYYY-MM-DDTHH:mm:00", built from local calendar fields
func (a *Appointment) ScheduledAt() string {
	return fmt.Sprintf("%sT%s:00", a.Date.Format(DateFormat), a.Time)
}

// BranchAppointmentsFilter is the storage-level filter for branch listings
type BranchAppointmentsFilter struct {
	BranchID        *int64             // nil = all branches
	StartDate       *time.Time         // nil = no lower bound
	EndDate         *time.Time         // nil = no upper bound
	Status          *AppointmentStatus // nil = any status
	IncludeInactive bool               // include cancelled appointments
}
