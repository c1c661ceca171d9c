package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionTo_LifecycleTable(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusApproved, StatusCompleted, true},
		{StatusApproved, StatusCancelled, true},
		{StatusApproved, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusApproved, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestParseStatus_CaseInsensitive(t *testing.T) {
	status, err := ParseStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	status, err = ParseStatus("  Approved ")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status)

	_, err = ParseStatus("REJECTED")
	assert.Error(t, err)
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Display())
	assert.Equal(t, "Cancelled", StatusCancelled.Display())
}

func TestAppointment_DeletionOnlyWhilePending(t *testing.T) {
	appt := &Appointment{Status: StatusPending}
	assert.True(t, appt.CanBeDeleted())

	for _, status := range []AppointmentStatus{StatusApproved, StatusCompleted, StatusCancelled} {
		appt.Status = status
		assert.False(t, appt.CanBeDeleted(), "status %s", status)
	}
}

func TestAppointment_CanBeCancelled(t *testing.T) {
	appt := &Appointment{Status: StatusPending}
	assert.True(t, appt.CanBeCancelled())

	appt.Status = StatusApproved
	assert.True(t, appt.CanBeCancelled())

	appt.Status = StatusCompleted
	assert.False(t, appt.CanBeCancelled())

	appt.Status = StatusCancelled
	assert.False(t, appt.CanBeCancelled())
}

func TestAppointment_IsActive(t *testing.T) {
	for _, status := range ActiveStatuses {
		appt := &Appointment{Status: status}
		assert.True(t, appt.IsActive(), "status %s", status)
	}

	appt := &Appointment{Status: StatusCancelled}
	assert.False(t, appt.IsActive())
}

func TestAppointment_ScheduledAt(t *testing.T) {
	appt := &Appointment{
		Date: time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
		Time: "14:30",
	}

	assert.Equal(t, "2025-09-10T14:30:00", appt.ScheduledAt())

	// seconds are always zero regardless of the slot
	appt.Time = "09:00"
	assert.Equal(t, "2025-09-10T09:00:00", appt.ScheduledAt())
}
