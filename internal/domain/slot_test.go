package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlexpert/AX-BookingService/pkg/types"
)

func TestDefaultSlotTemplate_Canonical17Slots(t *testing.T) {
	template := DefaultSlotTemplate()

	require.Len(t, template, 17)
	assert.Equal(t, types.TimeString("09:00"), template[0])
	assert.Equal(t, types.TimeString("09:30"), template[1])
	assert.Equal(t, types.TimeString("12:00"), template[6])
	assert.Equal(t, types.TimeString("17:00"), template[16], "closing time is a valid last slot")
}

func TestGenerateSlotTemplate_CustomCadence(t *testing.T) {
	template, err := GenerateSlotTemplate("10:00", "12:00", 60)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:00", "12:00"}, template)
}

func TestGenerateSlotTemplate_InvalidBounds(t *testing.T) {
	_, err := GenerateSlotTemplate("9:00", "17:00", 30)
	assert.Error(t, err, "non-zero-padded open time must be rejected")

	_, err = GenerateSlotTemplate("09:00", "25:00", 30)
	assert.Error(t, err)
}

func TestAvailableSlots_ExactMatchConsumption(t *testing.T) {
	day := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)
	template := DefaultSlotTemplate()

	appointments := []*Appointment{
		{ID: 1, Date: day, Time: "14:30", Status: StatusPending},
	}

	available := AvailableSlots(day, appointments, template, 1, now)

	require.Len(t, available, 16)
	assert.NotContains(t, available, types.TimeString("14:30"))
	// длительность записи не блокирует соседние слоты
	assert.Contains(t, available, types.TimeString("14:00"))
	assert.Contains(t, available, types.TimeString("15:00"))
}

func TestAvailableSlots_CancelledDoesNotOccupy(t *testing.T) {
	day := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)

	appointments := []*Appointment{
		{ID: 1, Date: day, Time: "14:30", Status: StatusCancelled},
	}

	available := AvailableSlots(day, appointments, DefaultSlotTemplate(), 1, now)

	assert.Len(t, available, 17)
	assert.Contains(t, available, types.TimeString("14:30"))
}

func TestAvailableSlots_MaxConcurrentSpots(t *testing.T) {
	day := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)

	appointments := []*Appointment{
		{ID: 1, Date: day, Time: "09:00", Status: StatusPending},
		{ID: 2, Date: day, Time: "09:00", Status: StatusApproved},
	}

	// два места на слот: 09:00 занят полностью
	available := AvailableSlots(day, appointments, DefaultSlotTemplate(), 2, now)
	assert.NotContains(t, available, types.TimeString("09:00"))

	// три места: ещё остаётся одно
	available = AvailableSlots(day, appointments, DefaultSlotTemplate(), 3, now)
	assert.Contains(t, available, types.TimeString("09:00"))
}

func TestAvailableSlots_PastDayOffersNothing(t *testing.T) {
	day := time.Date(2025, time.September, 9, 0, 0, 0, 0, time.Local)
	now := time.Date(2025, time.September, 10, 8, 0, 0, 0, time.Local)

	available := AvailableSlots(day, nil, DefaultSlotTemplate(), 1, now)

	assert.Empty(t, available)
}

func TestAvailableSlots_IgnoresOtherDays(t *testing.T) {
	day := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)

	appointments := []*Appointment{
		{ID: 1, Date: day.AddDate(0, 0, 1), Time: "09:00", Status: StatusPending},
	}

	available := AvailableSlots(day, appointments, DefaultSlotTemplate(), 1, now)

	assert.Len(t, available, 17)
}
