package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMonthGrid_Always42Cells(t *testing.T) {
	months := []struct {
		year  int
		month time.Month
	}{
		{2025, time.February},  // 28 days, starts on Saturday
		{2024, time.February},  // leap year
		{2025, time.September}, // starts on Monday
		{2026, time.March},     // starts on Sunday
		{2025, time.December},
	}

	for _, m := range months {
		grid := GenerateMonthGrid(m.year, m.month, nil)
		assert.Len(t, grid, GridCells, "%d-%d must render exactly 6x7 cells", m.year, m.month)
	}
}

func TestGenerateMonthGrid_Day1UnderItsWeekday(t *testing.T) {
	// September 2025 starts on Monday: one leading cell from August
	grid := GenerateMonthGrid(2025, time.September, nil)

	first := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.Local)
	lead := int(first.Weekday())

	require.Equal(t, 1, lead)
	assert.Equal(t, time.August, grid[0].Date.Month())
	assert.False(t, grid[0].IsCurrentMonth)

	assert.Equal(t, first, grid[lead].Date)
	assert.True(t, grid[lead].IsCurrentMonth)
	assert.Equal(t, time.Monday, grid[lead].Date.Weekday())
}

func TestGenerateMonthGrid_SundayStartHasNoLead(t *testing.T) {
	// March 2026 starts on Sunday: cell 0 is day 1 itself
	grid := GenerateMonthGrid(2026, time.March, nil)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), grid[0].Date)
	assert.True(t, grid[0].IsCurrentMonth)
}

func TestGenerateMonthGrid_TrailingCellsFromNextMonth(t *testing.T) {
	grid := GenerateMonthGrid(2025, time.September, nil)

	last := grid[GridCells-1]
	assert.Equal(t, time.October, last.Date.Month())
	assert.False(t, last.IsCurrentMonth)

	// Consecutive dates across the whole grid
	for i := 1; i < GridCells; i++ {
		assert.Equal(t, grid[i-1].Date.AddDate(0, 0, 1), grid[i].Date)
	}
}

func TestGenerateMonthGrid_AppointmentsAttachedToTheirDay(t *testing.T) {
	day := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local)
	other := time.Date(2025, time.September, 11, 0, 0, 0, 0, time.Local)

	appointments := []*Appointment{
		{ID: 1, Date: day, Time: "09:00", Status: StatusPending},
		{ID: 2, Date: day, Time: "14:30", Status: StatusApproved},
		{ID: 3, Date: other, Time: "09:00", Status: StatusPending},
	}

	grid := GenerateMonthGrid(2025, time.September, appointments)

	attached := 0
	for _, cell := range grid {
		if SameDay(cell.Date, day) {
			require.Len(t, cell.Appointments, 2)
		}
		attached += len(cell.Appointments)
	}

	// каждая запись попадает ровно в одну ячейку
	assert.Equal(t, 3, attached)
}

func TestDateInPast_ComparesCalendarDaysOnly(t *testing.T) {
	now := time.Date(2025, time.September, 10, 15, 30, 0, 0, time.Local)

	assert.True(t, DateInPast(now.AddDate(0, 0, -1), now))
	assert.False(t, DateInPast(now, now), "same day is not past even late in the day")
	assert.False(t, DateInPast(now.AddDate(0, 0, 1), now))

	// полночь того же дня - не прошлое
	midnight := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local)
	assert.False(t, DateInPast(midnight, now))
}
