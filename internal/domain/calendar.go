package domain

import "time"

// CalendarDay is one cell of the month grid
type CalendarDay struct {
	Date           time.Time // midnight, local calendar fields
	IsCurrentMonth bool
	Appointments   []*Appointment // fetch order, not time order
}

// GenerateMonthGrid maps (year, month) to a fixed 42-cell grid, Sunday-first.
// The grid is left-padded with the tail of the previous month so day 1 lands
// under its weekday column, and right-padded with the head of the next month
// up to exactly 6 rows. Months that would fit in 4 or 5 rows still get 6;
// the trailing cells simply carry no appointments.
//
// Each appointment whose date falls inside the grid is attached to exactly
// one cell, matched by calendar-day equality. The function is pure and cheap
// enough to rerun on every navigation.
func GenerateMonthGrid(year int, month time.Month, appointments []*Appointment) []CalendarDay {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)

	// Weekday index of day 1 (0 = Sunday) determines the left padding
	lead := int(firstOfMonth.Weekday())
	gridStart := firstOfMonth.AddDate(0, 0, -lead)

	byDay := make(map[string][]*Appointment, len(appointments))
	for _, appt := range appointments {
		key := appt.Date.Format(DateFormat)
		byDay[key] = append(byDay[key], appt)
	}

	grid := make([]CalendarDay, 0, GridCells)
	for i := 0; i < GridCells; i++ {
		date := gridStart.AddDate(0, 0, i)
		grid = append(grid, CalendarDay{
			Date:           date,
			IsCurrentMonth: date.Month() == month && date.Year() == year,
			Appointments:   byDay[date.Format(DateFormat)],
		})
	}

	return grid
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateInPast reports whether date is strictly before now, comparing
// calendar days only
func DateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
