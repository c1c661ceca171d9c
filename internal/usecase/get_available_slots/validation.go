package get_available_slots

import (
	"fmt"
	"time"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	"github.com/axlexpert/AX-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchId must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateAdvanceLimit проверяет, что дата не превышает ограничение advanceBookingDays
func validateAdvanceLimit(date time.Time, now time.Time, advanceBookingDays int) error {
	// advanceBookingDays = 0 означает отсутствие ограничений
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// branchSlotTemplate строит сетку слотов филиала из его рабочих часов.
// Нечитаемые часы в справочнике заменяются каноническими значениями.
func branchSlotTemplate(openHours, closeHours string, cadenceMinutes int) []types.TimeString {
	open, err := types.NewTimeStringFromString(openHours)
	if err != nil {
		open = types.TimeString(domain.DefaultOpenTime)
	}

	close, err := types.NewTimeStringFromString(closeHours)
	if err != nil {
		close = types.TimeString(domain.DefaultCloseTime)
	}

	template, err := domain.GenerateSlotTemplate(open, close, cadenceMinutes)
	if err != nil || len(template) == 0 {
		return domain.DefaultSlotTemplate()
	}

	return template
}

// filterByNotice отбрасывает слоты, нарушающие minBookingNoticeMinutes.
// Применяется только когда запрошенная дата - сегодня.
func filterByNotice(slots []types.TimeString, date time.Time, now time.Time, minNoticeMinutes int) []types.TimeString {
	if !domain.SameDay(date, now) {
		return slots
	}

	minAllowed, err := types.NewTimeString(now).AddMinutes(minNoticeMinutes)
	if err != nil {
		// Минимальное время ушло за полночь - сегодня слотов не осталось
		return []types.TimeString{}
	}

	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBefore(minAllowed) {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}

// countOccupancy подсчитывает активные записи по точному времени слота
func countOccupancy(appointments []*domain.Appointment) map[types.TimeString]int {
	taken := make(map[types.TimeString]int, len(appointments))
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		taken[appt.Time]++
	}
	return taken
}
