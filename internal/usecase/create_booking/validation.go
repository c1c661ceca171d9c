package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	"github.com/axlexpert/AX-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Собирает все проблемы разом, чтобы форма бронирования могла показать
// полный список, а не первую попавшуюся ошибку.
func validateRequest(req *Request) error {
	problems := make([]string, 0)

	if req.CustomerID <= 0 {
		problems = append(problems, "customerId: must be positive")
	}

	if req.BranchID <= 0 {
		problems = append(problems, "branchId: must be positive")
	}

	if req.ServiceID <= 0 {
		problems = append(problems, "serviceId: service is required")
	}

	if req.VehicleID <= 0 {
		problems = append(problems, "vehicleId: vehicle is required")
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		problems = append(problems, "customerName: name is required")
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		problems = append(problems, "customerPhone: phone is required")
	}

	if req.Date.IsZero() {
		problems = append(problems, "date: date is required")
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		problems = append(problems, fmt.Sprintf("notes: must not exceed %d characters", domain.MaxNotesLength))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}

	return nil
}

// parseStartTime разбирает время слота из формы бронирования.
// Принимает 12-часовой вид ("02:30 PM") и 24-часовой ("14:30"); при
// нечитаемом значении возвращает время открытия - форма подставляет
// первый слот дня вместо отказа.
func parseStartTime(raw string) types.TimeString {
	if parsed, err := types.NewTimeStringFrom12Hour(raw); err == nil {
		return parsed
	}

	if parsed, err := types.NewTimeStringFromString(raw); err == nil {
		return parsed
	}

	return types.TimeString(domain.DefaultOpenTime)
}

// validateDate проверяет, что дата подходит для записи
func validateDate(date time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if domain.DateInPast(date, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
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

// validateNotice проверяет, что запись не нарушает minBookingNoticeMinutes
func validateNotice(date time.Time, startTime types.TimeString, now time.Time, minNoticeMinutes int) error {
	// Если дата записи не сегодня, проверка не нужна
	if !domain.SameDay(date, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate min allowed time: %v", ErrInternal, err)
	}

	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}

// validateSlotInTemplate проверяет, что время входит в сетку слотов филиала
func validateSlotInTemplate(startTime types.TimeString, template []types.TimeString) error {
	for _, slot := range template {
		if slot == startTime {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not in the branch slot grid", ErrInvalidTimeSlot, startTime)
}

// countSlotOccupancy подсчитывает активные записи ровно на это время.
// Слот считается занятым только записями с точно совпадающим временем
// начала; длительность соседние слоты не блокирует.
func countSlotOccupancy(startTime types.TimeString, appointments []*domain.Appointment) int {
	count := 0
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.Time == startTime {
			count++
		}
	}
	return count
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
