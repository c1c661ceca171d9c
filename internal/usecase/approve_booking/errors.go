package approve_booking

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("approve_booking: appointment not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("approve_booking: employee not found")

	// ErrEmployeeNotAvailable возвращается, когда сотрудник недоступен для назначения
	ErrEmployeeNotAvailable = errors.New("approve_booking: employee is not available")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("approve_booking: access denied")

	// ErrCannotApprove возвращается, когда запись нельзя подтвердить из текущего статуса
	ErrCannotApprove = errors.New("approve_booking: appointment cannot be approved")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_booking: internal error")
)
