package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("branch not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotReject возвращается, когда запись нельзя отклонить
	ErrCannotReject = errors.New("appointment cannot be rejected")

	// ErrCannotComplete возвращается, когда запись нельзя завершить
	ErrCannotComplete = errors.New("appointment cannot be completed")

	// ErrCannotDelete возвращается, когда запись нельзя удалить
	ErrCannotDelete = errors.New("appointment cannot be deleted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
