package staffservice

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден у клиента
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что StaffService недоступен и списки сотрудников следует
	// считать пустыми, не роняя запрос целиком.
	ErrServiceDegraded = errors.New("staffservice unavailable: graceful degradation applied")
)
