package staffservice

import "fmt"

// Employee модель сотрудника из StaffService
type Employee struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Available bool   `json:"available"`
}

// Vehicle модель автомобиля клиента из StaffService
type Vehicle struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
}

// Description возвращает краткое описание автомобиля для денормализации
// в записи бронирования, например "Toyota Camry 2019 (AX-1234)"
func (v *Vehicle) Description() string {
	if v.Year > 0 {
		return fmt.Sprintf("%s %s %d (%s)", v.Make, v.Model, v.Year, v.LicensePlate)
	}
	return fmt.Sprintf("%s %s (%s)", v.Make, v.Model, v.LicensePlate)
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
