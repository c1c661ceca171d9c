package create_booking

import (
	"time"

	"github.com/axlexpert/AX-BookingService/pkg/types"
)

// Request модель запроса на создание записи.
// StartTime приходит из формы бронирования в 12-часовом виде ("02:30 PM");
// 24-часовой вид тоже принимается.
type Request struct {
	CustomerID    int64     // ID клиента (из заголовка авторизации)
	BranchID      int64     // ID филиала
	ServiceID     int64     // ID услуги
	VehicleID     int64     // ID автомобиля клиента
	CustomerName  string    // Имя клиента
	CustomerPhone string    // Телефон клиента
	Date          time.Time // Дата записи (без времени)
	StartTime     string    // Время слота из формы, например "02:30 PM"
	Notes         *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64 // ID созданной записи
	CustomerID int64 // ID клиента
	BranchID   int64 // ID филиала
	ServiceID  int64 // ID услуги
	VehicleID  int64 // ID автомобиля

	CustomerName  string // Имя клиента
	CustomerPhone string // Телефон клиента

	Date        time.Time        // Дата записи
	StartTime   types.TimeString // Время начала ("14:30")
	ScheduledAt string           // Комбинированная форма "2025-09-10T14:30:00"
	Status      string           // Статус записи

	// Денормализованные данные
	ServiceName        string  // Название услуги
	TotalPrice         float64 // Стоимость услуги
	BranchName         string  // Название филиала
	VehicleDescription *string // Описание автомобиля
	Notes              *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
