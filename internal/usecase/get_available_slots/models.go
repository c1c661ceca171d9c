package get_available_slots

import (
	"time"

	"github.com/axlexpert/AX-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BranchID  int64     // ID филиала
	ServiceID *int64    // ID услуги (опционально, уточняет конфигурацию)
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     time.Time // Дата, на которую запрашивались слоты
	BranchID int64     // ID филиала
	Slots    []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота ("14:30")
	Display         string           // 12-часовая форма для консоли ("02:30 PM")
	DurationMinutes int              // Длительность слота в минутах
	AvailableSpots  int              // Количество свободных мест
	TotalSpots      int              // Общее количество мест
}
