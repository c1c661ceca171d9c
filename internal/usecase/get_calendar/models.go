package get_calendar

import "time"

// Request модель запроса календаря на месяц
type Request struct {
	BranchID int64      // ID филиала
	Year     int        // Год, например 2025
	Month    time.Month // Месяц (1-12)
}

// Response модель ответа с сеткой месяца.
// Структура сразу в wire-форме: handler отдает её без конвертации.
type Response struct {
	BranchID int64      `json:"branchId"`
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Days     []Day      `json:"days"` // Ровно 42 ячейки, Sunday-first
}

// Day одна ячейка сетки месяца
type Day struct {
	Date             string        `json:"date"`           // "2025-09-10"
	IsCurrentMonth   bool          `json:"isCurrentMonth"` // false для хвостов соседних месяцев
	IsPast           bool          `json:"isPast"`         // прошедший день, консоль рисует его неактивным
	AppointmentCount int           `json:"appointmentCount"`
	Appointments     []Appointment `json:"appointments"`
}

// Appointment краткая карточка записи в ячейке календаря
type Appointment struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	ServiceName  string `json:"serviceName"`
	Time         string `json:"time"`   // "14:30"
	Status       string `json:"status"` // "PENDING"
}
