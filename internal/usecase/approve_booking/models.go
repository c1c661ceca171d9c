package approve_booking

// Request модель запроса на подтверждение записи с назначением сотрудника
type Request struct {
	UserID        int64  // ID менеджера, выполняющего операцию
	AppointmentID int64  // ID записи
	EmployeeID    *int64 // ID назначаемого сотрудника; обязателен
}

// Response модель ответа с подтверждённой записью
type Response struct {
	ID                   int64  // ID записи
	Status               string // Новый статус ("APPROVED")
	AssignedEmployeeID   int64  // ID назначенного сотрудника
	AssignedEmployeeName string // Имя назначенного сотрудника
}
