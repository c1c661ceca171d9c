package branchservice

// Branch модель филиала из BranchService
type Branch struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	OpenHours  string  `json:"open_hours"`  // "09:00"
	CloseHours string  `json:"close_hours"` // "17:00"
	ManagerIDs []int64 `json:"manager_ids"`
}

// Service модель услуги из каталога BranchService
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
	Description     *string  `json:"description,omitempty"`
}

// ErrorResponse модель ошибки от BranchService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
