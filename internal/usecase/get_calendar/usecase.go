package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	branchClient "github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
)

// UseCase use case для построения календаря записей на месяц
type UseCase struct {
	apptRepo     AppointmentRepository
	branchClient BranchServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	branchClient BranchServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		branchClient: branchClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения календаря.
// Сетка всегда содержит 42 ячейки: хвосты соседних месяцев дополняют
// первую и последнюю неделю, чтобы день 1 стоял под своим днём недели.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: branch=%d, year=%d, month=%d", req.BranchID, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование филиала
	if _, err := uc.branchClient.GetBranch(ctx, req.BranchID); err != nil {
		if errors.Is(err, branchClient.ErrBranchNotFound) {
			uc.logger.Warn("GetCalendar: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("GetCalendar: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	// 3. Загружаем записи на весь диапазон сетки, включая хвосты
	// соседних месяцев
	firstOfMonth := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.Local)
	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	gridEnd := gridStart.AddDate(0, 0, domain.GridCells-1)

	filter := domain.BranchAppointmentsFilter{
		BranchID:        &req.BranchID,
		StartDate:       &gridStart,
		EndDate:         &gridEnd,
		IncludeInactive: false, // Отменённые записи в календаре не показываются
	}

	appointments, err := uc.apptRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Строим сетку месяца
	grid := domain.GenerateMonthGrid(req.Year, req.Month, appointments)

	// 5. Конвертируем в response
	now := uc.timeProvider.Now()
	days := make([]Day, len(grid))
	for i, cell := range grid {
		cards := make([]Appointment, len(cell.Appointments))
		for j, appt := range cell.Appointments {
			cards[j] = Appointment{
				ID:           appt.ID,
				CustomerName: appt.CustomerName,
				ServiceName:  appt.ServiceName,
				Time:         appt.Time.String(),
				Status:       string(appt.Status),
			}
		}

		days[i] = Day{
			Date:             cell.Date.Format(domain.DateFormat),
			IsCurrentMonth:   cell.IsCurrentMonth,
			IsPast:           domain.DateInPast(cell.Date, now),
			AppointmentCount: len(cards),
			Appointments:     cards,
		}
	}

	uc.logger.Info("GetCalendar: built %d-cell grid with %d appointments for branch=%d",
		len(days), len(appointments), req.BranchID)

	return &Response{
		BranchID: req.BranchID,
		Year:     req.Year,
		Month:    req.Month,
		Days:     days,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchId must be positive", ErrInvalidInput)
	}

	if req.Year < 1970 || req.Year > 2100 {
		return fmt.Errorf("%w: year must be between 1970 and 2100", ErrInvalidInput)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	return nil
}
