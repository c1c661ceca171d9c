package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	configRepo "github.com/axlexpert/AX-BookingService/internal/infra/storage/config"
	branchClient "github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	apptRepo     AppointmentRepository
	configRepo   ConfigRepository
	branchClient BranchServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	configRepo ConfigRepository,
	branchClient BranchServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		configRepo:   configRepo,
		branchClient: branchClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: branch=%d, service=%v, date=%s",
		req.BranchID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Прошедшие дни показывают пустой список слотов, а не ошибку:
	// консоль рисует их неактивными
	if domain.DateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past, returning empty slots",
			req.Date.Format(domain.DateFormat))
		return &Response{
			Date:     req.Date,
			BranchID: req.BranchID,
			Slots:    []Slot{},
		}, nil
	}

	// 4. Получаем филиал
	branch, err := uc.branchClient.GetBranch(ctx, req.BranchID)
	if err != nil {
		if errors.Is(err, branchClient.ErrBranchNotFound) {
			uc.logger.Warn("GetAvailableSlots: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	// 5. Получаем конфигурацию слотов с учетом иерархии
	config, err := uc.configRepo.GetConfigWithHierarchy(ctx, req.BranchID, req.ServiceID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = domain.DefaultBranchSlotsConfig()
		config.BranchID = req.BranchID
		uc.logger.Info("GetAvailableSlots: using default config for branch=%d", req.BranchID)
	} else {
		uc.logger.Info("GetAvailableSlots: using config id=%d", config.ID)
	}

	// 6. Валидация даты с учетом конфигурации
	if err := validateAdvanceLimit(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 7. Строим сетку слотов из рабочих часов филиала
	template := branchSlotTemplate(branch.OpenHours, branch.CloseHours, config.SlotDurationMinutes)

	// 8. Получаем все активные записи на эту дату
	filter := domain.BranchAppointmentsFilter{
		BranchID:        &req.BranchID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные записи
	}

	appointments, err := uc.apptRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 9. Вычисляем свободные слоты по точному совпадению времени
	available := domain.AvailableSlots(req.Date, appointments, template, config.MaxConcurrentBookings, now)

	// 10. Отбрасываем сегодняшние слоты, нарушающие minBookingNoticeMinutes
	available = filterByNotice(available, req.Date, now, config.MinBookingNoticeMinutes)

	// 11. Собираем ответ с количеством свободных мест на каждый слот
	taken := countOccupancy(appointments)
	slots := make([]Slot, len(available))
	for i, slot := range available {
		slots[i] = Slot{
			StartTime:       slot,
			Display:         slot.To12Hour(),
			DurationMinutes: config.SlotDurationMinutes,
			AvailableSpots:  config.MaxConcurrentBookings - taken[slot],
			TotalSpots:      config.MaxConcurrentBookings,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for branch=%d, date=%s",
		len(slots), len(template), req.BranchID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date,
		BranchID: req.BranchID,
		Slots:    slots,
	}, nil
}
