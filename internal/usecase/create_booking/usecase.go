package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	configRepo "github.com/axlexpert/AX-BookingService/internal/infra/storage/config"
	branchClient "github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	staffClient "github.com/axlexpert/AX-BookingService/internal/integrations/staffservice"
	"github.com/axlexpert/AX-BookingService/pkg/ptr"
)

// UseCase use case для создания записи на обслуживание
type UseCase struct {
	apptRepo     AppointmentRepository
	configRepo   ConfigRepository
	branchClient BranchServiceClient
	staffClient  StaffServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	configRepo ConfigRepository,
	branchClient BranchServiceClient,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		configRepo:   configRepo,
		branchClient: branchClient,
		staffClient:  staffClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, branch=%d, service=%d, vehicle=%d, date=%s, time=%q",
		req.CustomerID, req.BranchID, req.ServiceID, req.VehicleID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных - до любых внешних вызовов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Разбираем время слота из формы (лояльный парсинг с подстановкой
	// времени открытия при нечитаемом значении)
	startTime := parseStartTime(req.StartTime)

	// 4. Получаем филиал
	branch, err := uc.branchClient.GetBranch(ctx, req.BranchID)
	if err != nil {
		if errors.Is(err, branchClient.ErrBranchNotFound) {
			uc.logger.Warn("CreateBooking: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("CreateBooking: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	// 5. Получаем услугу из каталога
	service, err := uc.branchClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, branchClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Проверяем, что автомобиль принадлежит клиенту
	vehicle, err := uc.staffClient.GetUserVehicle(ctx, req.CustomerID, req.VehicleID)
	if err != nil {
		if errors.Is(err, staffClient.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: vehicle id=%d not found for customer id=%d", req.VehicleID, req.CustomerID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем конфигурацию слотов с учетом иерархии
		config, err := uc.configRepo.GetConfigWithHierarchy(txCtx, req.BranchID, ptr.Ptr(req.ServiceID))
		if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Error("CreateBooking: failed to get config: %v", err)
			return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
		}

		// Если конфигурация не найдена, используем дефолтные значения
		if config == nil {
			config = domain.DefaultBranchSlotsConfig()
			config.BranchID = req.BranchID
			uc.logger.Info("CreateBooking: using default config for branch=%d, service=%d",
				req.BranchID, req.ServiceID)
		} else {
			uc.logger.Info("CreateBooking: using config id=%d", config.ID)
		}

		// 7.2. Валидация даты с учетом конфигурации
		if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 7.3. Проверяем, что время входит в сетку слотов филиала
		template := branchSlotTemplate(branch.OpenHours, branch.CloseHours, config.SlotDurationMinutes)
		if err := validateSlotInTemplate(startTime, template); err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return err
		}

		// 7.4. Валидация времени записи (minBookingNoticeMinutes)
		if err := validateNotice(req.Date, startTime, now, config.MinBookingNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
			return err
		}

		// 7.5. Получаем все активные записи на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BranchAppointmentsFilter{
			BranchID:        &req.BranchID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные записи
		}

		appointments, err := uc.apptRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.6. Проверяем занятость слота по точному совпадению времени
		taken := countSlotOccupancy(startTime, appointments)
		if taken >= config.MaxConcurrentBookings {
			uc.logger.Warn("CreateBooking: slot not available, %d/%d spots taken",
				taken, config.MaxConcurrentBookings)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d spots taken",
			taken, config.MaxConcurrentBookings)

		// 7.7. Создаем запись с денормализацией данных
		appt := &domain.Appointment{
			CustomerID:    req.CustomerID,
			BranchID:      req.BranchID,
			ServiceID:     req.ServiceID,
			VehicleID:     req.VehicleID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			Time:          startTime,
			Status:        domain.StatusPending,
			// Денормализация данных услуги и филиала
			ServiceName: service.Name,
			TotalPrice:  getServicePrice(service),
			BranchName:  branch.Name,
			// Денормализация данных автомобиля
			VehicleDescription: ptr.Ptr(vehicle.Description()),
			// Заметки
			Notes: req.Notes,
		}

		// 7.8. Сохраняем запись
		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d, scheduledAt=%s",
		result.ID, result.ScheduledAt())

	// Конвертируем в response
	return &Response{
		ID:                 result.ID,
		CustomerID:         result.CustomerID,
		BranchID:           result.BranchID,
		ServiceID:          result.ServiceID,
		VehicleID:          result.VehicleID,
		CustomerName:       result.CustomerName,
		CustomerPhone:      result.CustomerPhone,
		Date:               result.Date,
		StartTime:          result.Time,
		ScheduledAt:        result.ScheduledAt(),
		Status:             string(result.Status),
		ServiceName:        result.ServiceName,
		TotalPrice:         result.TotalPrice,
		BranchName:         result.BranchName,
		VehicleDescription: result.VehicleDescription,
		Notes:              result.Notes,
		CreatedAt:          result.CreatedAt,
		UpdatedAt:          result.UpdatedAt,
	}, nil
}

// getServicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func getServicePrice(service *branchClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
