package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	configRepo "github.com/axlexpert/AX-BookingService/internal/infra/storage/config"
	branchClient "github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	"github.com/axlexpert/AX-BookingService/internal/service/config/models"
)

// Service сервис для работы с конфигурацией слотов
type Service struct {
	configRepo   ConfigRepository
	branchClient BranchServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configRepo ConfigRepository,
	branchClient BranchServiceClient,
	logger Logger,
) *Service {
	return &Service{
		configRepo:   configRepo,
		branchClient: branchClient,
		logger:       logger,
	}
}

// Upsert создает или обновляет конфигурацию слотов филиала
// Доступно только менеджерам филиала
// Проверяет существование филиала и услуги (если указана)
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: upserting config for branch=%d, service=%v by user=%d",
		req.BranchID, req.ServiceID, req.UserID)

	// 1. Конвертируем и валидируем входные данные
	cfg := req.ToDomainConfig()
	if err := s.validateConfigData(cfg); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем филиал для проверки прав доступа
	branch, err := s.branchClient.GetBranch(ctx, req.BranchID)
	if err != nil {
		if errors.Is(err, branchClient.ErrBranchNotFound) {
			s.logger.Warn("Upsert: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		s.logger.Error("Upsert: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа (только менеджер филиала)
	if !s.isManager(branch, req.UserID) {
		s.logger.Warn("Upsert: user=%d is not a manager of branch=%d", req.UserID, req.BranchID)
		return nil, ErrAccessDenied
	}

	// 4. Если указан serviceID, проверяем его существование
	if req.ServiceID != nil {
		if _, err := s.branchClient.GetService(ctx, *req.ServiceID); err != nil {
			if errors.Is(err, branchClient.ErrServiceNotFound) {
				s.logger.Warn("Upsert: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			s.logger.Error("Upsert: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	// 5. Сохраняем конфигурацию
	saved, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved config id=%d", saved.ID)
	return models.FromDomainConfig(saved), nil
}

// GetWithHierarchy получает конфигурацию с учетом иерархии приоритетов
// Публичный метод - используется для расчёта слотов при бронировании
// Приоритет: service > branch; при отсутствии строк возвращаются
// канонические значения по умолчанию
func (s *Service) GetWithHierarchy(ctx context.Context, branchID int64, serviceID *int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetWithHierarchy: fetching config for branch=%d, service=%v", branchID, serviceID)

	cfg, err := s.configRepo.GetConfigWithHierarchy(ctx, branchID, serviceID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("GetWithHierarchy: no config for branch=%d, using defaults", branchID)
			fallback := domain.DefaultBranchSlotsConfig()
			fallback.BranchID = branchID
			return models.FromDomainConfig(fallback), nil
		}
		s.logger.Error("GetWithHierarchy: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWithHierarchy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWithHierarchy: successfully fetched config id=%d (level: %s)",
		cfg.ID, s.getConfigLevel(cfg))
	return models.FromDomainConfig(cfg), nil
}

// GetAllByBranch получает все конфигурации филиала
// Доступно только менеджерам филиала
func (s *Service) GetAllByBranch(ctx context.Context, branchID int64, userID int64) (*models.ConfigListResponse, error) {
	s.logger.Info("GetAllByBranch: fetching configs for branch=%d by user=%d", branchID, userID)

	// Получаем филиал для проверки прав доступа
	branch, err := s.branchClient.GetBranch(ctx, branchID)
	if err != nil {
		if errors.Is(err, branchClient.ErrBranchNotFound) {
			s.logger.Warn("GetAllByBranch: branch id=%d not found", branchID)
			return nil, ErrBranchNotFound
		}
		s.logger.Error("GetAllByBranch: failed to get branch id=%d: %v", branchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только менеджер филиала)
	if !s.isManager(branch, userID) {
		s.logger.Warn("GetAllByBranch: user=%d is not a manager of branch=%d", userID, branchID)
		return nil, ErrAccessDenied
	}

	configs, err := s.configRepo.GetAllByBranch(ctx, branchID)
	if err != nil {
		s.logger.Error("GetAllByBranch: repository error for branch=%d: %v", branchID, err)
		return nil, fmt.Errorf("%w: GetAllByBranch - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllByBranch: successfully fetched %d configs for branch=%d", len(configs), branchID)
	return models.FromDomainConfigList(configs), nil
}

// Вспомогательные методы

// isManager проверяет, что пользователь является менеджером филиала
func (s *Service) isManager(branch *branchClient.Branch, userID int64) bool {
	for _, managerID := range branch.ManagerIDs {
		if managerID == userID {
			return true
		}
	}
	return false
}

// validateConfigData валидирует параметры конфигурации
func (s *Service) validateConfigData(cfg *domain.BranchSlotsConfig) error {
	if cfg.SlotDurationMinutes < domain.MinSlotDurationMinutes || cfg.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if cfg.MaxConcurrentBookings < domain.MinConcurrentBookings || cfg.MaxConcurrentBookings > domain.MaxConcurrentBookingsLimit {
		return fmt.Errorf("%w: maxConcurrentBookings must be between %d and %d",
			ErrInvalidInput, domain.MinConcurrentBookings, domain.MaxConcurrentBookingsLimit)
	}

	if cfg.AdvanceBookingDays < domain.MinAdvanceBookingDays || cfg.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if cfg.MinBookingNoticeMinutes < domain.MinNoticeMinutes || cfg.MinBookingNoticeMinutes > domain.MaxNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinNoticeMinutes, domain.MaxNoticeMinutes)
	}

	return nil
}

// getConfigLevel возвращает строковое представление уровня конфигурации для логирования
func (s *Service) getConfigLevel(cfg *domain.BranchSlotsConfig) string {
	if cfg.IsServiceSpecific() {
		return "service"
	}
	return "branch"
}
