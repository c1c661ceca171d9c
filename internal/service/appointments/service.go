package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	apptRepo "github.com/axlexpert/AX-BookingService/internal/infra/storage/appointment"
	branchClient "github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	"github.com/axlexpert/AX-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями на обслуживание
type Service struct {
	apptRepo     AppointmentRepository
	branchClient BranchServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	branchClient BranchServiceClient,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:     apptRepo,
		branchClient: branchClient,
		logger:       logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - пользователь может видеть только свою запись
// или если он является менеджером филиала
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, appt, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetUserAppointments получает историю записей пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.AppointmentStatus
	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.apptRepo.GetByCustomerID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%d", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetBranchAppointments получает записи филиала с гибкой фильтрацией.
// Филиал и период отсекаются в хранилище; статус и поиск по имени клиента
// применяются поверх выборки, чтобы консоль фильтровала уже загруженный
// список без повторных запросов. Доступно только менеджерам филиала.
func (s *Service) GetBranchAppointments(ctx context.Context, req *models.GetBranchAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("GetBranchAppointments: fetching appointments for branch=%d, user=%d", req.BranchID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != "" {
		logMsg += fmt.Sprintf(", status=%s", req.Status)
	}
	if req.SearchText != "" {
		logMsg += fmt.Sprintf(", search=%q", req.SearchText)
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, req.BranchID, req.UserID); err != nil {
		return nil, err
	}

	// Валидируем статус до похода в хранилище
	if req.Status != "" && req.Status != domain.FilterAll {
		if _, err := domain.ParseStatus(req.Status); err != nil {
			s.logger.Warn("GetBranchAppointments: invalid status=%s for branch=%d", req.Status, req.BranchID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
	}

	// Фильтр по отменённым записям требует включения неактивных в выборку
	includeInactive := req.IncludeInactive || strings.EqualFold(req.Status, string(domain.StatusCancelled))

	appointments, err := s.apptRepo.GetWithFilter(ctx, domain.BranchAppointmentsFilter{
		BranchID:        &req.BranchID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		s.logger.Error("GetBranchAppointments: repository error for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: GetBranchAppointments - repository error: %v", ErrInternal, err)
	}

	filtered := domain.FilterAppointments(appointments, domain.AppointmentFilter{
		Status:     req.Status,
		SearchText: req.SearchText,
	})

	s.logger.Info("GetBranchAppointments: successfully fetched %d of %d appointments for branch=%d",
		len(filtered), len(appointments), req.BranchID)
	return models.FromDomainAppointmentList(filtered), nil
}

// Reject отклоняет запись с указанием причины
// Пользователь может отклонить свою запись, менеджер - любую запись филиала
func (s *Service) Reject(ctx context.Context, appointmentID int64, req *models.RejectAppointmentRequest) error {
	s.logger.Info("Reject: rejecting appointment id=%d by user=%d", appointmentID, req.UserID)

	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Reject: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Reject: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	// Проверяем переход жизненного цикла до обращения к хранилищу
	if !appt.CanBeCancelled() {
		s.logger.Warn("Reject: appointment id=%d cannot be rejected, status=%s", appointmentID, appt.Status)
		return ErrCannotReject
	}

	// Владелец отклоняет свою запись, иначе требуется роль менеджера
	if appt.CustomerID != req.UserID {
		if err := s.checkManagerAccess(ctx, appt.BranchID, req.UserID); err != nil {
			s.logger.Warn("Reject: access denied for user=%d to appointment id=%d", req.UserID, appointmentID)
			return ErrAccessDenied
		}
	}

	if err := s.apptRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		if errors.Is(err, apptRepo.ErrStatusConflict) {
			s.logger.Warn("Reject: appointment id=%d already left a cancellable status", appointmentID)
			return ErrCannotReject
		}
		s.logger.Error("Reject: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reject: successfully rejected appointment id=%d", appointmentID)
	return nil
}

// Complete переводит подтверждённую запись в завершённые
// Доступно только менеджерам филиала
func (s *Service) Complete(ctx context.Context, appointmentID int64, req *models.CompleteAppointmentRequest) error {
	s.logger.Info("Complete: completing appointment id=%d by user=%d", appointmentID, req.UserID)

	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, appt.BranchID, req.UserID); err != nil {
		return err
	}

	// Завершить можно только подтверждённую запись
	if !appt.Status.CanTransitionTo(domain.StatusCompleted) {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", appointmentID, appt.Status)
		return ErrCannotComplete
	}

	if err := s.apptRepo.Complete(ctx, appointmentID); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		if errors.Is(err, apptRepo.ErrStatusConflict) {
			s.logger.Warn("Complete: appointment id=%d already left APPROVED status", appointmentID)
			return ErrCannotComplete
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed appointment id=%d", appointmentID)
	return nil
}

// Delete физически удаляет запись
// Разрешено только для записей в статусе PENDING; всё остальное должно
// отклоняться через Reject, чтобы сохранить историю
func (s *Service) Delete(ctx context.Context, appointmentID int64, userID int64) error {
	s.logger.Info("Delete: deleting appointment id=%d by user=%d", appointmentID, userID)

	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Проверяем статус до обращения к хранилищу
	if !appt.CanBeDeleted() {
		s.logger.Warn("Delete: appointment id=%d cannot be deleted, status=%s", appointmentID, appt.Status)
		return ErrCannotDelete
	}

	if appt.CustomerID != userID {
		if err := s.checkManagerAccess(ctx, appt.BranchID, userID); err != nil {
			s.logger.Warn("Delete: access denied for user=%d to appointment id=%d", userID, appointmentID)
			return ErrAccessDenied
		}
	}

	if err := s.apptRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		if errors.Is(err, apptRepo.ErrStatusConflict) {
			s.logger.Warn("Delete: appointment id=%d already left PENDING status", appointmentID)
			return ErrCannotDelete
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", appointmentID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к записи
// Пользователь может видеть свою запись или если он менеджер филиала
func (s *Service) checkUserAccess(ctx context.Context, appt *domain.Appointment, userID int64) error {
	// Если пользователь владелец записи - доступ разрешён
	if appt.CustomerID == userID {
		return nil
	}

	if err := s.checkManagerAccess(ctx, appt.BranchID, userID); err != nil {
		// Ошибка уже залогирована в checkManagerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером филиала
func (s *Service) checkManagerAccess(ctx context.Context, branchID int64, userID int64) error {
	// Получаем филиал через BranchService
	branch, err := s.branchClient.GetBranch(ctx, branchID)
	if err != nil {
		if errors.Is(err, branchClient.ErrBranchNotFound) {
			s.logger.Warn("checkManagerAccess: branch id=%d not found", branchID)
			return ErrBranchNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get branch id=%d: %v", branchID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get branch: %v", ErrInternal, err)
	}

	// Проверяем, что userID в списке менеджеров
	for _, managerID := range branch.ManagerIDs {
		if managerID == userID {
			s.logger.Info("checkManagerAccess: user=%d is manager of branch=%d", userID, branchID)
			return nil
		}
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of branch=%d", userID, branchID)
	return ErrAccessDenied
}
