package approve_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	apptRepo "github.com/axlexpert/AX-BookingService/internal/infra/storage/appointment"
	branchClient "github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	staffClient "github.com/axlexpert/AX-BookingService/internal/integrations/staffservice"
)

// UseCase use case для подтверждения записи с назначением сотрудника
type UseCase struct {
	apptRepo     AppointmentRepository
	branchClient BranchServiceClient
	staffClient  StaffServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	branchClient BranchServiceClient,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		branchClient: branchClient,
		staffClient:  staffClient,
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения записи.
// Подтверждение без сотрудника невозможно: запись переходит в APPROVED
// только вместе с назначением.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveBooking: appointment=%d, employee=%v, user=%d",
		req.AppointmentID, req.EmployeeID, req.UserID)

	// 1. Валидация входных данных - до любых внешних вызовов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApproveBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем запись
	appt, err := uc.apptRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("ApproveBooking: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("ApproveBooking: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа (только менеджер филиала)
	if err := uc.checkManagerAccess(ctx, appt.BranchID, req.UserID); err != nil {
		return nil, err
	}

	// 4. Проверяем переход жизненного цикла
	if !appt.Status.CanTransitionTo(domain.StatusApproved) {
		uc.logger.Warn("ApproveBooking: appointment id=%d cannot be approved, status=%s",
			req.AppointmentID, appt.Status)
		return nil, ErrCannotApprove
	}

	// 5. Получаем сотрудника и проверяем его доступность
	employee, err := uc.staffClient.GetEmployee(ctx, *req.EmployeeID)
	if err != nil {
		if errors.Is(err, staffClient.ErrEmployeeNotFound) {
			uc.logger.Warn("ApproveBooking: employee id=%d not found", *req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("ApproveBooking: failed to get employee id=%d: %v", *req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	if !employee.Available {
		uc.logger.Warn("ApproveBooking: employee id=%d is not available", employee.ID)
		return nil, ErrEmployeeNotAvailable
	}

	// 6. Подтверждаем запись с назначением сотрудника
	if err := uc.apptRepo.Approve(ctx, req.AppointmentID, employee.ID, employee.Name); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		if errors.Is(err, apptRepo.ErrStatusConflict) {
			uc.logger.Warn("ApproveBooking: appointment id=%d already left PENDING status", req.AppointmentID)
			return nil, ErrCannotApprove
		}
		uc.logger.Error("ApproveBooking: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	uc.logger.Info("ApproveBooking: successfully approved appointment id=%d with employee id=%d",
		req.AppointmentID, employee.ID)

	return &Response{
		ID:                   req.AppointmentID,
		Status:               string(domain.StatusApproved),
		AssignedEmployeeID:   employee.ID,
		AssignedEmployeeName: employee.Name,
	}, nil
}

// validateRequest валидирует входные данные запроса.
// Отсутствие сотрудника отклоняется здесь, без обращений к хранилищу
// и интеграциям.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentId must be positive", ErrInvalidInput)
	}

	if req.EmployeeID == nil || *req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeId is required to approve an appointment", ErrInvalidInput)
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером филиала
func (uc *UseCase) checkManagerAccess(ctx context.Context, branchID int64, userID int64) error {
	branch, err := uc.branchClient.GetBranch(ctx, branchID)
	if err != nil {
		if errors.Is(err, branchClient.ErrBranchNotFound) {
			uc.logger.Warn("checkManagerAccess: branch id=%d not found", branchID)
			return fmt.Errorf("%w: branch not found", ErrInternal)
		}
		uc.logger.Error("checkManagerAccess: failed to get branch id=%d: %v", branchID, err)
		return fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}

	for _, managerID := range branch.ManagerIDs {
		if managerID == userID {
			return nil
		}
	}

	uc.logger.Warn("checkManagerAccess: user=%d is not a manager of branch=%d", userID, branchID)
	return ErrAccessDenied
}
