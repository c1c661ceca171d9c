package approve_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	"github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	"github.com/axlexpert/AX-BookingService/internal/integrations/staffservice"
	"github.com/axlexpert/AX-BookingService/pkg/ptr"
)

type fakeApptRepo struct {
	appt         *domain.Appointment
	getCalls     int
	approveCalls int
}

func (f *fakeApptRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	f.getCalls++
	return f.appt, nil
}

func (f *fakeApptRepo) Approve(_ context.Context, _ int64, _ int64, _ string) error {
	f.approveCalls++
	return nil
}

type fakeBranchClient struct {
	branch *branchservice.Branch
	calls  int
}

func (f *fakeBranchClient) GetBranch(_ context.Context, _ int64) (*branchservice.Branch, error) {
	f.calls++
	return f.branch, nil
}

type fakeStaffClient struct {
	employee *staffservice.Employee
	calls    int
}

func (f *fakeStaffClient) GetEmployee(_ context.Context, _ int64) (*staffservice.Employee, error) {
	f.calls++
	return f.employee, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:       33,
		BranchID: 7,
		Date:     time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
		Time:     "14:30",
		Status:   domain.StatusPending,
	}
}

func testDeps() (*fakeApptRepo, *fakeBranchClient, *fakeStaffClient) {
	return &fakeApptRepo{appt: pendingAppointment()},
		&fakeBranchClient{
			branch: &branchservice.Branch{ID: 7, Name: "Downtown", ManagerIDs: []int64{500}},
		},
		&fakeStaffClient{
			employee: &staffservice.Employee{ID: 15, Name: "Ivan Petrov", Available: true},
		}
}

func TestExecute_ApprovesWithEmployee(t *testing.T) {
	apptRepo, branchClient, staffClient := testDeps()
	uc := NewUseCase(apptRepo, branchClient, staffClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        500,
		AppointmentID: 33,
		EmployeeID:    ptr.Ptr(int64(15)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(33), resp.ID)
	assert.Equal(t, "APPROVED", resp.Status)
	assert.Equal(t, int64(15), resp.AssignedEmployeeID)
	assert.Equal(t, "Ivan Petrov", resp.AssignedEmployeeName)
	assert.Equal(t, 1, apptRepo.approveCalls)
}

func TestExecute_MissingEmployeeRejectedBeforeAnyCalls(t *testing.T) {
	apptRepo, branchClient, staffClient := testDeps()
	uc := NewUseCase(apptRepo, branchClient, staffClient, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        500,
		AppointmentID: 33,
		EmployeeID:    nil,
	})

	require.ErrorIs(t, err, ErrInvalidInput)

	// запрос отклонён до обращений к хранилищу и интеграциям
	assert.Zero(t, apptRepo.getCalls)
	assert.Zero(t, apptRepo.approveCalls)
	assert.Zero(t, branchClient.calls)
	assert.Zero(t, staffClient.calls)
}

func TestExecute_NonPositiveEmployeeRejected(t *testing.T) {
	apptRepo, branchClient, staffClient := testDeps()
	uc := NewUseCase(apptRepo, branchClient, staffClient, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        500,
		AppointmentID: 33,
		EmployeeID:    ptr.Ptr(int64(0)),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, apptRepo.getCalls)
}

func TestExecute_NonManagerDenied(t *testing.T) {
	apptRepo, branchClient, staffClient := testDeps()
	uc := NewUseCase(apptRepo, branchClient, staffClient, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        999,
		AppointmentID: 33,
		EmployeeID:    ptr.Ptr(int64(15)),
	})

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, apptRepo.approveCalls)
}

func TestExecute_OnlyPendingCanBeApproved(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusApproved,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		apptRepo, branchClient, staffClient := testDeps()
		apptRepo.appt.Status = status
		uc := NewUseCase(apptRepo, branchClient, staffClient, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			UserID:        500,
			AppointmentID: 33,
			EmployeeID:    ptr.Ptr(int64(15)),
		})

		require.ErrorIs(t, err, ErrCannotApprove, "status %s", status)
		assert.Zero(t, apptRepo.approveCalls)
		// до проверки сотрудника дело не доходит
		assert.Zero(t, staffClient.calls)
	}
}

func TestExecute_UnavailableEmployeeRejected(t *testing.T) {
	apptRepo, branchClient, staffClient := testDeps()
	staffClient.employee.Available = false
	uc := NewUseCase(apptRepo, branchClient, staffClient, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        500,
		AppointmentID: 33,
		EmployeeID:    ptr.Ptr(int64(15)),
	})

	require.ErrorIs(t, err, ErrEmployeeNotAvailable)
	assert.Zero(t, apptRepo.approveCalls)
}
