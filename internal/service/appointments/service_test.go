package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	"github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	"github.com/axlexpert/AX-BookingService/internal/service/appointments/models"
)

type fakeApptRepo struct {
	appt          *domain.Appointment
	appointments  []*domain.Appointment
	cancelCalls   int
	completeCalls int
	deleteCalls   int
	lastReason    string
}

func (f *fakeApptRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return f.appt, nil
}

func (f *fakeApptRepo) GetByCustomerID(_ context.Context, _ int64, _ *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeApptRepo) GetWithFilter(_ context.Context, _ domain.BranchAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeApptRepo) Complete(_ context.Context, _ int64) error {
	f.completeCalls++
	return nil
}

func (f *fakeApptRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelCalls++
	f.lastReason = reason
	return nil
}

func (f *fakeApptRepo) Delete(_ context.Context, _ int64) error {
	f.deleteCalls++
	return nil
}

type fakeBranchClient struct {
	branch *branchservice.Branch
}

func (f *fakeBranchClient) GetBranch(_ context.Context, _ int64) (*branchservice.Branch, error) {
	return f.branch, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:           33,
		CustomerID:   42,
		BranchID:     7,
		CustomerName: "Alice Johnson",
		BranchName:   "Downtown",
		Date:         time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
		Time:         "14:30",
		Status:       status,
	}
}

func newTestService(repo *fakeApptRepo) *Service {
	return NewService(repo, &fakeBranchClient{
		branch: &branchservice.Branch{ID: 7, Name: "Downtown", ManagerIDs: []int64{500}},
	}, nopLogger{})
}

func TestDelete_OnlyPendingDeleted(t *testing.T) {
	repo := &fakeApptRepo{appt: testAppointment(domain.StatusPending)}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 33, 42)

	require.NoError(t, err)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestDelete_NonPendingRejectedBeforeStorage(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusApproved,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		repo := &fakeApptRepo{appt: testAppointment(status)}
		svc := newTestService(repo)

		err := svc.Delete(context.Background(), 33, 42)

		require.ErrorIs(t, err, ErrCannotDelete, "status %s", status)
		// до хранилища дело не дошло
		assert.Zero(t, repo.deleteCalls, "status %s", status)
	}
}

func TestDelete_StrangerDenied(t *testing.T) {
	repo := &fakeApptRepo{appt: testAppointment(domain.StatusPending)}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 33, 999)

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.deleteCalls)
}

func TestDelete_ManagerAllowed(t *testing.T) {
	repo := &fakeApptRepo{appt: testAppointment(domain.StatusPending)}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 33, 500)

	require.NoError(t, err)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestReject_PendingAndApprovedOnly(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusPending, domain.StatusApproved} {
		repo := &fakeApptRepo{appt: testAppointment(status)}
		svc := newTestService(repo)

		err := svc.Reject(context.Background(), 33, &models.RejectAppointmentRequest{
			UserID:             42,
			CancellationReason: "plans changed",
		})

		require.NoError(t, err, "status %s", status)
		assert.Equal(t, "plans changed", repo.lastReason)
	}

	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
		repo := &fakeApptRepo{appt: testAppointment(status)}
		svc := newTestService(repo)

		err := svc.Reject(context.Background(), 33, &models.RejectAppointmentRequest{UserID: 42})

		require.ErrorIs(t, err, ErrCannotReject, "status %s", status)
		assert.Zero(t, repo.cancelCalls, "status %s", status)
	}
}

func TestComplete_ApprovedOnly(t *testing.T) {
	repo := &fakeApptRepo{appt: testAppointment(domain.StatusApproved)}
	svc := newTestService(repo)

	err := svc.Complete(context.Background(), 33, &models.CompleteAppointmentRequest{UserID: 500})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.completeCalls)
}

func TestComplete_PendingCannotBeCompleted(t *testing.T) {
	repo := &fakeApptRepo{appt: testAppointment(domain.StatusPending)}
	svc := newTestService(repo)

	err := svc.Complete(context.Background(), 33, &models.CompleteAppointmentRequest{UserID: 500})

	require.ErrorIs(t, err, ErrCannotComplete)
	assert.Zero(t, repo.completeCalls)
}

func TestComplete_RequiresManager(t *testing.T) {
	repo := &fakeApptRepo{appt: testAppointment(domain.StatusApproved)}
	svc := newTestService(repo)

	// даже владелец записи не может её завершить
	err := svc.Complete(context.Background(), 33, &models.CompleteAppointmentRequest{UserID: 42})

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.completeCalls)
}

func TestGetByID_OwnerAndManagerOnly(t *testing.T) {
	repo := &fakeApptRepo{appt: testAppointment(domain.StatusPending)}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 33, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(33), resp.ID)

	_, err = svc.GetByID(context.Background(), 33, 500)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 33, 999)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetBranchAppointments_ConsoleFilters(t *testing.T) {
	repo := &fakeApptRepo{appointments: []*domain.Appointment{
		testAppointment(domain.StatusPending),
		func() *domain.Appointment {
			a := testAppointment(domain.StatusApproved)
			a.ID = 34
			a.CustomerName = "Bob Smith"
			return a
		}(),
	}}
	svc := newTestService(repo)

	resp, err := svc.GetBranchAppointments(context.Background(), &models.GetBranchAppointmentsRequest{
		UserID:     500,
		BranchID:   7,
		Status:     "approved",
		SearchText: "bob",
	})

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(34), resp.Appointments[0].ID)
}
