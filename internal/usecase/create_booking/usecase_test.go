package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	configRepo "github.com/axlexpert/AX-BookingService/internal/infra/storage/config"
	"github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	"github.com/axlexpert/AX-BookingService/internal/integrations/staffservice"
	"github.com/axlexpert/AX-BookingService/pkg/types"
)

// Фейки зависимостей. Счётчики вызовов нужны для проверки, что валидация
// отсекает запрос до обращений к хранилищу и интеграциям.

type fakeApptRepo struct {
	appointments    []*domain.Appointment
	createCalls     int
	getFilterCalls  int
	lastCreated     *domain.Appointment
}

func (f *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.createCalls++
	created := *appt
	created.ID = 101
	created.CreatedAt = time.Date(2025, time.September, 1, 12, 0, 0, 0, time.Local)
	created.UpdatedAt = created.CreatedAt
	f.lastCreated = &created
	return &created, nil
}

func (f *fakeApptRepo) GetWithFilter(_ context.Context, _ domain.BranchAppointmentsFilter) ([]*domain.Appointment, error) {
	f.getFilterCalls++
	return f.appointments, nil
}

type fakeConfigRepo struct {
	cfg   *domain.BranchSlotsConfig
	calls int
}

func (f *fakeConfigRepo) GetConfigWithHierarchy(_ context.Context, _ int64, _ *int64) (*domain.BranchSlotsConfig, error) {
	f.calls++
	if f.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

type fakeBranchClient struct {
	branch  *branchservice.Branch
	service *branchservice.Service
	calls   int
}

func (f *fakeBranchClient) GetBranch(_ context.Context, _ int64) (*branchservice.Branch, error) {
	f.calls++
	return f.branch, nil
}

func (f *fakeBranchClient) GetService(_ context.Context, _ int64) (*branchservice.Service, error) {
	f.calls++
	return f.service, nil
}

type fakeStaffClient struct {
	vehicle *staffservice.Vehicle
	calls   int
}

func (f *fakeStaffClient) GetUserVehicle(_ context.Context, _, _ int64) (*staffservice.Vehicle, error) {
	f.calls++
	return f.vehicle, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDeps() (*fakeApptRepo, *fakeConfigRepo, *fakeBranchClient, *fakeStaffClient) {
	price := 49.90
	return &fakeApptRepo{},
		&fakeConfigRepo{},
		&fakeBranchClient{
			branch: &branchservice.Branch{
				ID:         7,
				Name:       "Downtown",
				OpenHours:  "09:00",
				CloseHours: "17:00",
				ManagerIDs: []int64{500},
			},
			service: &branchservice.Service{
				ID:    3,
				Name:  "Oil Change",
				Price: &price,
			},
		},
		&fakeStaffClient{
			vehicle: &staffservice.Vehicle{
				ID:           9,
				UserID:       42,
				Make:         "Toyota",
				Model:        "Camry",
				Year:         2019,
				LicensePlate: "AX-1234",
			},
		}
}

func newTestUseCase(
	apptRepo *fakeApptRepo,
	cfgRepo *fakeConfigRepo,
	branchClient *fakeBranchClient,
	staffClient *fakeStaffClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(apptRepo, cfgRepo, branchClient, staffClient, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerID:    42,
		BranchID:      7,
		ServiceID:     3,
		VehicleID:     9,
		CustomerName:  "Alice Johnson",
		CustomerPhone: "+1-555-0100",
		Date:          time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
		StartTime:     "02:30 PM",
	}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)
	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, types.TimeString("14:30"), resp.StartTime)
	assert.Equal(t, "2025-09-10T14:30:00", resp.ScheduledAt)
	assert.Equal(t, "Oil Change", resp.ServiceName)
	assert.Equal(t, 49.90, resp.TotalPrice)
	assert.Equal(t, "Downtown", resp.BranchName)
	require.NotNil(t, resp.VehicleDescription)
	assert.Equal(t, "Toyota Camry 2019 (AX-1234)", *resp.VehicleDescription)
}

func TestExecute_ValidationCollectsAllProblems(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)
	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	req := &Request{StartTime: "02:30 PM"}
	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "customerId: must be positive")
	assert.Contains(t, err.Error(), "serviceId: service is required")
	assert.Contains(t, err.Error(), "vehicleId: vehicle is required")
	assert.Contains(t, err.Error(), "customerName: name is required")
	assert.Contains(t, err.Error(), "customerPhone: phone is required")
	assert.Contains(t, err.Error(), "date: date is required")

	// валидация отработала до любых внешних вызовов
	assert.Zero(t, branchClient.calls)
	assert.Zero(t, staffClient.calls)
	assert.Zero(t, cfgRepo.calls)
	assert.Zero(t, apptRepo.createCalls)
}

func TestExecute_UnreadableTimeFallsBackToOpening(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)
	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	req := validRequest()
	req.StartTime = "whenever works"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, "2025-09-10T09:00:00", resp.ScheduledAt)
}

func TestExecute_Accepts24HourTime(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)
	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	req := validRequest()
	req.StartTime = "14:30"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:30"), resp.StartTime)
}

func TestExecute_SlotTakenByExactMatch(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)

	apptRepo.appointments = []*domain.Appointment{
		{
			ID:     55,
			Date:   time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
			Time:   "14:30",
			Status: domain.StatusPending,
		},
	}

	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, apptRepo.createCalls)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)

	apptRepo.appointments = []*domain.Appointment{
		{
			ID:     55,
			Date:   time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
			Time:   "14:30",
			Status: domain.StatusCancelled,
		},
	}

	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}

func TestExecute_NeighbouringSlotStaysFree(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)

	// занят 14:00, бронируем 14:30 - длительность не блокирует соседей
	apptRepo.appointments = []*domain.Appointment{
		{
			ID:     55,
			Date:   time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
			Time:   "14:00",
			Status: domain.StatusApproved,
		},
	}

	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:30"), resp.StartTime)
}

func TestExecute_PastDateRejected(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 11, 8, 0, 0, 0, time.Local)
	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, apptRepo.createCalls)
}

func TestExecute_AdvanceLimitEnforced(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)

	cfgRepo.cfg = &domain.BranchSlotsConfig{
		ID:                    12,
		BranchID:              7,
		SlotDurationMinutes:   30,
		MaxConcurrentBookings: 1,
		AdvanceBookingDays:    5,
	}

	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_TimeOutsideGridRejected(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)
	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	req := validRequest()
	req.StartTime = "02:45 PM" // между слотами сетки

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SameDayNoticeEnforced(t *testing.T) {
	apptRepo, cfgRepo, branchClient, staffClient := testDeps()
	now := time.Date(2025, time.September, 10, 14, 0, 0, 0, time.Local)

	cfgRepo.cfg = &domain.BranchSlotsConfig{
		ID:                      12,
		BranchID:                7,
		SlotDurationMinutes:     30,
		MaxConcurrentBookings:   1,
		MinBookingNoticeMinutes: 60,
	}

	uc := newTestUseCase(apptRepo, cfgRepo, branchClient, staffClient, now)

	// 14:30 сегодня при уведомлении за 60 минут - слишком поздно
	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrTooLateToBook)
}
