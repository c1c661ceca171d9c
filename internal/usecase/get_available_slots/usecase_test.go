package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	configRepo "github.com/axlexpert/AX-BookingService/internal/infra/storage/config"
	"github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	"github.com/axlexpert/AX-BookingService/pkg/types"
)

type fakeApptRepo struct {
	appointments []*domain.Appointment
	calls        int
}

func (f *fakeApptRepo) GetWithFilter(_ context.Context, _ domain.BranchAppointmentsFilter) ([]*domain.Appointment, error) {
	f.calls++
	return f.appointments, nil
}

type fakeConfigRepo struct {
	cfg *domain.BranchSlotsConfig
}

func (f *fakeConfigRepo) GetConfigWithHierarchy(_ context.Context, _ int64, _ *int64) (*domain.BranchSlotsConfig, error) {
	if f.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

type fakeBranchClient struct {
	branch *branchservice.Branch
	calls  int
}

func (f *fakeBranchClient) GetBranch(_ context.Context, _ int64) (*branchservice.Branch, error) {
	f.calls++
	return f.branch, nil
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(apptRepo *fakeApptRepo, cfgRepo *fakeConfigRepo, branchClient *fakeBranchClient, now time.Time) *UseCase {
	uc := NewUseCase(apptRepo, cfgRepo, branchClient, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func downtownBranch() *fakeBranchClient {
	return &fakeBranchClient{
		branch: &branchservice.Branch{
			ID:         7,
			Name:       "Downtown",
			OpenHours:  "09:00",
			CloseHours: "17:00",
		},
	}
}

func TestExecute_FullTemplateWhenDayIsFree(t *testing.T) {
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeApptRepo{}, &fakeConfigRepo{}, downtownBranch(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Date:     time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 17)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, "09:00 AM", resp.Slots[0].Display)
	assert.Equal(t, types.TimeString("17:00"), resp.Slots[16].StartTime)
	assert.Equal(t, "05:00 PM", resp.Slots[16].Display)
	assert.Equal(t, 1, resp.Slots[0].AvailableSpots)
	assert.Equal(t, 1, resp.Slots[0].TotalSpots)
}

func TestExecute_BookedSlotDisappears(t *testing.T) {
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)
	day := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local)

	apptRepo := &fakeApptRepo{appointments: []*domain.Appointment{
		{ID: 1, Date: day, Time: "14:30", Status: domain.StatusPending},
	}}

	uc := newTestUseCase(apptRepo, &fakeConfigRepo{}, downtownBranch(), now)

	resp, err := uc.Execute(context.Background(), &Request{BranchID: 7, Date: day})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 16)
	for _, slot := range resp.Slots {
		assert.NotEqual(t, types.TimeString("14:30"), slot.StartTime)
	}
}

func TestExecute_PastDayReturnsEmptyNotError(t *testing.T) {
	now := time.Date(2025, time.September, 10, 8, 0, 0, 0, time.Local)
	apptRepo := &fakeApptRepo{}
	branchClient := downtownBranch()
	uc := newTestUseCase(apptRepo, &fakeConfigRepo{}, branchClient, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Date:     time.Date(2025, time.September, 9, 0, 0, 0, 0, time.Local),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	// прошедший день не требует обращений к справочнику и хранилищу
	assert.Zero(t, branchClient.calls)
	assert.Zero(t, apptRepo.calls)
}

func TestExecute_PartiallyTakenSlotShowsRemainingSpots(t *testing.T) {
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)
	day := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local)

	apptRepo := &fakeApptRepo{appointments: []*domain.Appointment{
		{ID: 1, Date: day, Time: "09:00", Status: domain.StatusPending},
	}}
	cfgRepo := &fakeConfigRepo{cfg: &domain.BranchSlotsConfig{
		ID:                    12,
		BranchID:              7,
		SlotDurationMinutes:   30,
		MaxConcurrentBookings: 2,
	}}

	uc := newTestUseCase(apptRepo, cfgRepo, downtownBranch(), now)

	resp, err := uc.Execute(context.Background(), &Request{BranchID: 7, Date: day})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 17)
	assert.Equal(t, 1, resp.Slots[0].AvailableSpots)
	assert.Equal(t, 2, resp.Slots[0].TotalSpots)
	assert.Equal(t, 2, resp.Slots[1].AvailableSpots)
}

func TestExecute_TodayFiltersSlotsByNotice(t *testing.T) {
	// сегодня 14:00, уведомление за 60 минут: остаются слоты с 15:00
	now := time.Date(2025, time.September, 10, 14, 0, 0, 0, time.Local)
	day := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local)

	cfgRepo := &fakeConfigRepo{cfg: &domain.BranchSlotsConfig{
		ID:                      12,
		BranchID:                7,
		SlotDurationMinutes:     30,
		MaxConcurrentBookings:   1,
		MinBookingNoticeMinutes: 60,
	}}

	uc := newTestUseCase(&fakeApptRepo{}, cfgRepo, downtownBranch(), now)

	resp, err := uc.Execute(context.Background(), &Request{BranchID: 7, Date: day})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("15:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("17:00"), resp.Slots[len(resp.Slots)-1].StartTime)
	assert.Len(t, resp.Slots, 5)
}

func TestExecute_AdvanceLimitRejectsFarDates(t *testing.T) {
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)

	cfgRepo := &fakeConfigRepo{cfg: &domain.BranchSlotsConfig{
		ID:                    12,
		BranchID:              7,
		SlotDurationMinutes:   30,
		MaxConcurrentBookings: 1,
		AdvanceBookingDays:    5,
	}}

	uc := newTestUseCase(&fakeApptRepo{}, cfgRepo, downtownBranch(), now)

	_, err := uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Date:     time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
	})

	require.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_CustomWorkingHours(t *testing.T) {
	now := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.Local)

	branchClient := &fakeBranchClient{
		branch: &branchservice.Branch{
			ID:         7,
			Name:       "Airport",
			OpenHours:  "10:00",
			CloseHours: "12:00",
		},
	}

	uc := newTestUseCase(&fakeApptRepo{}, &fakeConfigRepo{}, branchClient, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BranchID: 7,
		Date:     time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 5)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[4].StartTime)
}
