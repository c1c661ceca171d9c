package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	"github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
)

type fakeApptRepo struct {
	appointments []*domain.Appointment
	lastFilter   domain.BranchAppointmentsFilter
}

func (f *fakeApptRepo) GetWithFilter(_ context.Context, filter domain.BranchAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.appointments, nil
}

type fakeBranchClient struct {
	branch *branchservice.Branch
}

func (f *fakeBranchClient) GetBranch(_ context.Context, _ int64) (*branchservice.Branch, error) {
	return f.branch, nil
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(apptRepo *fakeApptRepo, now time.Time) *UseCase {
	uc := NewUseCase(apptRepo, &fakeBranchClient{
		branch: &branchservice.Branch{ID: 7, Name: "Downtown"},
	}, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecute_GridAlways42Cells(t *testing.T) {
	now := time.Date(2025, time.September, 15, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeApptRepo{}, now)

	for month := time.January; month <= time.December; month++ {
		resp, err := uc.Execute(context.Background(), &Request{BranchID: 7, Year: 2025, Month: month})

		require.NoError(t, err)
		assert.Len(t, resp.Days, 42, "month %s", month)
	}
}

func TestExecute_Day1UnderItsWeekday(t *testing.T) {
	now := time.Date(2025, time.September, 15, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeApptRepo{}, now)

	// сентябрь 2025 начинается в понедельник: ячейка 0 - хвост августа
	resp, err := uc.Execute(context.Background(), &Request{BranchID: 7, Year: 2025, Month: time.September})

	require.NoError(t, err)
	assert.Equal(t, "2025-08-31", resp.Days[0].Date)
	assert.False(t, resp.Days[0].IsCurrentMonth)
	assert.Equal(t, "2025-09-01", resp.Days[1].Date)
	assert.True(t, resp.Days[1].IsCurrentMonth)
}

func TestExecute_PastCellsMarked(t *testing.T) {
	now := time.Date(2025, time.September, 15, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeApptRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{BranchID: 7, Year: 2025, Month: time.September})

	require.NoError(t, err)
	for _, day := range resp.Days {
		switch day.Date {
		case "2025-09-14":
			assert.True(t, day.IsPast)
		case "2025-09-15":
			assert.False(t, day.IsPast, "today is not past")
		case "2025-09-16":
			assert.False(t, day.IsPast)
		}
	}
}

func TestExecute_AppointmentCardsInTheirCell(t *testing.T) {
	now := time.Date(2025, time.September, 15, 12, 0, 0, 0, time.Local)

	apptRepo := &fakeApptRepo{appointments: []*domain.Appointment{
		{
			ID:           1,
			CustomerName: "Alice Johnson",
			ServiceName:  "Oil Change",
			Date:         time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local),
			Time:         "14:30",
			Status:       domain.StatusApproved,
		},
	}}

	uc := newTestUseCase(apptRepo, now)

	resp, err := uc.Execute(context.Background(), &Request{BranchID: 7, Year: 2025, Month: time.September})

	require.NoError(t, err)
	for _, day := range resp.Days {
		if day.Date != "2025-09-10" {
			assert.Zero(t, day.AppointmentCount, "cell %s", day.Date)
			continue
		}

		require.Equal(t, 1, day.AppointmentCount)
		card := day.Appointments[0]
		assert.Equal(t, int64(1), card.ID)
		assert.Equal(t, "Alice Johnson", card.CustomerName)
		assert.Equal(t, "Oil Change", card.ServiceName)
		assert.Equal(t, "14:30", card.Time)
		assert.Equal(t, "APPROVED", card.Status)
	}
}

func TestExecute_FetchRangeCoversNeighbourTails(t *testing.T) {
	now := time.Date(2025, time.September, 15, 12, 0, 0, 0, time.Local)
	apptRepo := &fakeApptRepo{}
	uc := newTestUseCase(apptRepo, now)

	_, err := uc.Execute(context.Background(), &Request{BranchID: 7, Year: 2025, Month: time.September})

	require.NoError(t, err)
	require.NotNil(t, apptRepo.lastFilter.StartDate)
	require.NotNil(t, apptRepo.lastFilter.EndDate)
	assert.Equal(t, "2025-08-31", apptRepo.lastFilter.StartDate.Format(domain.DateFormat))
	assert.Equal(t, "2025-10-11", apptRepo.lastFilter.EndDate.Format(domain.DateFormat))
	assert.False(t, apptRepo.lastFilter.IncludeInactive)
}

func TestExecute_InvalidInputRejected(t *testing.T) {
	now := time.Date(2025, time.September, 15, 12, 0, 0, 0, time.Local)
	uc := newTestUseCase(&fakeApptRepo{}, now)

	cases := []Request{
		{BranchID: 0, Year: 2025, Month: time.September},
		{BranchID: 7, Year: 1800, Month: time.September},
		{BranchID: 7, Year: 2025, Month: 13},
	}

	for _, req := range cases {
		_, err := uc.Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
