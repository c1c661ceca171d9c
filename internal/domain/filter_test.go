package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consoleAppointments() []*Appointment {
	return []*Appointment{
		{ID: 1, CustomerName: "Alice Johnson", BranchName: "Downtown", Status: StatusPending},
		{ID: 2, CustomerName: "Bob Smith", BranchName: "Airport", Status: StatusApproved},
		{ID: 3, CustomerName: "alice cooper", BranchName: "Downtown", Status: StatusCompleted},
		{ID: 4, CustomerName: "Carol White", BranchName: "Airport", Status: StatusCancelled},
	}
}

func TestFilterAppointments_AllDisablesPredicates(t *testing.T) {
	all := consoleAppointments()

	matched := FilterAppointments(all, AppointmentFilter{Branch: FilterAll, Status: FilterAll})

	assert.Len(t, matched, len(all))
}

func TestFilterAppointments_StatusCaseInsensitive(t *testing.T) {
	matched := FilterAppointments(consoleAppointments(), AppointmentFilter{Status: "approved"})

	require.Len(t, matched, 1)
	assert.Equal(t, int64(2), matched[0].ID)
}

func TestFilterAppointments_SearchSubstring(t *testing.T) {
	matched := FilterAppointments(consoleAppointments(), AppointmentFilter{SearchText: "ALICE"})

	require.Len(t, matched, 2)
	assert.Equal(t, int64(1), matched[0].ID)
	assert.Equal(t, int64(3), matched[1].ID)
}

func TestFilterAppointments_CombinedPredicates(t *testing.T) {
	matched := FilterAppointments(consoleAppointments(), AppointmentFilter{
		Branch:     "Downtown",
		Status:     "PENDING",
		SearchText: "alice",
	})

	require.Len(t, matched, 1)
	assert.Equal(t, int64(1), matched[0].ID)
}

func TestFilterAppointments_SourceNeverMutated(t *testing.T) {
	all := consoleAppointments()

	matched := FilterAppointments(all, AppointmentFilter{Status: "PENDING"})
	require.Len(t, matched, 1)

	// источник не изменился
	assert.Len(t, all, 4)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(4), all[3].ID)
}

func TestFilterAppointments_Idempotent(t *testing.T) {
	filter := AppointmentFilter{Branch: "Airport", SearchText: "o"}
	all := consoleAppointments()

	once := FilterAppointments(all, filter)
	twice := FilterAppointments(once, filter)

	assert.Equal(t, once, twice)
}

func TestFilterAppointments_PreservesOrder(t *testing.T) {
	matched := FilterAppointments(consoleAppointments(), AppointmentFilter{Branch: "Airport"})

	require.Len(t, matched, 2)
	assert.Equal(t, int64(2), matched[0].ID)
	assert.Equal(t, int64(4), matched[1].ID)
}
