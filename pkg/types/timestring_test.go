package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFrom12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want TimeString
	}{
		{"09:00 AM", "09:00"},
		{"02:30 PM", "14:30"},
		{"12:00 PM", "12:00"},
		{"12:30 AM", "00:30"},
		{"05:00 pm", "17:00"},
		{"  11:30   am ", "11:30"},
	}

	for _, c := range cases {
		got, err := NewTimeStringFrom12Hour(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestNewTimeStringFrom12Hour_Invalid(t *testing.T) {
	for _, in := range []string{"", "garbage", "14:30", "13:00 PM", "2:30"} {
		_, err := NewTimeStringFrom12Hour(in)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", in)
	}
}

func TestTo12Hour_RoundTripOverTemplate(t *testing.T) {
	// каждый слот канонической сетки выживает 24h -> 12h -> 24h
	slot := TimeString("09:00")
	for i := 0; i < 17; i++ {
		back, err := NewTimeStringFrom12Hour(slot.To12Hour())
		require.NoError(t, err, "slot %s", slot)
		assert.Equal(t, slot, back)

		next, err := slot.AddMinutes(30)
		require.NoError(t, err)
		slot = next
	}
	assert.Equal(t, TimeString("17:30"), slot)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("00:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())

	for _, bad := range []TimeString{"", "9:00", "24:00", "12:60", "noon"} {
		assert.Error(t, bad.Validate(), "value %q", bad)
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	got, err = TimeString("23:30").AddMinutes(29)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestNewTimeString_FromClock(t *testing.T) {
	ts := NewTimeString(time.Date(2025, time.September, 10, 14, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("14:30"), ts)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("14:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 14*60+30, m)
}
