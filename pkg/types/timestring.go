package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layouts for wall-clock time values
const (
	// Layout24 is the canonical wire format, e.g. "14:30"
	Layout24 = "15:04"
	// Layout12 is the human-facing format used by booking forms, e.g. "02:30 PM"
	Layout12 = "03:04 PM"
)

var (
	// ErrInvalidTimeString is returned when a string cannot be parsed as HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange is returned when arithmetic moves the time past 23:59
	ErrTimeOutOfRange = errors.New("time out of range")
)

// TimeString is a wall-clock time of day stored in the canonical "HH:MM"
// 24-hour form. It has no date and no timezone; comparisons are plain
// lexicographic comparisons, which are correct for zero-padded HH:MM.
type TimeString string

// NewTimeString builds a TimeString from the clock fields of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Layout24))
}

// NewTimeStringFromString parses a 24-hour "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(Layout24, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(parsed.Format(Layout24)), nil
}

// NewTimeStringFrom12Hour parses a 12-hour "hh:mm AM/PM" string.
// The AM/PM marker is case-insensitive and surrounding whitespace is ignored.
func NewTimeStringFrom12Hour(s string) (TimeString, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(s), " "))
	parsed, err := time.Parse(Layout12, normalized)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(parsed.Format(Layout24)), nil
}

// String returns the canonical "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// To12Hour returns the time in the "hh:mm AM/PM" form used by booking forms
func (t TimeString) To12Hour() string {
	parsed, err := time.Parse(Layout24, string(t))
	if err != nil {
		return string(t)
	}
	return parsed.Format(Layout12)
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed zero-padded "HH:MM"
func (t TimeString) Validate() error {
	parsed, err := time.Parse(Layout24, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if parsed.Format(Layout24) != string(t) {
		return fmt.Errorf("%w: %q is not zero-padded", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore reports whether t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Minutes returns the number of minutes since midnight
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(Layout24, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by m minutes.
// Crossing midnight is treated as an error, not a wrap-around: all slot
// arithmetic in this service stays within a single working day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %dm", ErrTimeOutOfRange, t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}
