// Package dayoffset implements minute-precision time-of-day values that
// may exceed 24 hours, as used throughout the IFF timetable format.
package dayoffset

import (
	"fmt"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
	minutesPerDay  = minutesPerHour * hoursPerDay
)

// DayOffset is a non-negative minute count from local midnight.
// Values may exceed 1440 when a ride crosses midnight; the original
// offset is retained rather than wrapped.
type DayOffset struct {
	minutes uint32
}

// FromHourMinute builds a DayOffset from an hour/minute pair. Hours
// may exceed 23 (e.g. 25:30 for a service past midnight).
func FromHourMinute(hours, minutes uint32) DayOffset {
	return DayOffset{minutes: hours*minutesPerHour + minutes}
}

// Parse decodes a 4-character "HHMM" field into a DayOffset.
func Parse(s string) (DayOffset, error) {
	if len(s) != 4 {
		return DayOffset{}, fmt.Errorf("dayoffset: %q is not 4 characters", s)
	}

	var hours, minutes uint32
	if _, err := fmt.Sscanf(s[0:2], "%2d", &hours); err != nil {
		return DayOffset{}, fmt.Errorf("dayoffset: parsing hours of %q: %w", s, err)
	}
	if _, err := fmt.Sscanf(s[2:4], "%2d", &minutes); err != nil {
		return DayOffset{}, fmt.Errorf("dayoffset: parsing minutes of %q: %w", s, err)
	}
	if minutes >= minutesPerHour {
		return DayOffset{}, fmt.Errorf("dayoffset: %q has an out-of-range minute field", s)
	}

	return FromHourMinute(hours, minutes), nil
}

// Minutes returns the raw minute count.
func (d DayOffset) Minutes() uint32 {
	return d.minutes
}

// Before reports whether d occurs strictly before other.
func (d DayOffset) Before(other DayOffset) bool {
	return d.minutes < other.minutes
}

// After reports whether d occurs strictly after other.
func (d DayOffset) After(other DayOffset) bool {
	return d.minutes > other.minutes
}

// Compare returns -1, 0 or 1 as d is less than, equal to, or greater
// than other.
func (d DayOffset) Compare(other DayOffset) int {
	switch {
	case d.minutes < other.minutes:
		return -1
	case d.minutes > other.minutes:
		return 1
	default:
		return 0
	}
}

// OffsetBy returns a DayOffset shifted by the given number of minutes,
// saturating at zero rather than underflowing.
func (d DayOffset) OffsetBy(minutes int32) DayOffset {
	shifted := int64(d.minutes) + int64(minutes)
	if shifted < 0 {
		shifted = 0
	}
	return DayOffset{minutes: uint32(shifted)}
}

// TimetableString renders the offset modulo 24 hours as "HH:MM", the
// form used when printing a human-readable schedule.
func (d DayOffset) TimetableString() string {
	local := d.minutes % minutesPerDay
	return fmt.Sprintf("%02d:%02d", local/minutesPerHour, local%minutesPerHour)
}

// MarshalJSON emits the offset as a bare integer number of minutes,
// matching the wire shape of the original ride/leg JSON payloads.
func (d DayOffset) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%d", d.minutes)), nil
}

// UnmarshalJSON accepts a bare integer number of minutes.
func (d *DayOffset) UnmarshalJSON(data []byte) error {
	var minutes uint32
	if _, err := fmt.Sscanf(string(data), "%d", &minutes); err != nil {
		return fmt.Errorf("dayoffset: unmarshaling %q: %w", data, err)
	}
	d.minutes = minutes
	return nil
}

func (d DayOffset) String() string {
	return fmt.Sprintf("%dm", d.minutes)
}
