package domain

import (
	"fmt"

	reservations "vantraResto/internal/modules/reservations/domain"
)

// Shift is a named service window, start inclusive and end exclusive, both
// "HH:MM". A shift whose end hour is not after its start hour crosses
// midnight (e.g. dinner 19:00-01:00).
type Shift struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Validate checks both boundaries parse as clock values.
func (s Shift) Validate() error {
	if _, _, err := reservations.ParseClock(s.Start); err != nil {
		return fmt.Errorf("shift start: %w", err)
	}
	if _, _, err := reservations.ParseClock(s.End); err != nil {
		return fmt.Errorf("shift end: %w", err)
	}
	return nil
}

// Contains reports whether the clock value's hour falls inside [start, end).
// Comparison is hour-granular, matching how the schedule lanes are cut.
// For a midnight-crossing shift, hours below the start are shifted forward a
// day before comparing. Unparseable values are never inside a shift.
func (s Shift) Contains(clock string) bool {
	hour, _, err := reservations.ParseClock(clock)
	if err != nil {
		return false
	}
	startHour, _, err := reservations.ParseClock(s.Start)
	if err != nil {
		return false
	}
	endHour, _, err := reservations.ParseClock(s.End)
	if err != nil {
		return false
	}
	if endHour <= startHour {
		endHour += 24
		if hour < startHour {
			hour += 24
		}
	}
	return hour >= startHour && hour < endHour
}
