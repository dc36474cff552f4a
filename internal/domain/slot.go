package domain

import "github.com/zubkit/ZK-ScheduleService/pkg/types"

// TimeSlot represents a bookable start time within a working day.
// Slots are transient: they are recomputed on every request and never stored.
type TimeSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}

// End returns the wall-clock end of the slot
func (s *TimeSlot) End() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
