package domain

import (
	"time"

	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// ClinicSchedule represents the scheduling configuration of a clinic:
// operating hours, slot granularity and booking constraints.
// Exactly one row per clinic; an absent row means defaults apply.
type ClinicSchedule struct {
	ID                      int64
	ClinicID                int64
	OpeningTime             types.TimeString
	ClosingTime             types.TimeString
	SlotDurationMinutes     int
	WorkingDays             []int // weekday numbers, Sunday = 0
	MinBookingNoticeMinutes int
	AdvanceBookingDays      int // 0 = unlimited
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsWorkingDay returns true if the clinic is open on the given weekday
func (s *ClinicSchedule) IsWorkingDay(weekday time.Weekday) bool {
	for _, d := range s.WorkingDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// HasAdvanceBookingLimit returns true if there is a limit on how far in
// advance appointments can be booked
func (s *ClinicSchedule) HasAdvanceBookingLimit() bool {
	return s.AdvanceBookingDays > 0
}

// OperatingMinutes returns the length of the working day in minutes
func (s *ClinicSchedule) OperatingMinutes() (int, error) {
	return s.OpeningTime.MinutesBetween(s.ClosingTime)
}

// Validate checks the schedule invariants: opening strictly before closing,
// slot duration from the allowed set, weekdays within 0..6.
func (s *ClinicSchedule) Validate() error {
	if err := s.OpeningTime.Validate(); err != nil {
		return ErrInvalidScheduleConfig
	}
	if err := s.ClosingTime.Validate(); err != nil {
		return ErrInvalidScheduleConfig
	}
	if !s.OpeningTime.IsBefore(s.ClosingTime) {
		return ErrInvalidScheduleConfig
	}
	if !IsAllowedSlotDuration(s.SlotDurationMinutes) {
		return ErrInvalidScheduleConfig
	}
	for _, d := range s.WorkingDays {
		if d < 0 || d > 6 {
			return ErrInvalidScheduleConfig
		}
	}
	if s.MinBookingNoticeMinutes < MinBookingNoticeMinutes || s.MinBookingNoticeMinutes > MaxBookingNoticeMinutes {
		return ErrInvalidScheduleConfig
	}
	if s.AdvanceBookingDays < MinAdvanceBookingDays || s.AdvanceBookingDays > MaxAdvanceBookingDays {
		return ErrInvalidScheduleConfig
	}
	return nil
}

// DefaultClinicSchedule returns the schedule applied when a clinic has not
// configured one yet.
func DefaultClinicSchedule(clinicID int64) *ClinicSchedule {
	return &ClinicSchedule{
		ClinicID:                clinicID,
		OpeningTime:             DefaultOpeningTime,
		ClosingTime:             DefaultClosingTime,
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		WorkingDays:             DefaultWorkingDays(),
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
	}
}
