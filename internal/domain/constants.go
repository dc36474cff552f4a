package domain

import (
	"errors"

	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// ErrInvalidScheduleConfig возвращается при нарушении инвариантов расписания
// (открытие не раньше закрытия, недопустимая длительность слота и т.п.)
var ErrInvalidScheduleConfig = errors.New("domain: invalid clinic schedule configuration")

// Default schedule configuration values
const (
	DefaultOpeningTime             = types.TimeString("08:00")
	DefaultClosingTime             = types.TimeString("18:00")
	DefaultSlotDurationMinutes     = 30
	DefaultMinBookingNoticeMinutes = 0
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
)

// DefaultWorkingDays returns Monday through Friday (Sunday = 0)
func DefaultWorkingDays() []int {
	return []int{1, 2, 3, 4, 5}
}

// AllowedSlotDurations перечисляет допустимые шаги сетки расписания
var AllowedSlotDurations = []int{15, 30, 45, 60}

// IsAllowedSlotDuration returns true if d is one of the supported slot steps
func IsAllowedSlotDuration(d int) bool {
	for _, allowed := range AllowedSlotDurations {
		if d == allowed {
			return true
		}
	}
	return false
}

// Business validation constants
const (
	MinBookingNoticeMinutes     = 0
	MaxBookingNoticeMinutes     = 10080 // 1 week
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот в расписании
// Используется при подсчёте доступных слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByPatient,
	StatusCancelledByClinic,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих слот в расписании
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
}
