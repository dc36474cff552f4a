package create_appointment

import (
	"fmt"
	"time"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.ClinicID <= 0 {
		return fmt.Errorf("%w: clinicID must be positive", ErrInvalidInput)
	}

	if req.DentistID != nil && *req.DentistID <= 0 {
		return fmt.Errorf("%w: dentistID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата подходит для записи
func validateDate(requestDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	requestDateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())

	if requestDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateDentistExists проверяет, что врач работает в клинике
func validateDentistExists(clinic *clinicservice.Clinic, dentistID int64) error {
	for _, d := range clinic.Dentists {
		if d.ID == dentistID {
			return nil
		}
	}
	return ErrDentistNotFound
}

// validateSlotOnGrid проверяет, что время начала попадает в сетку расписания:
// лежит в рабочих часах и кратно slotDuration от времени открытия
func validateSlotOnGrid(startTime types.TimeString, schedule *domain.ClinicSchedule) error {
	if startTime.IsBefore(schedule.OpeningTime) || !startTime.IsBefore(schedule.ClosingTime) {
		return fmt.Errorf("%w: time %s is outside working hours %s-%s",
			ErrInvalidTimeSlot, startTime, schedule.OpeningTime, schedule.ClosingTime)
	}

	offset, err := schedule.OpeningTime.MinutesBetween(startTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if offset%schedule.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: time %s is not aligned to %d-minute grid",
			ErrInvalidTimeSlot, startTime, schedule.SlotDurationMinutes)
	}

	return nil
}

// validateBookingNotice проверяет ограничение minBookingNoticeMinutes:
// для записи на сегодня слот должен начинаться не раньше now + minNotice
func validateBookingNotice(startTime types.TimeString, requestDate time.Time, now time.Time, minNoticeMinutes int) error {
	if !isSameDay(requestDate, now) {
		return nil
	}

	threshold, err := types.NewTimeString(now).AddMinutes(minNoticeMinutes)
	if err != nil {
		// Порог ушел за полночь - сегодня записаться уже нельзя
		return ErrTooLateToBook
	}

	if startTime.IsBefore(threshold) {
		return ErrTooLateToBook
	}

	return nil
}

// isDateInPast проверяет, что дата находится в прошлом (по дням)
func isDateInPast(date time.Time, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isSameDay проверяет, что две даты приходятся на один день
func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
