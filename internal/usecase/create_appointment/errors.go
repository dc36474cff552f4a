package create_appointment

import "errors"

var (
	// ErrClinicNotFound возвращается, когда клиника не найдена
	ErrClinicNotFound = errors.New("create_appointment: clinic not found")

	// ErrDentistNotFound возвращается, когда врач не найден в клинике
	ErrDentistNotFound = errors.New("create_appointment: dentist not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("create_appointment: patient not found")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrClinicClosed возвращается, когда клиника не работает в указанную дату
	ErrClinicClosed = errors.New("create_appointment: clinic is closed on this date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	// Это восстановимая ошибка: клиенту следует обновить сетку и выбрать другой слот
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку расписания
	// (не кратно slotDuration или вне рабочих часов)
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTooLateToBook возвращается, когда запись нарушает minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrInvalidScheduleConfig возвращается при некорректной конфигурации расписания
	ErrInvalidScheduleConfig = errors.New("create_appointment: invalid clinic schedule configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
