package domain

import (
	"time"

	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled          AppointmentStatus = "scheduled"
	StatusConfirmed          AppointmentStatus = "confirmed"
	StatusCompleted          AppointmentStatus = "completed"
	StatusCancelledByPatient AppointmentStatus = "cancelled_by_patient"
	StatusCancelledByClinic  AppointmentStatus = "cancelled_by_clinic"
	StatusNoShow             AppointmentStatus = "no_show"
)

// Appointment represents a dental appointment in the system
type Appointment struct {
	ID              int64
	PatientID       int64
	ClinicID        int64
	DentistID       *int64 // nil when no dentist has been assigned yet
	ServiceID       int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceTitle string
	ServicePrice float64
	PatientName  *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByPatient &&
		a.Status != StatusCancelledByClinic &&
		a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeUpdated returns true if the appointment can be updated
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByPatient || a.Status == StatusCancelledByClinic
}

// IsFinished returns true if the appointment is completed or was a no-show
func (a *Appointment) IsFinished() bool {
	return a.Status == StatusCompleted || a.Status == StatusNoShow
}

// EndTime returns the wall-clock end of the appointment
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// ClinicAppointmentsFilter фильтр для получения записей клиники
type ClinicAppointmentsFilter struct {
	ClinicID        int64              // Обязательный параметр
	DentistID       *int64             // Фильтр по врачу (опционально, если nil - все врачи)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли неактивные записи (отмененные, no-show)
}
