package models

import (
	"time"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// Request модели

// UpdateScheduleRequest запрос на обновление расписания клиники
// Все поля опциональны - обновляются только переданные значения
type UpdateScheduleRequest struct {
	UserID                  int64   `json:"userId"`
	OpeningTime             *string `json:"openingTime,omitempty"`             // "08:00"
	ClosingTime             *string `json:"closingTime,omitempty"`             // "18:00"
	SlotDurationMinutes     *int    `json:"slotDurationMinutes,omitempty"`     // 15, 30, 45, 60
	WorkingDays             []int   `json:"workingDays,omitempty"`             // Дни недели, воскресенье = 0
	MinBookingNoticeMinutes *int    `json:"minBookingNoticeMinutes,omitempty"` // Минимальное время до записи
	AdvanceBookingDays      *int    `json:"advanceBookingDays,omitempty"`      // 0 = без ограничений
}

// ApplyToSchedule применяет частичное обновление к расписанию
func (r *UpdateScheduleRequest) ApplyToSchedule(schedule *domain.ClinicSchedule) {
	if r.OpeningTime != nil {
		schedule.OpeningTime = types.TimeString(*r.OpeningTime)
	}
	if r.ClosingTime != nil {
		schedule.ClosingTime = types.TimeString(*r.ClosingTime)
	}
	if r.SlotDurationMinutes != nil {
		schedule.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.WorkingDays != nil {
		schedule.WorkingDays = r.WorkingDays
	}
	if r.MinBookingNoticeMinutes != nil {
		schedule.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}
	if r.AdvanceBookingDays != nil {
		schedule.AdvanceBookingDays = *r.AdvanceBookingDays
	}
}

// Response модели

// ScheduleResponse ответ с данными расписания клиники
type ScheduleResponse struct {
	ClinicID                int64  `json:"clinicId"`
	OpeningTime             string `json:"openingTime"`
	ClosingTime             string `json:"closingTime"`
	SlotDurationMinutes     int    `json:"slotDurationMinutes"`
	WorkingDays             []int  `json:"workingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	IsDefault               bool   `json:"isDefault"` // true, если клиника ещё не настроила расписание

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.ClinicSchedule, isDefault bool) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ClinicID:                s.ClinicID,
		OpeningTime:             s.OpeningTime.String(),
		ClosingTime:             s.ClosingTime.String(),
		SlotDurationMinutes:     s.SlotDurationMinutes,
		WorkingDays:             s.WorkingDays,
		MinBookingNoticeMinutes: s.MinBookingNoticeMinutes,
		AdvanceBookingDays:      s.AdvanceBookingDays,
		IsDefault:               isDefault,
	}

	// У дефолтного расписания нет строки в БД и нет временных меток
	if !isDefault {
		createdAt := s.CreatedAt
		updatedAt := s.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
