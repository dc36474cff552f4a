package update_clinic_schedule

import (
	"github.com/zubkit/ZK-ScheduleService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateScheduleRequest struct {
	OpeningTime             *string `json:"openingTime,omitempty"`
	ClosingTime             *string `json:"closingTime,omitempty"`
	SlotDurationMinutes     *int    `json:"slotDurationMinutes,omitempty"`
	WorkingDays             []int   `json:"workingDays,omitempty"`
	MinBookingNoticeMinutes *int    `json:"minBookingNoticeMinutes,omitempty"`
	AdvanceBookingDays      *int    `json:"advanceBookingDays,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:                  userID,
		OpeningTime:             r.OpeningTime,
		ClosingTime:             r.ClosingTime,
		SlotDurationMinutes:     r.SlotDurationMinutes,
		WorkingDays:             r.WorkingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
	}
}
