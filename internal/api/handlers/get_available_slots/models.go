package get_available_slots

import (
	"strconv"
	"time"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	getAvailableSlots "github.com/zubkit/ZK-ScheduleService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	ClinicID  int64           `json:"clinicId"`
	DentistID *int64          `json:"dentistId,omitempty"`
	ServiceID *int64          `json:"serviceId,omitempty"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ClinicID:  resp.ClinicID,
		DentistID: resp.DentistID,
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(clinicID int64, dentistIDStr, serviceIDStr, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		ClinicID: clinicID,
		Date:     date,
	}

	// Врач опционален: без него слоты считаются по всей клинике
	if dentistIDStr != "" {
		dentistID, err := strconv.ParseInt(dentistIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.DentistID = &dentistID
	}

	// Услуга опциональна: без неё все слоты показываются доступными
	if serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = &serviceID
	}

	return req, nil
}
