package get_day_grid

import (
	"strconv"
	"time"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	getDayGrid "github.com/zubkit/ZK-ScheduleService/internal/usecase/get_day_grid"
)

// DayGridResponse HTTP response model
type DayGridResponse struct {
	Date                string          `json:"date"`
	ClinicID            int64           `json:"clinicId"`
	OpeningTime         string          `json:"openingTime"`
	ClosingTime         string          `json:"closingTime"`
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	PixelsPerSlot       int             `json:"pixelsPerSlot"`
	GridLines           []GridLine      `json:"gridLines"`
	Columns             []DentistColumn `json:"columns"`
}

// GridLine горизонтальная линия сетки
type GridLine struct {
	Time string  `json:"time"`
	Top  float64 `json:"top"`
}

// DentistColumn колонка сетки для одного врача
type DentistColumn struct {
	DentistID   int64           `json:"dentistId"`
	DentistName string          `json:"dentistName"`
	Specialty   string          `json:"specialty,omitempty"`
	Events      []CalendarEvent `json:"events"`
}

// CalendarEvent спозиционированное событие
type CalendarEvent struct {
	AppointmentID   int64   `json:"appointmentId"`
	PatientName     *string `json:"patientName,omitempty"`
	ServiceTitle    string  `json:"serviceTitle"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ColorClass      string  `json:"colorClass"`
	Top             float64 `json:"top"`
	Height          float64 `json:"height"`
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(clinicID, userID int64, dateStr, pixelsPerSlotStr string) (*getDayGrid.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getDayGrid.Request{
		UserID:   userID,
		ClinicID: clinicID,
		Date:     date,
	}

	if pixelsPerSlotStr != "" {
		pixelsPerSlot, err := strconv.Atoi(pixelsPerSlotStr)
		if err != nil {
			return nil, err
		}
		req.PixelsPerSlot = &pixelsPerSlot
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayGrid.Response) *DayGridResponse {
	gridLines := make([]GridLine, len(resp.GridLines))
	for i, line := range resp.GridLines {
		gridLines[i] = GridLine{
			Time: line.Time.String(),
			Top:  line.Top,
		}
	}

	columns := make([]DentistColumn, len(resp.Columns))
	for i, column := range resp.Columns {
		events := make([]CalendarEvent, len(column.Events))
		for j, event := range column.Events {
			events[j] = CalendarEvent{
				AppointmentID:   event.AppointmentID,
				PatientName:     event.PatientName,
				ServiceTitle:    event.ServiceTitle,
				StartTime:       event.StartTime.String(),
				EndTime:         event.EndTime.String(),
				DurationMinutes: event.DurationMinutes,
				Status:          event.Status,
				ColorClass:      string(event.ColorClass),
				Top:             event.Top,
				Height:          event.Height,
			}
		}

		columns[i] = DentistColumn{
			DentistID:   column.DentistID,
			DentistName: column.DentistName,
			Specialty:   column.Specialty,
			Events:      events,
		}
	}

	return &DayGridResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		ClinicID:            resp.ClinicID,
		OpeningTime:         resp.OpeningTime.String(),
		ClosingTime:         resp.ClosingTime.String(),
		SlotDurationMinutes: resp.SlotDurationMinutes,
		PixelsPerSlot:       resp.PixelsPerSlot,
		GridLines:           gridLines,
		Columns:             columns,
	}
}
