package get_day_grid

import (
	"errors"
	"fmt"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// positionEvent вычисляет вертикальное положение события в колонке.
// Отображение линейно: смещение пропорционально минутам от открытия,
// высота пропорциональна длительности. Один слот сетки = pixelsPerSlot пикселей.
func positionEvent(
	startTime types.TimeString,
	durationMinutes int,
	openingTime types.TimeString,
	slotDurationMinutes int,
	pixelsPerSlot int,
) (top float64, height float64, err error) {
	offset, err := openingTime.MinutesBetween(startTime)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to compute event offset: %w", err)
	}

	pxPerMinute := float64(pixelsPerSlot) / float64(slotDurationMinutes)

	return float64(offset) * pxPerMinute, float64(durationMinutes) * pxPerMinute, nil
}

// buildGridLines строит горизонтальные линии сетки на каждой границе слота
// от открытия до закрытия. Линии чисто визуальные и данных не несут.
func buildGridLines(schedule *domain.ClinicSchedule, pixelsPerSlot int) ([]GridLine, error) {
	var lines []GridLine

	cursor := schedule.OpeningTime
	for i := 0; cursor.IsBefore(schedule.ClosingTime); i++ {
		lines = append(lines, GridLine{
			Time: cursor,
			Top:  float64(i * pixelsPerSlot),
		})

		next, err := cursor.AddMinutes(schedule.SlotDurationMinutes)
		if err != nil {
			if errors.Is(err, types.ErrTimeOverflow) {
				// Граница ушла за полночь - сетка закончилась
				break
			}
			return nil, fmt.Errorf("failed to advance grid line: %w", err)
		}
		cursor = next
	}

	return lines, nil
}

// buildColumns раскладывает записи по колонкам врачей.
// Колонки идут в порядке списка врачей клиники. Записи без назначенного
// врача и записи врачей, не числящихся в клинике, в сетку не попадают.
func buildColumns(
	dentists []clinicservice.Dentist,
	appointments []*domain.Appointment,
	schedule *domain.ClinicSchedule,
	pixelsPerSlot int,
) ([]DentistColumn, error) {
	byDentist := make(map[int64][]*domain.Appointment, len(dentists))
	for _, appt := range appointments {
		if appt.DentistID == nil {
			continue
		}
		byDentist[*appt.DentistID] = append(byDentist[*appt.DentistID], appt)
	}

	columns := make([]DentistColumn, 0, len(dentists))
	for _, dentist := range dentists {
		column := DentistColumn{
			DentistID:   dentist.ID,
			DentistName: dentist.FullName,
			Specialty:   dentist.Specialty,
			Events:      make([]CalendarEvent, 0, len(byDentist[dentist.ID])),
		}

		for _, appt := range byDentist[dentist.ID] {
			event, err := buildEvent(appt, schedule, pixelsPerSlot)
			if err != nil {
				return nil, err
			}
			column.Events = append(column.Events, event)
		}

		columns = append(columns, column)
	}

	return columns, nil
}

// buildEvent преобразует запись на приём в спозиционированное событие
func buildEvent(appt *domain.Appointment, schedule *domain.ClinicSchedule, pixelsPerSlot int) (CalendarEvent, error) {
	endTime, err := appt.EndTime()
	if err != nil {
		return CalendarEvent{}, fmt.Errorf("failed to compute end time of appointment id=%d: %w", appt.ID, err)
	}

	top, height, err := positionEvent(
		appt.StartTime, appt.DurationMinutes,
		schedule.OpeningTime, schedule.SlotDurationMinutes, pixelsPerSlot,
	)
	if err != nil {
		return CalendarEvent{}, fmt.Errorf("failed to position appointment id=%d: %w", appt.ID, err)
	}

	return CalendarEvent{
		AppointmentID:   appt.ID,
		PatientName:     appt.PatientName,
		ServiceTitle:    appt.ServiceTitle,
		StartTime:       appt.StartTime,
		EndTime:         endTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ColorClass:      domain.StatusColorClass(appt.Status),
		Top:             top,
		Height:          height,
	}, nil
}
