package get_available_slots

import (
	"errors"
	"time"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день
// Слоты генерируются от времени открытия клиники с фиксированным шагом slotDuration
// Затем фильтруются с учетом текущего времени и минимального времени до записи
//
// Важно: слот попадает в сетку, пока его НАЧАЛО строго раньше закрытия.
// Слот, конец которого выходит за время закрытия, из сетки не выбрасывается -
// так исторически ведёт себя клиентская часть, и это поведение сохранено
func generateTimeSlots(
	schedule *domain.ClinicSchedule,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	// Если клиника не работает в этот день недели
	if !schedule.IsWorkingDay(requestDate.Weekday()) {
		return []types.TimeString{}, nil
	}

	// Шаг 1: Генерируем ВСЕ слоты от открытия до закрытия с фиксированным шагом
	allSlots := make([]types.TimeString, 0)
	currentSlot := schedule.OpeningTime

	for currentSlot.IsBefore(schedule.ClosingTime) {
		allSlots = append(allSlots, currentSlot)

		next, err := currentSlot.AddMinutes(schedule.SlotDurationMinutes)
		if err != nil {
			// Переход через полночь - сетка закончилась
			if errors.Is(err, types.ErrTimeOverflow) {
				break
			}
			return nil, err
		}
		currentSlot = next
	}

	// Шаг 2: Если дата записи НЕ сегодня - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: Если дата записи - сегодня, фильтруем слоты по времени
	// Вычисляем минимальное допустимое время начала слота
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(schedule.MinBookingNoticeMinutes)
	if err != nil {
		// Минимальное время ушло за полночь - сегодня записаться уже нельзя
		if errors.Is(err, types.ErrTimeOverflow) {
			return []types.TimeString{}, nil
		}
		return nil, err
	}

	// Оставляем только слоты, которые начинаются не раньше minAllowedTime
	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// annotateAvailability помечает каждый слот признаком доступности
// с учетом длительности услуги и уже существующих записей
func annotateAvailability(
	slots []types.TimeString,
	durationMinutes int,
	appointments []*domain.Appointment,
) []domain.TimeSlot {
	result := make([]domain.TimeSlot, len(slots))

	for i, slotStart := range slots {
		result[i] = domain.TimeSlot{
			StartTime:       slotStart,
			DurationMinutes: durationMinutes,
			Available:       isSlotAvailable(slotStart, durationMinutes, appointments),
		}
	}

	return result
}

// annotateAllAvailable помечает каждый слот доступным
// Используется в публичном флоу, пока услуга (и её длительность) не выбрана:
// без длительности реальная проверка пересечений невозможна, поэтому все
// слоты показываются доступными до выбора услуги
func annotateAllAvailable(slots []types.TimeString, durationMinutes int) []domain.TimeSlot {
	result := make([]domain.TimeSlot, len(slots))

	for i, slotStart := range slots {
		result[i] = domain.TimeSlot{
			StartTime:       slotStart,
			DurationMinutes: durationMinutes,
			Available:       true,
		}
	}

	return result
}

// isSlotAvailable проверяет, что слот не пересекается ни с одной активной записью
// Пересечение есть только если интервалы действительно накладываются друг на друга
// Если одна запись заканчивается ровно там, где начинается слот (или наоборот) - это НЕ пересечение
//
// Примеры:
// - Слот 09:00-09:30, запись 09:00-09:30 → ЕСТЬ пересечение (полное совпадение)
// - Слот 09:15-09:45, запись 09:00-09:30 → ЕСТЬ пересечение (09:15-09:30)
// - Слот 09:30-10:00, запись 09:00-09:30 → НЕТ пересечения (граничат)
func isSlotAvailable(slotStart types.TimeString, durationMinutes int, appointments []*domain.Appointment) bool {
	slotEnd, err := slotStart.AddMinutes(durationMinutes)
	if err != nil {
		// Если не можем вычислить конец слота, считаем что пересечений нет
		return true
	}

	for _, appt := range appointments {
		// Пропускаем неактивные записи (отмененные, no-show)
		if !appt.IsActive() {
			continue
		}

		apptStart := appt.StartTime
		apptEnd, err := appt.EndTime()
		if err != nil {
			// Если не можем вычислить конец записи, пропускаем её
			continue
		}

		// Проверяем РЕАЛЬНОЕ пересечение временных интервалов
		// Интервалы пересекаются, только если:
		// - начало записи СТРОГО раньше конца слота И
		// - конец записи СТРОГО позже начала слота
		//
		// Строгие неравенства (IsBefore, IsAfter) - граничные случаи не считаются
		// пересечением, записи "впритык" разрешены
		if apptStart.IsBefore(slotEnd) && apptEnd.IsAfter(slotStart) {
			return false
		}
	}

	return true
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
