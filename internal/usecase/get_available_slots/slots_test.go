package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

func allWeekdays() []int {
	return []int{0, 1, 2, 3, 4, 5, 6}
}

func testSchedule(opening, closing types.TimeString, slotDuration int) *domain.ClinicSchedule {
	return &domain.ClinicSchedule{
		ClinicID:            1,
		OpeningTime:         opening,
		ClosingTime:         closing,
		SlotDurationMinutes: slotDuration,
		WorkingDays:         allWeekdays(),
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	// Фиксированное "сейчас", дата запроса всегда в будущем
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)

	t.Run("one hour window with 30 minute slots", func(t *testing.T) {
		schedule := testSchedule("08:00", "09:00", 30)

		slots, err := generateTimeSlots(schedule, tomorrow, now)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"08:00", "08:30"}, slots)
	})

	t.Run("full working day produces twenty slots", func(t *testing.T) {
		schedule := testSchedule("08:00", "18:00", 30)

		slots, err := generateTimeSlots(schedule, tomorrow, now)
		require.NoError(t, err)
		require.Len(t, slots, 20)
		assert.Equal(t, types.TimeString("08:00"), slots[0])
		assert.Equal(t, types.TimeString("17:30"), slots[19])
	})

	t.Run("last slot may overrun closing time", func(t *testing.T) {
		// Закрытие в 09:10: слот 09:00 начинается до закрытия и попадает
		// в сетку, хотя его конец 09:30 выходит за время закрытия
		schedule := testSchedule("08:00", "09:10", 30)

		slots, err := generateTimeSlots(schedule, tomorrow, now)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"08:00", "08:30", "09:00"}, slots)
	})

	t.Run("past date returns no slots", func(t *testing.T) {
		schedule := testSchedule("08:00", "18:00", 30)

		slots, err := generateTimeSlots(schedule, now.AddDate(0, 0, -1), now)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("non working day returns no slots", func(t *testing.T) {
		schedule := testSchedule("08:00", "18:00", 30)
		schedule.WorkingDays = []int{} // клиника не работает ни в один день

		slots, err := generateTimeSlots(schedule, tomorrow, now)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("today filters out past slots", func(t *testing.T) {
		schedule := testSchedule("08:00", "18:00", 30)
		today := time.Date(2026, 9, 14, 12, 10, 0, 0, time.UTC)

		slots, err := generateTimeSlots(schedule, today, today)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		// 12:00 уже прошло, первый доступный слот 12:30
		assert.Equal(t, types.TimeString("12:30"), slots[0])
		assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
	})

	t.Run("today respects minimum booking notice", func(t *testing.T) {
		schedule := testSchedule("08:00", "18:00", 30)
		schedule.MinBookingNoticeMinutes = 60
		today := time.Date(2026, 9, 14, 12, 10, 0, 0, time.UTC)

		slots, err := generateTimeSlots(schedule, today, today)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		// Порог 13:10, первый подходящий слот 13:30
		assert.Equal(t, types.TimeString("13:30"), slots[0])
	})

	t.Run("notice threshold past midnight returns no slots", func(t *testing.T) {
		schedule := testSchedule("08:00", "18:00", 30)
		schedule.MinBookingNoticeMinutes = 120
		today := time.Date(2026, 9, 14, 23, 0, 0, 0, time.UTC)

		slots, err := generateTimeSlots(schedule, today, today)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("generation is deterministic", func(t *testing.T) {
		schedule := testSchedule("08:00", "18:00", 45)

		first, err := generateTimeSlots(schedule, tomorrow, now)
		require.NoError(t, err)
		second, err := generateTimeSlots(schedule, tomorrow, now)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func activeAppointment(start types.TimeString, duration int) *domain.Appointment {
	return &domain.Appointment{
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}

func TestIsSlotAvailable(t *testing.T) {
	booked := []*domain.Appointment{activeAppointment("09:00", 30)}

	tests := []struct {
		name      string
		slotStart types.TimeString
		duration  int
		want      bool
	}{
		{name: "exact overlap", slotStart: "09:00", duration: 30, want: false},
		{name: "partial overlap from inside", slotStart: "09:15", duration: 30, want: false},
		{name: "partial overlap from before", slotStart: "08:45", duration: 30, want: false},
		{name: "slot ends where appointment starts", slotStart: "08:30", duration: 30, want: true},
		{name: "slot starts where appointment ends", slotStart: "09:30", duration: 30, want: true},
		{name: "long slot swallows appointment", slotStart: "08:30", duration: 120, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSlotAvailable(tt.slotStart, tt.duration, booked))
		})
	}
}

func TestIsSlotAvailable_IgnoresInactiveAppointments(t *testing.T) {
	cancelled := &domain.Appointment{
		StartTime:       "09:00",
		DurationMinutes: 30,
		Status:          domain.StatusCancelledByPatient,
	}
	noShow := &domain.Appointment{
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusNoShow,
	}

	assert.True(t, isSlotAvailable("09:00", 30, []*domain.Appointment{cancelled, noShow}))
	assert.True(t, isSlotAvailable("10:00", 30, []*domain.Appointment{cancelled, noShow}))
}

func TestAnnotateAvailability(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:15", "09:30"}
	booked := []*domain.Appointment{activeAppointment("09:00", 30)}

	annotated := annotateAvailability(slots, 30, booked)
	require.Len(t, annotated, 3)

	assert.False(t, annotated[0].Available) // 09:00-09:30 занят полностью
	assert.False(t, annotated[1].Available) // 09:15-09:45 пересекается
	assert.True(t, annotated[2].Available)  // 09:30-10:00 граничит, свободен

	for _, slot := range annotated {
		assert.Equal(t, 30, slot.DurationMinutes)
	}
}

func TestAnnotateAllAvailable(t *testing.T) {
	slots := []types.TimeString{"08:00", "08:30", "09:00"}

	annotated := annotateAllAvailable(slots, 30)
	require.Len(t, annotated, 3)

	for i, slot := range annotated {
		assert.Equal(t, slots[i], slot.StartTime)
		assert.Equal(t, 30, slot.DurationMinutes)
		assert.True(t, slot.Available)
	}
}
