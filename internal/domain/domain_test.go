package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

func TestAppointment_IsActive(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{StatusScheduled, true},
		{StatusConfirmed, true},
		{StatusCompleted, true},
		{StatusCancelledByPatient, false},
		{StatusCancelledByClinic, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			appt := &Appointment{Status: tt.status}
			assert.Equal(t, tt.want, appt.IsActive())
		})
	}
}

func TestAppointment_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusScheduled}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelledByPatient}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusNoShow}).CanBeCancelled())
}

func TestAppointment_EndTime(t *testing.T) {
	appt := &Appointment{StartTime: "09:00", DurationMinutes: 45}

	end, err := appt.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:45"), end)

	// Конец за полночью - ошибка переполнения
	late := &Appointment{StartTime: "23:45", DurationMinutes: 30}
	_, err = late.EndTime()
	assert.ErrorIs(t, err, types.ErrTimeOverflow)
}

func TestClinicSchedule_Validate(t *testing.T) {
	valid := func() *ClinicSchedule {
		return &ClinicSchedule{
			ClinicID:            1,
			OpeningTime:         "08:00",
			ClosingTime:         "18:00",
			SlotDurationMinutes: 30,
			WorkingDays:         []int{1, 2, 3, 4, 5},
		}
	}

	t.Run("valid schedule", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("opening after closing", func(t *testing.T) {
		s := valid()
		s.OpeningTime = "19:00"
		assert.ErrorIs(t, s.Validate(), ErrInvalidScheduleConfig)
	})

	t.Run("opening equals closing", func(t *testing.T) {
		s := valid()
		s.ClosingTime = s.OpeningTime
		assert.ErrorIs(t, s.Validate(), ErrInvalidScheduleConfig)
	})

	t.Run("unsupported slot duration", func(t *testing.T) {
		s := valid()
		s.SlotDurationMinutes = 17
		assert.ErrorIs(t, s.Validate(), ErrInvalidScheduleConfig)
	})

	t.Run("weekday out of range", func(t *testing.T) {
		s := valid()
		s.WorkingDays = []int{1, 7}
		assert.ErrorIs(t, s.Validate(), ErrInvalidScheduleConfig)
	})

	t.Run("negative booking notice", func(t *testing.T) {
		s := valid()
		s.MinBookingNoticeMinutes = -1
		assert.ErrorIs(t, s.Validate(), ErrInvalidScheduleConfig)
	})

	t.Run("advance booking over a year", func(t *testing.T) {
		s := valid()
		s.AdvanceBookingDays = 400
		assert.ErrorIs(t, s.Validate(), ErrInvalidScheduleConfig)
	})
}

func TestDefaultClinicSchedule(t *testing.T) {
	s := DefaultClinicSchedule(42)

	require.NoError(t, s.Validate())
	assert.Equal(t, int64(42), s.ClinicID)
	assert.Equal(t, DefaultOpeningTime, s.OpeningTime)
	assert.Equal(t, DefaultClosingTime, s.ClosingTime)
	assert.Equal(t, DefaultSlotDurationMinutes, s.SlotDurationMinutes)
	assert.Equal(t, DefaultWorkingDays(), s.WorkingDays)
}

func TestStatusColorClass(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   ColorClass
	}{
		{StatusScheduled, ColorScheduled},
		{StatusConfirmed, ColorConfirmed},
		{StatusCompleted, ColorCompleted},
		{StatusCancelledByPatient, ColorCancelled},
		{StatusCancelledByClinic, ColorCancelled},
		{StatusNoShow, ColorNoShow},
		{AppointmentStatus("unknown"), ColorScheduled},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusColorClass(tt.status))
		})
	}
}
