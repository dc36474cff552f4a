package get_day_grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
	"github.com/zubkit/ZK-ScheduleService/pkg/ptr"
	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

func testSchedule() *domain.ClinicSchedule {
	return &domain.ClinicSchedule{
		ClinicID:            1,
		OpeningTime:         "08:00",
		ClosingTime:         "18:00",
		SlotDurationMinutes: 30,
		WorkingDays:         []int{1, 2, 3, 4, 5},
	}
}

func TestPositionEvent(t *testing.T) {
	tests := []struct {
		name       string
		startTime  string
		duration   int
		wantTop    float64
		wantHeight float64
	}{
		{name: "event at opening time", startTime: "08:00", duration: 30, wantTop: 0, wantHeight: 40},
		{name: "one slot below opening", startTime: "08:30", duration: 30, wantTop: 40, wantHeight: 40},
		{name: "two hours below opening", startTime: "10:00", duration: 30, wantTop: 160, wantHeight: 40},
		{name: "double duration doubles height", startTime: "10:00", duration: 60, wantTop: 160, wantHeight: 80},
		{name: "duration not multiple of slot", startTime: "08:00", duration: 45, wantTop: 0, wantHeight: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, height, err := positionEvent(
				types.TimeString(tt.startTime), tt.duration, "08:00", 30, 40)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTop, top)
			assert.Equal(t, tt.wantHeight, height)
		})
	}
}

func TestPositionEvent_FifteenMinuteGrid(t *testing.T) {
	// Слот 15 минут при тех же 40 пикселях растягивает масштаб
	top, height, err := positionEvent("08:30", 30, "08:00", 15, 40)
	require.NoError(t, err)
	assert.Equal(t, 80.0, top)
	assert.Equal(t, 80.0, height)
}

func TestBuildGridLines(t *testing.T) {
	lines, err := buildGridLines(testSchedule(), 40)
	require.NoError(t, err)
	require.Len(t, lines, 20)

	assert.Equal(t, types.TimeString("08:00"), lines[0].Time)
	assert.Equal(t, 0.0, lines[0].Top)
	assert.Equal(t, types.TimeString("08:30"), lines[1].Time)
	assert.Equal(t, 40.0, lines[1].Top)
	assert.Equal(t, types.TimeString("17:30"), lines[19].Time)
	assert.Equal(t, 760.0, lines[19].Top)
}

func TestBuildGridLines_ClosingAtMidnight(t *testing.T) {
	schedule := testSchedule()
	schedule.OpeningTime = "23:00"
	schedule.ClosingTime = "23:59"

	lines, err := buildGridLines(schedule, 40)
	require.NoError(t, err)
	// Граница 23:30 есть, следующая ушла бы за полночь
	require.Len(t, lines, 2)
	assert.Equal(t, types.TimeString("23:30"), lines[1].Time)
}

func TestBuildColumns(t *testing.T) {
	dentists := []clinicservice.Dentist{
		{ID: 10, FullName: "Иванов И.И.", Specialty: "терапевт", IsActive: true},
		{ID: 20, FullName: "Сидорова А.А.", Specialty: "хирург", IsActive: true},
	}

	appointments := []*domain.Appointment{
		{
			ID:              1,
			DentistID:       ptr.Ptr(int64(10)),
			StartTime:       "09:00",
			DurationMinutes: 30,
			Status:          domain.StatusConfirmed,
			ServiceTitle:    "Чистка зубов",
		},
		{
			ID:              2,
			DentistID:       ptr.Ptr(int64(10)),
			StartTime:       "11:00",
			DurationMinutes: 60,
			Status:          domain.StatusCancelledByPatient,
			ServiceTitle:    "Удаление зуба",
		},
		{
			ID:              3,
			DentistID:       nil, // без врача - в сетку не попадает
			StartTime:       "10:00",
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
		{
			ID:              4,
			DentistID:       ptr.Ptr(int64(999)), // врач не из клиники
			StartTime:       "12:00",
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}

	columns, err := buildColumns(dentists, appointments, testSchedule(), 40)
	require.NoError(t, err)
	require.Len(t, columns, 2)

	// Порядок колонок повторяет порядок врачей клиники
	assert.Equal(t, int64(10), columns[0].DentistID)
	assert.Equal(t, "Иванов И.И.", columns[0].DentistName)
	assert.Equal(t, int64(20), columns[1].DentistID)

	// У второго врача записей нет, но колонка присутствует
	assert.Empty(t, columns[1].Events)

	require.Len(t, columns[0].Events, 2)

	first := columns[0].Events[0]
	assert.Equal(t, int64(1), first.AppointmentID)
	assert.Equal(t, types.TimeString("09:30"), first.EndTime)
	assert.Equal(t, domain.ColorConfirmed, first.ColorClass)
	assert.Equal(t, 80.0, first.Top)
	assert.Equal(t, 40.0, first.Height)

	// Отмененная запись остается в сетке со своим цветом
	second := columns[0].Events[1]
	assert.Equal(t, int64(2), second.AppointmentID)
	assert.Equal(t, domain.ColorCancelled, second.ColorClass)
	assert.Equal(t, 240.0, second.Top)
	assert.Equal(t, 80.0, second.Height)
}

func TestBuildEvent_UnknownStatusFallsBackToScheduledColor(t *testing.T) {
	appt := &domain.Appointment{
		ID:              7,
		StartTime:       "08:00",
		DurationMinutes: 30,
		Status:          domain.AppointmentStatus("legacy_status"),
	}

	event, err := buildEvent(appt, testSchedule(), 40)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusColorClass(domain.StatusScheduled), event.ColorClass)
}
