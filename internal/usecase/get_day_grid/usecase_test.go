package get_day_grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	scheduleRepo "github.com/zubkit/ZK-ScheduleService/internal/infra/storage/schedule"
	"github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
	"github.com/zubkit/ZK-ScheduleService/pkg/ptr"
	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// Фейки зависимостей use case

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.ClinicAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByClinicWithFilter(_ context.Context, filter domain.ClinicAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.appointments, f.err
}

type fakeScheduleRepo struct {
	schedule *domain.ClinicSchedule
	err      error
}

func (f *fakeScheduleRepo) GetByClinicID(_ context.Context, _ int64) (*domain.ClinicSchedule, error) {
	return f.schedule, f.err
}

type fakeClinicClient struct {
	clinic    *clinicservice.Clinic
	clinicErr error
}

func (f *fakeClinicClient) GetClinic(_ context.Context, _ int64) (*clinicservice.Clinic, error) {
	return f.clinic, f.clinicErr
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func managedClinic() *clinicservice.Clinic {
	return &clinicservice.Clinic{
		ID:         1,
		Name:       "Тестовая клиника",
		ManagerIDs: []int64{42},
		Dentists: []clinicservice.Dentist{
			{ID: 10, FullName: "Иванов И.И.", Specialty: "терапевт", IsActive: true},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("builds grid for clinic manager", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{
			appointments: []*domain.Appointment{
				{
					ID:              1,
					DentistID:       ptr.Ptr(int64(10)),
					StartTime:       "09:00",
					DurationMinutes: 30,
					Status:          domain.StatusScheduled,
					ServiceTitle:    "Чистка зубов",
				},
			},
		}
		uc := NewUseCase(
			appointmentRepo,
			&fakeScheduleRepo{schedule: testSchedule()},
			&fakeClinicClient{clinic: managedClinic()},
			noopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 42, ClinicID: 1, Date: date})
		require.NoError(t, err)

		assert.Equal(t, DefaultPixelsPerSlot, resp.PixelsPerSlot)
		assert.Equal(t, types.TimeString("08:00"), resp.OpeningTime)
		assert.Equal(t, types.TimeString("18:00"), resp.ClosingTime)
		assert.Len(t, resp.GridLines, 20)
		require.Len(t, resp.Columns, 1)
		require.Len(t, resp.Columns[0].Events, 1)
		assert.Equal(t, 80.0, resp.Columns[0].Events[0].Top)

		// Сетка запрашивает все записи, включая отмененные
		assert.True(t, appointmentRepo.lastFilter.IncludeInactive)
	})

	t.Run("custom pixels per slot scales the grid", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{schedule: testSchedule()},
			&fakeClinicClient{clinic: managedClinic()},
			noopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{
			UserID:        42,
			ClinicID:      1,
			Date:          date,
			PixelsPerSlot: ptr.Ptr(60),
		})
		require.NoError(t, err)

		assert.Equal(t, 60, resp.PixelsPerSlot)
		require.Len(t, resp.GridLines, 20)
		assert.Equal(t, 60.0, resp.GridLines[1].Top)
	})

	t.Run("non manager is denied", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{schedule: testSchedule()},
			&fakeClinicClient{clinic: managedClinic()},
			noopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{UserID: 7, ClinicID: 1, Date: date})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("clinic not found", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{schedule: testSchedule()},
			&fakeClinicClient{clinicErr: clinicservice.ErrClinicNotFound},
			noopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{UserID: 42, ClinicID: 99, Date: date})
		assert.ErrorIs(t, err, ErrClinicNotFound)
	})

	t.Run("missing schedule falls back to defaults", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
			&fakeClinicClient{clinic: managedClinic()},
			noopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{UserID: 42, ClinicID: 1, Date: date})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultOpeningTime, resp.OpeningTime)
		assert.Len(t, resp.GridLines, 20)
	})

	t.Run("invalid pixels per slot is rejected", func(t *testing.T) {
		uc := NewUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{schedule: testSchedule()},
			&fakeClinicClient{clinic: managedClinic()},
			noopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{
			UserID:        42,
			ClinicID:      1,
			Date:          date,
			PixelsPerSlot: ptr.Ptr(0),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
