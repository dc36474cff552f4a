package get_available_slots

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
	clinic     *clinicservice.Clinic
	clinicErr  error
	service    *clinicservice.Service
	serviceErr error
}

func (f *fakeClinicClient) GetClinic(_ context.Context, _ int64) (*clinicservice.Clinic, error) {
	return f.clinic, f.clinicErr
}

func (f *fakeClinicClient) GetService(_ context.Context, _, _ int64) (*clinicservice.Service, error) {
	return f.service, f.serviceErr
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Хелперы

func testClinic() *clinicservice.Clinic {
	return &clinicservice.Clinic{
		ID:   1,
		Name: "Тестовая клиника",
		Dentists: []clinicservice.Dentist{
			{ID: 10, FullName: "Иванов И.И.", Specialty: "терапевт", IsActive: true},
		},
	}
}

func testService(duration int) *clinicservice.Service {
	return &clinicservice.Service{
		ID:              100,
		ClinicID:        1,
		Title:           "Чистка зубов",
		DurationMinutes: duration,
		IsActive:        true,
	}
}

func newTestUseCase(
	appointmentRepo *fakeAppointmentRepo,
	schedRepo *fakeScheduleRepo,
	clinicClient *fakeClinicClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointmentRepo, schedRepo, clinicClient, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)

	fullWeekSchedule := func() *domain.ClinicSchedule {
		return &domain.ClinicSchedule{
			ID:                  1,
			ClinicID:            1,
			OpeningTime:         "08:00",
			ClosingTime:         "18:00",
			SlotDurationMinutes: 30,
			WorkingDays:         []int{0, 1, 2, 3, 4, 5, 6},
		}
	}

	t.Run("no service selected marks all slots available", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{
			appointments: []*domain.Appointment{
				{StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
			},
		}
		uc := newTestUseCase(
			appointmentRepo,
			&fakeScheduleRepo{schedule: fullWeekSchedule()},
			&fakeClinicClient{clinic: testClinic()},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{ClinicID: 1, Date: tomorrow})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 20)

		// Без выбранной услуги длительность неизвестна - занятость не проверяется
		for _, slot := range resp.Slots {
			assert.True(t, slot.Available)
		}
	})

	t.Run("booked interval blocks overlapping slots", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{
			appointments: []*domain.Appointment{
				{StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusScheduled},
			},
		}
		uc := newTestUseCase(
			appointmentRepo,
			&fakeScheduleRepo{schedule: fullWeekSchedule()},
			&fakeClinicClient{clinic: testClinic(), service: testService(30)},
			now,
		)

		resp, err := uc.Execute(context.Background(), &Request{
			ClinicID:  1,
			ServiceID: ptr.Ptr(int64(100)),
			Date:      tomorrow,
		})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 20)

		byStart := make(map[string]bool, len(resp.Slots))
		for _, slot := range resp.Slots {
			byStart[slot.StartTime.String()] = slot.Available
		}

		assert.False(t, byStart["09:00"])
		assert.True(t, byStart["08:30"]) // заканчивается ровно в 09:00
		assert.True(t, byStart["09:30"]) // начинается ровно в 09:30
	})

	t.Run("missing schedule falls back to defaults", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
			&fakeClinicClient{clinic: testClinic()},
			now,
		)

		// Понедельник: входит в дефолтные рабочие дни
		monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
		require.Equal(t, time.Monday, monday.Weekday())

		resp, err := uc.Execute(context.Background(), &Request{ClinicID: 1, Date: monday.AddDate(0, 0, 7)})
		require.NoError(t, err)

		// Дефолт: 08:00-18:00 по 30 минут
		require.Len(t, resp.Slots, 20)
		assert.Equal(t, "08:00", resp.Slots[0].StartTime.String())
	})

	t.Run("dentist filter is passed to repository", func(t *testing.T) {
		appointmentRepo := &fakeAppointmentRepo{}
		uc := newTestUseCase(
			appointmentRepo,
			&fakeScheduleRepo{schedule: fullWeekSchedule()},
			&fakeClinicClient{clinic: testClinic(), service: testService(30)},
			now,
		)

		_, err := uc.Execute(context.Background(), &Request{
			ClinicID:  1,
			DentistID: ptr.Ptr(int64(10)),
			ServiceID: ptr.Ptr(int64(100)),
			Date:      tomorrow,
		})
		require.NoError(t, err)
		require.NotNil(t, appointmentRepo.lastFilter.DentistID)
		assert.Equal(t, int64(10), *appointmentRepo.lastFilter.DentistID)
		assert.False(t, appointmentRepo.lastFilter.IncludeInactive)
	})

	t.Run("unknown dentist is rejected", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{schedule: fullWeekSchedule()},
			&fakeClinicClient{clinic: testClinic()},
			now,
		)

		_, err := uc.Execute(context.Background(), &Request{
			ClinicID:  1,
			DentistID: ptr.Ptr(int64(999)),
			Date:      tomorrow,
		})
		assert.ErrorIs(t, err, ErrDentistNotFound)
	})

	t.Run("clinic not found", func(t *testing.T) {
		uc := newTestUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{schedule: fullWeekSchedule()},
			&fakeClinicClient{clinicErr: clinicservice.ErrClinicNotFound},
			now,
		)

		_, err := uc.Execute(context.Background(), &Request{ClinicID: 42, Date: tomorrow})
		assert.ErrorIs(t, err, ErrClinicNotFound)
	})

	t.Run("date beyond advance booking limit", func(t *testing.T) {
		schedule := fullWeekSchedule()
		schedule.AdvanceBookingDays = 7

		uc := newTestUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{schedule: schedule},
			&fakeClinicClient{clinic: testClinic()},
			now,
		)

		_, err := uc.Execute(context.Background(), &Request{ClinicID: 1, Date: now.AddDate(0, 0, 30)})
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("invalid schedule config is rejected", func(t *testing.T) {
		schedule := fullWeekSchedule()
		schedule.SlotDurationMinutes = 17 // не из допустимого набора

		uc := newTestUseCase(
			&fakeAppointmentRepo{},
			&fakeScheduleRepo{schedule: schedule},
			&fakeClinicClient{clinic: testClinic()},
			now,
		)

		_, err := uc.Execute(context.Background(), &Request{ClinicID: 1, Date: tomorrow})
		assert.ErrorIs(t, err, ErrInvalidScheduleConfig)
	})
}
