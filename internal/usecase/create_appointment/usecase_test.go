package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
	"github.com/zubkit/ZK-ScheduleService/internal/integrations/patientservice"
	"github.com/zubkit/ZK-ScheduleService/pkg/ptr"
	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// Фейки зависимостей use case

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	createErr    error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *appt
	stored.ID = 1
	stored.CreatedAt = time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeAppointmentRepo) GetByClinicWithFilter(_ context.Context, _ domain.ClinicAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
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

type fakePatientClient struct {
	patient *patientservice.Patient
	err     error
}

func (f *fakePatientClient) GetPatientWithGracefulDegradation(_ context.Context, _ int64) (*patientservice.Patient, error) {
	return f.patient, f.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

type testDeps struct {
	appointmentRepo *fakeAppointmentRepo
	scheduleRepo    *fakeScheduleRepo
	clinicClient    *fakeClinicClient
	patientClient   *fakePatientClient
}

func defaultDeps() *testDeps {
	return &testDeps{
		appointmentRepo: &fakeAppointmentRepo{},
		scheduleRepo: &fakeScheduleRepo{
			schedule: &domain.ClinicSchedule{
				ID:                  1,
				ClinicID:            1,
				OpeningTime:         "08:00",
				ClosingTime:         "18:00",
				SlotDurationMinutes: 30,
				WorkingDays:         []int{1, 2, 3, 4, 5},
			},
		},
		clinicClient: &fakeClinicClient{
			clinic: &clinicservice.Clinic{
				ID:   1,
				Name: "Тестовая клиника",
				Dentists: []clinicservice.Dentist{
					{ID: 10, FullName: "Иванов И.И.", Specialty: "терапевт", IsActive: true},
				},
			},
			service: &clinicservice.Service{
				ID:              100,
				ClinicID:        1,
				Title:           "Чистка зубов",
				DurationMinutes: 30,
				Price:           ptr.Ptr(1500.0),
				IsActive:        true,
			},
		},
		patientClient: &fakePatientClient{
			patient: &patientservice.Patient{ID: 5, FullName: "Петров П.П."},
		},
	}
}

func newTestUseCase(deps *testDeps, now time.Time) *UseCase {
	uc := NewUseCase(
		deps.appointmentRepo,
		deps.scheduleRepo,
		deps.clinicClient,
		deps.patientClient,
		fakeTxManager{},
		noopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	// Понедельник, рабочий день
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	// Вторник
	bookingDate := now.AddDate(0, 0, 1)

	validRequest := func() *Request {
		return &Request{
			PatientID: 5,
			ClinicID:  1,
			DentistID: ptr.Ptr(int64(10)),
			ServiceID: 100,
			Date:      bookingDate,
			StartTime: "10:00",
		}
	}

	t.Run("success creates scheduled appointment with denormalized fields", func(t *testing.T) {
		deps := defaultDeps()
		uc := newTestUseCase(deps, now)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, string(domain.StatusScheduled), resp.Status)
		assert.Equal(t, 30, resp.DurationMinutes)
		assert.Equal(t, "Чистка зубов", resp.ServiceTitle)
		assert.Equal(t, 1500.0, resp.ServicePrice)
		require.NotNil(t, resp.PatientName)
		assert.Equal(t, "Петров П.П.", *resp.PatientName)

		require.NotNil(t, deps.appointmentRepo.created)
		assert.Equal(t, domain.StatusScheduled, deps.appointmentRepo.created.Status)
	})

	t.Run("overlapping appointment is rejected", func(t *testing.T) {
		deps := defaultDeps()
		deps.appointmentRepo.appointments = []*domain.Appointment{
			{StartTime: "09:45", DurationMinutes: 30, Status: domain.StatusConfirmed},
		}
		uc := newTestUseCase(deps, now)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Nil(t, deps.appointmentRepo.created)
	})

	t.Run("boundary touch does not block the slot", func(t *testing.T) {
		deps := defaultDeps()
		deps.appointmentRepo.appointments = []*domain.Appointment{
			{StartTime: "09:30", DurationMinutes: 30, Status: domain.StatusConfirmed},
			{StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusScheduled},
		}
		uc := newTestUseCase(deps, now)

		// 10:00-10:30 касается обеих записей только границами
		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	})

	t.Run("cancelled appointment does not block the slot", func(t *testing.T) {
		deps := defaultDeps()
		deps.appointmentRepo.appointments = []*domain.Appointment{
			{StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusCancelledByPatient},
		}
		uc := newTestUseCase(deps, now)

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	})

	t.Run("time off the slot grid is rejected", func(t *testing.T) {
		deps := defaultDeps()
		uc := newTestUseCase(deps, now)

		req := validRequest()
		req.StartTime = "10:10"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("time outside working hours is rejected", func(t *testing.T) {
		deps := defaultDeps()
		uc := newTestUseCase(deps, now)

		req := validRequest()
		req.StartTime = "07:30"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("non working day is rejected", func(t *testing.T) {
		deps := defaultDeps()
		uc := newTestUseCase(deps, now)

		req := validRequest()
		// Воскресенье
		req.Date = time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrClinicClosed)
	})

	t.Run("same day booking respects minimum notice", func(t *testing.T) {
		deps := defaultDeps()
		deps.scheduleRepo.schedule.MinBookingNoticeMinutes = 60
		uc := newTestUseCase(deps, now)

		req := validRequest()
		req.Date = now
		req.StartTime = "10:30" // порог now + 60 минут = 11:00

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		deps := defaultDeps()
		uc := newTestUseCase(deps, now)

		req := validRequest()
		req.Date = now.AddDate(0, 0, -1)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("dentist from another clinic is rejected", func(t *testing.T) {
		deps := defaultDeps()
		uc := newTestUseCase(deps, now)

		req := validRequest()
		req.DentistID = ptr.Ptr(int64(999))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDentistNotFound)
	})

	t.Run("degraded patient service leaves patient name empty", func(t *testing.T) {
		deps := defaultDeps()
		deps.patientClient.patient = nil
		deps.patientClient.err = patientservice.ErrServiceDegraded
		uc := newTestUseCase(deps, now)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Nil(t, resp.PatientName)

		require.NotNil(t, deps.appointmentRepo.created)
		assert.Nil(t, deps.appointmentRepo.created.PatientName)
	})

	t.Run("unknown patient is rejected", func(t *testing.T) {
		deps := defaultDeps()
		deps.patientClient.patient = nil
		deps.patientClient.err = patientservice.ErrPatientNotFound
		uc := newTestUseCase(deps, now)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrPatientNotFound)
	})

	t.Run("service without price is stored with zero price", func(t *testing.T) {
		deps := defaultDeps()
		deps.clinicClient.service.Price = nil
		uc := newTestUseCase(deps, now)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, 0.0, resp.ServicePrice)
	})
}

func TestHasOverlap(t *testing.T) {
	booked := []*domain.Appointment{
		{StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	tests := []struct {
		name      string
		startTime string
		duration  int
		want      bool
	}{
		{name: "exact match", startTime: "09:00", duration: 30, want: true},
		{name: "overlap from before", startTime: "08:45", duration: 30, want: true},
		{name: "overlap from inside", startTime: "09:15", duration: 30, want: true},
		{name: "ends at appointment start", startTime: "08:30", duration: 30, want: false},
		{name: "starts at appointment end", startTime: "09:30", duration: 30, want: false},
		{name: "swallows appointment", startTime: "08:00", duration: 180, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasOverlap(types.TimeString(tt.startTime), tt.duration, booked)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasOverlap_PastMidnight(t *testing.T) {
	// Интервал, выходящий за полночь, считается занятым
	assert.True(t, hasOverlap("23:45", 30, nil))
}
