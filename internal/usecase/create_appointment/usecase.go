package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	scheduleRepo "github.com/zubkit/ZK-ScheduleService/internal/infra/storage/schedule"
	clinicClient "github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
	patientClient "github.com/zubkit/ZK-ScheduleService/internal/integrations/patientservice"
	"github.com/zubkit/ZK-ScheduleService/pkg/types"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	clinicClient    ClinicServiceClient
	patientClient   PatientServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	clinicClient ClinicServiceClient,
	patientClient PatientServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		clinicClient:    clinicClient,
		patientClient:   patientClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи на приём.
// Проверка занятости слота и вставка записи выполняются в одной
// сериализуемой транзакции с блокировкой записей на день (FOR UPDATE),
// чтобы две конкурентные записи не заняли один и тот же слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: patient=%d, clinic=%d, dentist=%v, service=%d, date=%s, time=%s",
		req.PatientID, req.ClinicID, req.DentistID, req.ServiceID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем клинику
	clinic, err := uc.clinicClient.GetClinic(ctx, req.ClinicID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrClinicNotFound) {
			uc.logger.Warn("CreateAppointment: clinic id=%d not found", req.ClinicID)
			return nil, ErrClinicNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get clinic id=%d: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: failed to get clinic: %v", ErrInternal, err)
	}

	// 4. Если указан врач, проверяем что он работает в клинике
	if req.DentistID != nil {
		if err := validateDentistExists(clinic, *req.DentistID); err != nil {
			uc.logger.Warn("CreateAppointment: dentist id=%d not found in clinic id=%d", *req.DentistID, req.ClinicID)
			return nil, err
		}
	}

	// 5. Получаем услугу (нужны длительность и цена)
	service, err := uc.clinicClient.GetService(ctx, req.ClinicID, req.ServiceID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Получаем пациента с graceful degradation:
	// при недоступности PatientService имя пациента остается пустым
	var patientName *string
	patient, err := uc.patientClient.GetPatientWithGracefulDegradation(ctx, req.PatientID)
	switch {
	case err == nil:
		patientName = &patient.FullName
	case errors.Is(err, patientClient.ErrPatientNotFound):
		uc.logger.Warn("CreateAppointment: patient id=%d not found", req.PatientID)
		return nil, ErrPatientNotFound
	case errors.Is(err, patientClient.ErrServiceDegraded):
		uc.logger.Warn("CreateAppointment: PatientService degraded, creating appointment without patient name")
	default:
		uc.logger.Error("CreateAppointment: failed to get patient id=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
	}

	// 7. Проверка слота и создание записи в сериализуемой транзакции
	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем расписание клиники
		schedule, err := uc.scheduleRepo.GetByClinicID(txCtx, req.ClinicID)
		if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		if schedule == nil {
			schedule = domain.DefaultClinicSchedule(req.ClinicID)
		}
		if err := schedule.Validate(); err != nil {
			return ErrInvalidScheduleConfig
		}

		// 7.2. Валидация даты с учетом конфигурации
		if err := validateDate(req.Date, now, schedule.AdvanceBookingDays); err != nil {
			return err
		}

		// 7.3. Проверяем, что клиника работает в этот день
		if !schedule.IsWorkingDay(req.Date.Weekday()) {
			return ErrClinicClosed
		}

		// 7.4. Проверяем, что время попадает в сетку расписания
		if err := validateSlotOnGrid(req.StartTime, schedule); err != nil {
			return err
		}

		// 7.5. Проверяем ограничение на минимальное время до записи
		if err := validateBookingNotice(req.StartTime, req.Date, now, schedule.MinBookingNoticeMinutes); err != nil {
			return err
		}

		// 7.6. Получаем активные записи на эту дату с блокировкой FOR UPDATE
		filter := domain.ClinicAppointmentsFilter{
			ClinicID:        req.ClinicID,
			DentistID:       req.DentistID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByClinicWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.7. Проверяем пересечение с существующими записями
		if hasOverlap(req.StartTime, service.DurationMinutes, appointments) {
			return ErrSlotNotAvailable
		}

		// 7.8. Создаем запись
		appointment := &domain.Appointment{
			PatientID:       req.PatientID,
			ClinicID:        req.ClinicID,
			DentistID:       req.DentistID,
			ServiceID:       req.ServiceID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusScheduled,
			ServiceTitle:    service.Title,
			ServicePrice:    servicePrice(service),
			PatientName:     patientName,
			Notes:           req.Notes,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateAppointment: slot %s is not available for clinic=%d, date=%s",
				req.StartTime, req.ClinicID, req.Date.Format(domain.DateFormat))
		} else {
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for patient=%d, clinic=%d, date=%s, time=%s",
		created.ID, created.PatientID, created.ClinicID,
		created.AppointmentDate.Format(domain.DateFormat), created.StartTime)

	return &Response{
		ID:              created.ID,
		PatientID:       created.PatientID,
		ClinicID:        created.ClinicID,
		DentistID:       created.DentistID,
		ServiceID:       created.ServiceID,
		AppointmentDate: created.AppointmentDate,
		StartTime:       created.StartTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		ServiceTitle:    created.ServiceTitle,
		ServicePrice:    created.ServicePrice,
		PatientName:     created.PatientName,
		Notes:           created.Notes,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}

// hasOverlap проверяет пересечение нового интервала с активными записями.
// Интервалы считаются открытыми: касание границ (конец одной записи равен
// началу другой) пересечением не является.
func hasOverlap(startTime types.TimeString, durationMinutes int, appointments []*domain.Appointment) bool {
	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		// Интервал выходит за полночь - считаем слот занятым
		return true
	}

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptEnd, err := appt.EndTime()
		if err != nil {
			continue
		}

		if appt.StartTime.IsBefore(slotEnd) && apptEnd.IsAfter(startTime) {
			return true
		}
	}

	return false
}

// servicePrice возвращает цену услуги, 0 если цена не задана
func servicePrice(service *clinicClient.Service) float64 {
	if service.Price == nil {
		return 0
	}
	return *service.Price
}
