package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	scheduleRepo "github.com/zubkit/ZK-ScheduleService/internal/infra/storage/schedule"
	clinicClient "github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
)

// UseCase use case для получения доступных слотов для записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	clinicClient    ClinicServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	clinicClient ClinicServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		clinicClient:    clinicClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: clinic=%d, dentist=%v, service=%v, date=%s",
		req.ClinicID, req.DentistID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем клинику
	clinic, err := uc.clinicClient.GetClinic(ctx, req.ClinicID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrClinicNotFound) {
			uc.logger.Warn("GetAvailableSlots: clinic id=%d not found", req.ClinicID)
			return nil, ErrClinicNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get clinic id=%d: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: failed to get clinic: %v", ErrInternal, err)
	}

	// 4. Если указан врач, проверяем что он работает в клинике
	if req.DentistID != nil {
		if err := validateDentistExists(clinic, *req.DentistID); err != nil {
			uc.logger.Warn("GetAvailableSlots: dentist id=%d not found in clinic id=%d", *req.DentistID, req.ClinicID)
			return nil, err
		}
	}

	// 5. Если указана услуга, получаем её (нужна длительность для проверки пересечений)
	var service *clinicClient.Service
	if req.ServiceID != nil {
		service, err = uc.clinicClient.GetService(ctx, req.ClinicID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, clinicClient.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	// 6. Получаем расписание клиники
	schedule, err := uc.scheduleRepo.GetByClinicID(ctx, req.ClinicID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// Если расписание не настроено, используем дефолтные значения
	if schedule == nil {
		schedule = domain.DefaultClinicSchedule(req.ClinicID)
		uc.logger.Info("GetAvailableSlots: using default schedule for clinic=%d", req.ClinicID)
	} else {
		uc.logger.Info("GetAvailableSlots: using schedule id=%d", schedule.ID)
	}

	// 7. Проверяем инварианты расписания
	if err := schedule.Validate(); err != nil {
		uc.logger.Error("GetAvailableSlots: invalid schedule for clinic=%d: %v", req.ClinicID, err)
		return nil, ErrInvalidScheduleConfig
	}

	// 8. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, now, schedule.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 9. Генерируем временные слоты
	timeSlots, err := generateTimeSlots(schedule, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 10. Если услуга ещё не выбрана, длительность неизвестна - показываем все
	// слоты доступными (реальная проверка отложена до выбора услуги)
	if service == nil {
		uc.logger.Info("GetAvailableSlots: no service selected, returning %d slots as available for clinic=%d",
			len(timeSlots), req.ClinicID)
		return &Response{
			Date:      req.Date,
			ClinicID:  req.ClinicID,
			DentistID: req.DentistID,
			ServiceID: req.ServiceID,
			Slots:     annotateAllAvailable(timeSlots, schedule.SlotDurationMinutes),
		}, nil
	}

	// 11. Получаем все активные записи на эту дату (и врача, если указан)
	filter := domain.ClinicAppointmentsFilter{
		ClinicID:        req.ClinicID,
		DentistID:       req.DentistID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные записи
	}

	appointments, err := uc.appointmentRepo.GetByClinicWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 12. Помечаем слоты признаком доступности с учетом длительности услуги
	slots := annotateAvailability(timeSlots, service.DurationMinutes, appointments)

	uc.logger.Info("GetAvailableSlots: generated %d slots for clinic=%d, dentist=%v, service=%d, date=%s",
		len(slots), req.ClinicID, req.DentistID, *req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ClinicID:  req.ClinicID,
		DentistID: req.DentistID,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}
