package get_day_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	scheduleRepo "github.com/zubkit/ZK-ScheduleService/internal/infra/storage/schedule"
	clinicClient "github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
)

// UseCase use case для построения дневной сетки расписания клиники
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	clinicClient    ClinicServiceClient
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
		logger:          logger,
	}
}

// Execute строит дневную сетку: колонки по врачам клиники со
// спозиционированными событиями и линии сетки на границах слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayGrid: user=%d, clinic=%d, date=%s",
		req.UserID, req.ClinicID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayGrid: validation failed: %v", err)
		return nil, err
	}

	pixelsPerSlot := DefaultPixelsPerSlot
	if req.PixelsPerSlot != nil {
		pixelsPerSlot = *req.PixelsPerSlot
	}

	// 2. Получаем клинику
	clinic, err := uc.clinicClient.GetClinic(ctx, req.ClinicID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrClinicNotFound) {
			uc.logger.Warn("GetDayGrid: clinic id=%d not found", req.ClinicID)
			return nil, ErrClinicNotFound
		}
		uc.logger.Error("GetDayGrid: failed to get clinic id=%d: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: failed to get clinic: %v", ErrInternal, err)
	}

	// 3. Проверяем, что пользователь является менеджером клиники
	if !isClinicManager(clinic, req.UserID) {
		uc.logger.Warn("GetDayGrid: user id=%d is not a manager of clinic id=%d", req.UserID, req.ClinicID)
		return nil, ErrAccessDenied
	}

	// 4. Получаем расписание клиники
	schedule, err := uc.scheduleRepo.GetByClinicID(ctx, req.ClinicID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetDayGrid: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if schedule == nil {
		schedule = domain.DefaultClinicSchedule(req.ClinicID)
		uc.logger.Info("GetDayGrid: using default schedule for clinic=%d", req.ClinicID)
	}
	if err := schedule.Validate(); err != nil {
		uc.logger.Error("GetDayGrid: invalid schedule for clinic=%d: %v", req.ClinicID, err)
		return nil, ErrInvalidScheduleConfig
	}

	// 5. Получаем все записи на дату, включая отмененные:
	// внутренняя сетка показывает их своим цветом
	filter := domain.ClinicAppointmentsFilter{
		ClinicID:        req.ClinicID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: true,
	}

	appointments, err := uc.appointmentRepo.GetByClinicWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDayGrid: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Строим линии сетки
	gridLines, err := buildGridLines(schedule, pixelsPerSlot)
	if err != nil {
		uc.logger.Error("GetDayGrid: failed to build grid lines: %v", err)
		return nil, fmt.Errorf("%w: failed to build grid lines: %v", ErrInternal, err)
	}

	// 7. Раскладываем записи по колонкам врачей
	columns, err := buildColumns(clinic.Dentists, appointments, schedule, pixelsPerSlot)
	if err != nil {
		uc.logger.Error("GetDayGrid: failed to build columns: %v", err)
		return nil, fmt.Errorf("%w: failed to build columns: %v", ErrInternal, err)
	}

	uc.logger.Info("GetDayGrid: built grid for clinic=%d, date=%s: %d columns, %d appointments, %d grid lines",
		req.ClinicID, req.Date.Format(domain.DateFormat), len(columns), len(appointments), len(gridLines))

	return &Response{
		Date:                req.Date,
		ClinicID:            req.ClinicID,
		OpeningTime:         schedule.OpeningTime,
		ClosingTime:         schedule.ClosingTime,
		SlotDurationMinutes: schedule.SlotDurationMinutes,
		PixelsPerSlot:       pixelsPerSlot,
		GridLines:           gridLines,
		Columns:             columns,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ClinicID <= 0 {
		return fmt.Errorf("%w: clinicID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.PixelsPerSlot != nil && *req.PixelsPerSlot <= 0 {
		return fmt.Errorf("%w: pixelsPerSlot must be positive", ErrInvalidInput)
	}

	return nil
}

// isClinicManager проверяет, что пользователь входит в список менеджеров клиники
func isClinicManager(clinic *clinicClient.Clinic, userID int64) bool {
	for _, id := range clinic.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
