package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	scheduleRepo "github.com/zubkit/ZK-ScheduleService/internal/infra/storage/schedule"
	clinicClient "github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
	"github.com/zubkit/ZK-ScheduleService/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями клиник
type Service struct {
	scheduleRepo ScheduleRepository
	clinicClient ClinicServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	clinicClient ClinicServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		clinicClient: clinicClient,
		logger:       logger,
	}
}

// GetForClinic получает расписание клиники
// Публичный метод - доступен всем
// Если клиника ещё не настроила расписание, возвращает дефолтное
func (s *Service) GetForClinic(ctx context.Context, clinicID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetForClinic: fetching schedule for clinic=%d", clinicID)

	// Проверяем существование клиники
	if _, err := s.clinicClient.GetClinic(ctx, clinicID); err != nil {
		if errors.Is(err, clinicClient.ErrClinicNotFound) {
			s.logger.Warn("GetForClinic: clinic id=%d not found", clinicID)
			return nil, ErrClinicNotFound
		}
		s.logger.Error("GetForClinic: failed to get clinic id=%d: %v", clinicID, err)
		return nil, fmt.Errorf("%w: failed to get clinic: %v", ErrInternal, err)
	}

	schedule, err := s.scheduleRepo.GetByClinicID(ctx, clinicID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("GetForClinic: clinic=%d has no schedule, returning defaults", clinicID)
			return models.FromDomainSchedule(domain.DefaultClinicSchedule(clinicID), true), nil
		}
		s.logger.Error("GetForClinic: repository error for clinic=%d: %v", clinicID, err)
		return nil, fmt.Errorf("%w: GetForClinic - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetForClinic: successfully fetched schedule id=%d for clinic=%d", schedule.ID, clinicID)
	return models.FromDomainSchedule(schedule, false), nil
}

// Update обновляет расписание клиники (создает, если его ещё нет)
// Доступно только менеджерам клиники
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, clinicID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for clinic=%d by user=%d", clinicID, req.UserID)

	// 1. Получаем клинику для проверки прав доступа
	clinic, err := s.clinicClient.GetClinic(ctx, clinicID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrClinicNotFound) {
			s.logger.Warn("Update: clinic id=%d not found", clinicID)
			return nil, ErrClinicNotFound
		}
		s.logger.Error("Update: failed to get clinic id=%d: %v", clinicID, err)
		return nil, fmt.Errorf("%w: failed to get clinic: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только менеджер клиники)
	if !s.isManager(clinic, req.UserID) {
		s.logger.Warn("Update: user=%d is not a manager of clinic=%d", req.UserID, clinicID)
		return nil, ErrAccessDenied
	}

	// 3. Получаем текущее расписание, при отсутствии начинаем с дефолтного
	schedule, err := s.scheduleRepo.GetByClinicID(ctx, clinicID)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Error("Update: repository error for clinic=%d: %v", clinicID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		schedule = domain.DefaultClinicSchedule(clinicID)
	}

	// 4. Применяем обновления и валидируем результат
	req.ApplyToSchedule(schedule)
	if err := schedule.Validate(); err != nil {
		s.logger.Warn("Update: invalid schedule for clinic=%d: %v", clinicID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Сохраняем расписание
	updated, err := s.scheduleRepo.Upsert(ctx, schedule)
	if err != nil {
		s.logger.Error("Update: repository error for clinic=%d: %v", clinicID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule id=%d for clinic=%d", updated.ID, clinicID)
	return models.FromDomainSchedule(updated, false), nil
}

// Delete удаляет расписание клиники, возвращая её к дефолтным настройкам
// Доступно только менеджерам клиники
func (s *Service) Delete(ctx context.Context, clinicID int64, userID int64) error {
	s.logger.Info("Delete: deleting schedule for clinic=%d by user=%d", clinicID, userID)

	// 1. Получаем клинику для проверки прав доступа
	clinic, err := s.clinicClient.GetClinic(ctx, clinicID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrClinicNotFound) {
			s.logger.Warn("Delete: clinic id=%d not found", clinicID)
			return ErrClinicNotFound
		}
		s.logger.Error("Delete: failed to get clinic id=%d: %v", clinicID, err)
		return fmt.Errorf("%w: failed to get clinic: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только менеджер клиники)
	if !s.isManager(clinic, userID) {
		s.logger.Warn("Delete: user=%d is not a manager of clinic=%d", userID, clinicID)
		return ErrAccessDenied
	}

	// 3. Удаляем расписание
	if err := s.scheduleRepo.Delete(ctx, clinicID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule for clinic=%d not found", clinicID)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for clinic=%d: %v", clinicID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule for clinic=%d", clinicID)
	return nil
}

// Вспомогательные методы

// isManager проверяет, что пользователь является менеджером клиники
func (s *Service) isManager(clinic *clinicClient.Clinic, userID int64) bool {
	for _, managerID := range clinic.ManagerIDs {
		if managerID == userID {
			return true
		}
	}
	return false
}
