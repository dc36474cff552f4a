package schedule

import (
	"context"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/internal/integrations/clinicservice"
)

// ScheduleRepository интерфейс репозитория расписаний клиник
type ScheduleRepository interface {
	GetByClinicID(ctx context.Context, clinicID int64) (*domain.ClinicSchedule, error)
	Upsert(ctx context.Context, schedule *domain.ClinicSchedule) (*domain.ClinicSchedule, error)
	Delete(ctx context.Context, clinicID int64) error
}

// ClinicServiceClient интерфейс клиента для ClinicService
type ClinicServiceClient interface {
	GetClinic(ctx context.Context, clinicID int64) (*clinicservice.Clinic, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
