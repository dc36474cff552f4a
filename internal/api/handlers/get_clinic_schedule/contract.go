package get_clinic_schedule

import (
	"context"

	"github.com/zubkit/ZK-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetForClinic(ctx context.Context, clinicID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
