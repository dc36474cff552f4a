package get_day_grid

import (
	"context"

	getDayGrid "github.com/zubkit/ZK-ScheduleService/internal/usecase/get_day_grid"
)

type GetDayGridUseCase interface {
	Execute(ctx context.Context, req *getDayGrid.Request) (*getDayGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
