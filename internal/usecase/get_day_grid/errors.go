package get_day_grid

import "errors"

var (
	// ErrClinicNotFound возвращается, когда клиника не найдена
	ErrClinicNotFound = errors.New("get_day_grid: clinic not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером клиники
	ErrAccessDenied = errors.New("get_day_grid: access denied")

	// ErrInvalidScheduleConfig возвращается при некорректной конфигурации расписания
	ErrInvalidScheduleConfig = errors.New("get_day_grid: invalid clinic schedule configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_grid: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_grid: internal error")
)
