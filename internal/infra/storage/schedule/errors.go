package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание клиники не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: clinic schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrDuplicateSchedule возвращается при попытке создать второе расписание для клиники
	ErrDuplicateSchedule = errors.New("schedule.repository: duplicate schedule for clinic")
)
