package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/zubkit/ZK-ScheduleService/internal/domain"
	"github.com/zubkit/ZK-ScheduleService/pkg/dbmetrics"
	"github.com/zubkit/ZK-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с расписаниями клиник
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает расписание клиники
// На клинику допускается ровно одно расписание (unique constraint по clinic_id)
func (r *Repository) Create(ctx context.Context, schedule *domain.ClinicSchedule) (*domain.ClinicSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clinic_schedules").
		Columns(
			"clinic_id",
			"opening_time",
			"closing_time",
			"slot_duration_minutes",
			"working_days",
			"min_booking_notice_minutes",
			"advance_booking_days",
		).
		Values(
			schedule.ClinicID,
			schedule.OpeningTime,
			schedule.ClosingTime,
			schedule.SlotDurationMinutes,
			pq.Array(intsToInt64(schedule.WorkingDays)),
			schedule.MinBookingNoticeMinutes,
			schedule.AdvanceBookingDays,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSchedule
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// GetByClinicID получает расписание клиники
func (r *Repository) GetByClinicID(ctx context.Context, clinicID int64) (*domain.ClinicSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"clinic_id",
		"opening_time",
		"closing_time",
		"slot_duration_minutes",
		"working_days",
		"min_booking_notice_minutes",
		"advance_booking_days",
		"created_at",
		"updated_at",
	).
		From("clinic_schedules").
		Where(squirrel.Eq{"clinic_id": clinicID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByClinicID - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.ClinicSchedule
	var workingDays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.ClinicID,
		&schedule.OpeningTime,
		&schedule.ClosingTime,
		&schedule.SlotDurationMinutes,
		&workingDays,
		&schedule.MinBookingNoticeMinutes,
		&schedule.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClinicID - scan schedule: %v", ErrScanRow, err)
	}

	schedule.WorkingDays = int64sToInts(workingDays)
	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// Upsert создает расписание клиники либо обновляет существующее
// Используется в PUT-обработчике обновления расписания
func (r *Repository) Upsert(ctx context.Context, schedule *domain.ClinicSchedule) (*domain.ClinicSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clinic_schedules").
		Columns(
			"clinic_id",
			"opening_time",
			"closing_time",
			"slot_duration_minutes",
			"working_days",
			"min_booking_notice_minutes",
			"advance_booking_days",
		).
		Values(
			schedule.ClinicID,
			schedule.OpeningTime,
			schedule.ClosingTime,
			schedule.SlotDurationMinutes,
			pq.Array(intsToInt64(schedule.WorkingDays)),
			schedule.MinBookingNoticeMinutes,
			schedule.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (clinic_id) DO UPDATE SET
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			working_days = EXCLUDED.working_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// Delete удаляет расписание клиники (клиника возвращается к дефолтным настройкам)
func (r *Repository) Delete(ctx context.Context, clinicID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("clinic_schedules").
		Where(squirrel.Eq{"clinic_id": clinicID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// isUniqueViolation проверяет, что ошибка - нарушение unique constraint Postgres
func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

func intsToInt64(src []int) []int64 {
	dst := make([]int64, len(src))
	for i, v := range src {
		dst[i] = int64(v)
	}
	return dst
}

func int64sToInts(src []int64) []int {
	dst := make([]int, len(src))
	for i, v := range src {
		dst[i] = int(v)
	}
	return dst
}
