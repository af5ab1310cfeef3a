package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий настроек доступности провайдеров
// Таблицы: provider_availability_settings (одна строка на провайдера,
// недельное расписание в JSONB) и vacation_periods
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProviderID получает настройки провайдера вместе с периодами отпусков
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderAvailabilitySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"provider_id",
		"weekly_schedule",
		"is_active",
		"instant_booking_enabled",
		"max_bookings_per_day",
		"booking_notice_hours",
		"created_at",
		"updated_at",
	).
		From("provider_availability_settings").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.ProviderAvailabilitySettings
	var scheduleRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ProviderID,
		&scheduleRaw,
		&settings.IsActive,
		&settings.InstantBookingEnabled,
		&settings.MaxBookingsPerDay,
		&settings.BookingNoticeHours,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - scan settings: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(scheduleRaw, &settings.WeeklySchedule); err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID: %v", ErrDecodeSchedule, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	vacations, err := r.ListVacations(ctx, providerID)
	if err != nil {
		return nil, err
	}
	settings.Vacations = vacations

	return &settings, nil
}

// UpsertWeeklySchedule сохраняет недельное расписание провайдера
// Первая запись создает строку настроек с дефолтными правилами бронирования,
// повторная - заменяет расписание целиком (обновление всегда полем целиком, не дельтой)
func (r *Repository) UpsertWeeklySchedule(ctx context.Context, providerID int64, schedule domain.WeeklySchedule) (*domain.ProviderAvailabilitySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	scheduleRaw, err := json.Marshal(schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeeklySchedule: %v", ErrEncodeSchedule, err)
	}

	query, args, err := psqlbuilder.Insert("provider_availability_settings").
		Columns(
			"provider_id",
			"weekly_schedule",
			"is_active",
			"instant_booking_enabled",
			"max_bookings_per_day",
			"booking_notice_hours",
		).
		Values(
			providerID,
			scheduleRaw,
			true,
			false,
			domain.DefaultMaxBookingsPerDay,
			domain.DefaultBookingNoticeHours,
		).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE
			SET weekly_schedule = EXCLUDED.weekly_schedule, updated_at = NOW()
			RETURNING provider_id, is_active, instant_booking_enabled, max_bookings_per_day, booking_notice_hours, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeeklySchedule - build upsert query: %v", ErrBuildQuery, err)
	}

	settings := domain.ProviderAvailabilitySettings{WeeklySchedule: schedule}
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ProviderID,
		&settings.IsActive,
		&settings.InstantBookingEnabled,
		&settings.MaxBookingsPerDay,
		&settings.BookingNoticeHours,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeeklySchedule - execute upsert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// UpdateBookingRules частично обновляет правила бронирования провайдера
// Обновляются только заданные (not nil) поля
func (r *Repository) UpdateBookingRules(ctx context.Context, providerID int64, update domain.BookingRulesUpdate) (*domain.ProviderAvailabilitySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("provider_availability_settings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"provider_id": providerID})

	if update.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *update.IsActive)
	}
	if update.InstantBookingEnabled != nil {
		updateBuilder = updateBuilder.Set("instant_booking_enabled", *update.InstantBookingEnabled)
	}
	if update.MaxBookingsPerDay != nil {
		updateBuilder = updateBuilder.Set("max_bookings_per_day", *update.MaxBookingsPerDay)
	}
	if update.BookingNoticeHours != nil {
		updateBuilder = updateBuilder.Set("booking_notice_hours", *update.BookingNoticeHours)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBookingRules - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBookingRules - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBookingRules - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return nil, ErrSettingsNotFound
	}

	return r.GetByProviderID(ctx, providerID)
}

// AddVacation добавляет период отпуска провайдеру
func (r *Repository) AddVacation(ctx context.Context, vacation *domain.VacationPeriod) (*domain.VacationPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if vacation.ID == uuid.Nil {
		vacation.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("vacation_periods").
		Columns(
			"id",
			"provider_id",
			"start_date",
			"end_date",
			"reason",
		).
		Values(
			vacation.ID,
			vacation.ProviderID,
			vacation.StartDate,
			vacation.EndDate,
			vacation.Reason,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddVacation - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: AddVacation - execute insert: %v", ErrExecQuery, err)
	}

	vacation.CreatedAt = createdAt.Time

	return vacation, nil
}

// RemoveVacation удаляет период отпуска провайдера
// provider_id в условии гарантирует, что чужой отпуск удалить нельзя
func (r *Repository) RemoveVacation(ctx context.Context, providerID int64, vacationID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("vacation_periods").
		Where(squirrel.Eq{"id": vacationID, "provider_id": providerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveVacation - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveVacation - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveVacation - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVacationNotFound
	}

	return nil
}

// ListVacations получает все периоды отпусков провайдера
func (r *Repository) ListVacations(ctx context.Context, providerID int64) ([]domain.VacationPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"provider_id",
		"start_date",
		"end_date",
		"reason",
		"created_at",
	).
		From("vacation_periods").
		Where(squirrel.Eq{"provider_id": providerID}).
		OrderBy("start_date ASC, created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListVacations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVacations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vacations := make([]domain.VacationPeriod, 0)

	for rows.Next() {
		var vacation domain.VacationPeriod
		var createdAt sql.NullTime

		err := rows.Scan(
			&vacation.ID,
			&vacation.ProviderID,
			&vacation.StartDate,
			&vacation.EndDate,
			&vacation.Reason,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListVacations - scan row: %v", ErrScanRow, err)
		}

		vacation.CreatedAt = createdAt.Time
		vacations = append(vacations, vacation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVacations - rows error: %v", ErrScanRow, err)
	}

	return vacations, nil
}
