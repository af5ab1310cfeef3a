package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository read-only доступ к бронированиям
// Таблица bookings принадлежит BookingService; этот сервис только читает её
// для поиска конфликтов и подсчёта дневного лимита
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByProviderOnDate получает активные бронирования провайдера,
// занимающие слоты в указанную календарную дату
//
// Момент бронирования - COALESCE(scheduled_date, requested_date):
// подтверждённое время имеет приоритет над запрошенным.
// Возвращаются только статусы requested/accepted/in_progress.
//
// Внутри транзакции добавляется FOR UPDATE: снапшот бронирований
// блокируется на время проверки доступности слота.
func (r *Repository) GetActiveByProviderOnDate(ctx context.Context, providerID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"provider_id",
		"client_id",
		"requested_date",
		"scheduled_date",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		Where(squirrel.Expr("COALESCE(scheduled_date, requested_date) >= ?", dayStart)).
		Where(squirrel.Expr("COALESCE(scheduled_date, requested_date) < ?", dayEnd)).
		OrderBy("COALESCE(scheduled_date, requested_date) ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByProviderOnDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByProviderOnDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var scheduledDate sql.NullTime
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ProviderID,
			&booking.ClientID,
			&booking.RequestedDate,
			&scheduledDate,
			&booking.DurationMinutes,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if scheduledDate.Valid {
			booking.ScheduledDate = &scheduledDate.Time
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
