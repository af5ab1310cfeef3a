package validate_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
)

// UseCase use case для валидации бронирования перед его созданием
// Ничего не создаёт и не изменяет - только выносит вердикт
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case валидации бронирования
// Правила проверяются строго по порядку, возвращается первое нарушенное.
// Настройки и бронирования читаются в сериализуемой транзакции,
// чтобы вердикт выносился по согласованному снимку данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateBooking: provider=%d, client=%d, start=%s, end=%s",
		req.ProviderID, req.ClientID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем правила в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Правило 1: провайдер принимает бронирования
		settings, err := uc.settingsRepo.GetByProviderID(txCtx, req.ProviderID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrSettingsNotFound) {
				uc.logger.Warn("ValidateBooking: no settings for provider=%d", req.ProviderID)
				return ErrProviderUnavailable
			}
			uc.logger.Error("ValidateBooking: failed to get settings for provider=%d: %v", req.ProviderID, err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		if !settings.IsActive {
			uc.logger.Warn("ValidateBooking: provider=%d is inactive", req.ProviderID)
			return ErrProviderUnavailable
		}

		// 3.2. Правило 2: корректный интервал в пределах одних суток
		startTS, endTS, err := bookingWindow(req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Warn("ValidateBooking: invalid window: %v", err)
			return err
		}

		// 3.3. Правило 3: минимальное время до бронирования
		if req.StartTime.Before(settings.EarliestBookableAt(now)) {
			uc.logger.Warn("ValidateBooking: insufficient notice for provider=%d (required %d hours)",
				req.ProviderID, settings.BookingNoticeHours)
			return ErrInsufficientNotice
		}

		// 3.4. Правило 4: дата не закрыта отпуском
		if settings.IsOnVacation(req.StartTime) {
			uc.logger.Warn("ValidateBooking: provider=%d is on vacation on %s",
				req.ProviderID, req.StartTime.Format(domain.DateFormat))
			return ErrProviderOnVacation
		}

		// 3.5. Правило 5: интервал помещается в окно расписания
		day := settings.WeeklySchedule.DayFor(req.StartTime)
		if err := validateWithinSchedule(day, startTS, endTS); err != nil {
			uc.logger.Warn("ValidateBooking: interval %s-%s is outside schedule for provider=%d",
				startTS, endTS, req.ProviderID)
			return err
		}

		// 3.6. Получаем активные бронирования на эту дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByProviderOnDate(txCtx, req.ProviderID, req.StartTime)
		if err != nil {
			uc.logger.Error("ValidateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.7. Правило 6: нет пересечения с активным бронированием
		if conflict := domain.FindConflictingBooking(startTS, endTS, bookings); conflict != nil {
			uc.logger.Warn("ValidateBooking: conflict with booking id=%d for provider=%d",
				conflict.ID, req.ProviderID)
			return fmt.Errorf("%w: booking id=%d", ErrSlotConflict, conflict.ID)
		}

		// 3.8. Правило 7: дневной лимит не достигнут
		activeCount := domain.CountActiveBookings(bookings)
		if activeCount >= settings.MaxBookingsPerDay {
			uc.logger.Warn("ValidateBooking: daily cap reached for provider=%d (%d/%d)",
				req.ProviderID, activeCount, settings.MaxBookingsPerDay)
			return ErrDailyCapacityExceeded
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ValidateBooking: booking is valid for provider=%d, start=%s",
		req.ProviderID, req.StartTime.Format(time.RFC3339))

	return &Response{
		ProviderID:      req.ProviderID,
		ClientID:        req.ClientID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: int(req.EndTime.Sub(req.StartTime) / time.Minute),
		Valid:           true,
	}, nil
}
