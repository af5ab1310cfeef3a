package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
)

// UseCase use case для вычисления доступных слотов провайдера на дату
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case вычисления доступных слотов
// Слоты не хранятся в БД - вычисляются заново на каждый запрос
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, date=%s, granularity=%d",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.GranularityMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки доступности провайдера
	settings, err := uc.settingsRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrSettingsNotFound) {
			// Провайдер ещё не настраивал доступность - расписание пустое, слотов нет
			uc.logger.Info("GetAvailableSlots: no settings for provider=%d, using defaults", req.ProviderID)
			settings = domain.DefaultSettings(req.ProviderID)
		} else {
			uc.logger.Error("GetAvailableSlots: failed to get settings for provider=%d: %v", req.ProviderID, err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
	}

	// 4. Провайдер приостановил приём бронирований - слотов нет
	if !settings.IsActive {
		uc.logger.Info("GetAvailableSlots: provider=%d is inactive", req.ProviderID)
		return uc.emptyResponse(req), nil
	}

	// 5. Дата в прошлом - слотов нет
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 6. Дата закрыта отпуском - слотов нет
	if settings.IsOnVacation(req.Date) {
		uc.logger.Info("GetAvailableSlots: provider=%d is on vacation on %s",
			req.ProviderID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 7. День недели закрыт в расписании - слотов нет
	day := settings.WeeklySchedule.DayFor(req.Date)
	if !day.IsAvailable || len(day.Slots) == 0 {
		uc.logger.Info("GetAvailableSlots: provider=%d is not working on %s",
			req.ProviderID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req), nil
	}

	// 8. Нарезаем окна дня на слоты с шагом granularity
	starts := generateSlotStarts(day, req.GranularityMinutes)

	// 9. Получаем активные бронирования провайдера на эту дату
	bookings, err := uc.bookingRepo.GetActiveByProviderOnDate(ctx, req.ProviderID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 10. Помечаем конфликты с активными бронированиями
	slots := buildSlots(starts, req.GranularityMinutes, req.Date, bookings)

	// 11. Дневной лимит: при его достижении все слоты дня недоступны
	activeCount := domain.CountActiveBookings(bookings)
	if activeCount >= settings.MaxBookingsPerDay {
		uc.logger.Info("GetAvailableSlots: daily cap reached for provider=%d (%d/%d)",
			req.ProviderID, activeCount, settings.MaxBookingsPerDay)
		markAllUnavailable(slots)
	}

	// 12. Минимальное время до бронирования: слишком близкие слоты недоступны
	applyNoticeWindow(slots, req.Date, settings.EarliestBookableAt(now))

	uc.logger.Info("GetAvailableSlots: computed %d slots for provider=%d, date=%s",
		len(slots), req.ProviderID, req.Date.Format(domain.DateFormat))

	return &Response{
		ProviderID:         req.ProviderID,
		Date:               req.Date,
		GranularityMinutes: req.GranularityMinutes,
		Slots:              slots,
	}, nil
}

// emptyResponse возвращает ответ без слотов
func (uc *UseCase) emptyResponse(req *Request) *Response {
	return &Response{
		ProviderID:         req.ProviderID,
		Date:               req.Date,
		GranularityMinutes: req.GranularityMinutes,
		Slots:              []Slot{},
	}
}
