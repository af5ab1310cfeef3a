package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// generateSlotStarts нарезает окна дня на слоты с фиксированным шагом granularity
// Окна обходятся в порядке возрастания времени начала, внутри окна слоты идут
// подряд от его начала. Неполный хвост окна (остаток короче granularity)
// отбрасывается. Окна не пересекаются (гарантируется валидацией расписания),
// поэтому результат отсортирован по возрастанию
func generateSlotStarts(day domain.DayAvailability, granularity int) []types.TimeString {
	starts := make([]types.TimeString, 0)

	for _, window := range day.SortedSlots() {
		current := window.Start

		for current.IsBefore(window.End) {
			slotEnd, err := current.AddMinutes(granularity)
			if err != nil {
				// Слот вышел за полночь - хвост отбрасываем
				break
			}
			if slotEnd.IsAfter(window.End) {
				// Неполный хвост окна не становится слотом
				break
			}

			starts = append(starts, current)
			current = slotEnd
		}
	}

	return starts
}

// buildSlots собирает слоты с отметками о конфликтах
// Для каждого слота собираются ID активных бронирований, пересекающих его
// интервал [start, end). Слот с конфликтами помечается недоступным
func buildSlots(
	starts []types.TimeString,
	granularity int,
	date time.Time,
	bookings []*domain.Booking,
) []Slot {
	result := make([]Slot, len(starts))

	for i, start := range starts {
		end, err := start.AddMinutes(granularity)
		if err != nil {
			end = types.TimeString("24:00")
		}

		conflicts := domain.ConflictingBookingIDs(start, end, bookings)

		result[i] = Slot{
			StartTime:           start,
			EndTime:             end,
			DurationMinutes:     granularity,
			IsAvailable:         len(conflicts) == 0,
			ConflictingBookings: conflicts,
		}
	}

	return result
}

// markAllUnavailable помечает все слоты недоступными
// Используется при достижении дневного лимита бронирований:
// отметки о конфликтах при этом сохраняются
func markAllUnavailable(slots []Slot) {
	for i := range slots {
		slots[i].IsAvailable = false
	}
}

// applyNoticeWindow помечает недоступными слоты, начинающиеся раньше
// минимально допустимого момента бронирования
// Слоты не удаляются из ответа - клиент видит сетку целиком
func applyNoticeWindow(slots []Slot, date time.Time, earliestBookable time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	for i := range slots {
		slotStart := dayStart.Add(time.Duration(slots[i].StartTime.Minutes()) * time.Minute)
		if slotStart.Before(earliestBookable) {
			slots[i].IsAvailable = false
		}
	}
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}
