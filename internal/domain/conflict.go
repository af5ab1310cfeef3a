package domain

import (
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Пересечение интервалов считается по полуоткрытой схеме [start, end):
// бронирование, заканчивающееся ровно в начале слота (или начинающееся ровно
// в его конце), НЕ конфликтует. Логика общая для вычисления слотов и
// валидации бронирований - оба usecase используют эти функции.

// IntervalsOverlap проверяет реальное пересечение двух полуоткрытых интервалов
//
// Примеры:
// - Слот 11:30-12:00, бронирование 11:20-11:40 → ЕСТЬ пересечение
// - Слот 11:30-12:00, бронирование 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, бронирование 12:00-12:30 → НЕТ пересечения (граничат)
func IntervalsOverlap(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// ConflictingBookingIDs возвращает ID активных бронирований, пересекающих
// интервал [slotStart, slotEnd). Порядок совпадает с порядком bookings.
func ConflictingBookingIDs(slotStart, slotEnd types.TimeString, bookings []*Booking) []int64 {
	ids := make([]int64, 0)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if IntervalsOverlap(bookingInterval(b, slotStart, slotEnd)) {
			ids = append(ids, b.ID)
		}
	}

	return ids
}

// FindConflictingBooking возвращает первое активное бронирование, пересекающее
// интервал [slotStart, slotEnd), или nil
func FindConflictingBooking(slotStart, slotEnd types.TimeString, bookings []*Booking) *Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if IntervalsOverlap(bookingInterval(b, slotStart, slotEnd)) {
			return b
		}
	}
	return nil
}

// CountActiveBookings подсчитывает активные бронирования в списке
// Используется для проверки дневного лимита maxBookingsPerDay
func CountActiveBookings(bookings []*Booking) int {
	count := 0
	for _, b := range bookings {
		if b.IsActive() {
			count++
		}
	}
	return count
}

// bookingInterval возвращает аргументы для IntervalsOverlap: интервал
// бронирования и проверяемый интервал слота
// Бронирование, выходящее за полночь, обрезается по концу суток
func bookingInterval(b *Booking, slotStart, slotEnd types.TimeString) (types.TimeString, types.TimeString, types.TimeString, types.TimeString) {
	bookingStart := b.StartTimeOfDay()
	bookingEnd, err := bookingStart.AddMinutes(b.DurationMinutes)
	if err != nil {
		bookingEnd = types.TimeString("24:00")
	}
	return bookingStart, bookingEnd, slotStart, slotEnd
}
