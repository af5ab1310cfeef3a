package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingAt(id int64, start time.Time, durationMinutes int, status BookingStatus) *Booking {
	return &Booking{
		ID:              id,
		ProviderID:      1,
		ClientID:        100,
		RequestedDate:   start,
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

func TestIntervalsOverlap(t *testing.T) {
	// Полуоткрытые интервалы: границы не считаются пересечением
	assert.False(t, IntervalsOverlap("11:00", "11:30", "11:30", "12:00"))
	assert.False(t, IntervalsOverlap("12:00", "12:30", "11:30", "12:00"))

	assert.True(t, IntervalsOverlap("11:20", "11:40", "11:30", "12:00"))
	assert.True(t, IntervalsOverlap("11:00", "13:00", "11:30", "12:00"))
	assert.True(t, IntervalsOverlap("11:30", "12:00", "11:30", "12:00"))
}

func TestConflictingBookingIDs(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	bookings := []*Booking{
		bookingAt(1, day.Add(10*time.Hour), 60, StatusAccepted),             // 10:00-11:00
		bookingAt(2, day.Add(11*time.Hour), 60, StatusCancelled),           // 11:00-12:00, неактивно
		bookingAt(3, day.Add(10*time.Hour+30*time.Minute), 60, StatusRequested), // 10:30-11:30
	}

	ids := ConflictingBookingIDs("10:00", "11:00", bookings)
	assert.Equal(t, []int64{1, 3}, ids)

	// Слот, граничащий с активным бронированием, свободен
	ids = ConflictingBookingIDs("11:30", "12:30", bookings)
	assert.Empty(t, ids)
}

func TestConflictingBookingIDs_ScheduledOverridesRequested(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	// Запрошено на 10:00, но провайдер перенёс на 15:00
	scheduled := day.Add(15 * time.Hour)
	booking := bookingAt(7, day.Add(10*time.Hour), 60, StatusAccepted)
	booking.ScheduledDate = &scheduled

	assert.Empty(t, ConflictingBookingIDs("10:00", "11:00", []*Booking{booking}))
	assert.Equal(t, []int64{7}, ConflictingBookingIDs("15:00", "16:00", []*Booking{booking}))
}

func TestFindConflictingBooking(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	bookings := []*Booking{
		bookingAt(1, day.Add(9*time.Hour), 60, StatusCompleted),
		bookingAt(2, day.Add(9*time.Hour), 60, StatusInProgress),
	}

	conflict := FindConflictingBooking("09:30", "10:30", bookings)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(2), conflict.ID)

	assert.Nil(t, FindConflictingBooking("10:00", "11:00", bookings))
}

func TestCountActiveBookings(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	bookings := []*Booking{
		bookingAt(1, day.Add(9*time.Hour), 60, StatusRequested),
		bookingAt(2, day.Add(10*time.Hour), 60, StatusAccepted),
		bookingAt(3, day.Add(11*time.Hour), 60, StatusInProgress),
		bookingAt(4, day.Add(12*time.Hour), 60, StatusDeclined),
		bookingAt(5, day.Add(13*time.Hour), 60, StatusCompleted),
		bookingAt(6, day.Add(14*time.Hour), 60, StatusCancelled),
		bookingAt(7, day.Add(15*time.Hour), 60, StatusDisputed),
	}

	assert.Equal(t, 3, CountActiveBookings(bookings))
}

func TestConflict_BookingPastMidnightClamped(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	// 23:30 + 60 минут выходит за полночь, интервал обрезается до 24:00
	booking := bookingAt(9, day.Add(23*time.Hour+30*time.Minute), 60, StatusAccepted)

	assert.Equal(t, []int64{9}, ConflictingBookingIDs("23:00", "24:00", []*Booking{booking}))
}
