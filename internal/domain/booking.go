package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusRequested  BookingStatus = "requested"
	StatusAccepted   BookingStatus = "accepted"
	StatusDeclined   BookingStatus = "declined"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusDisputed   BookingStatus = "disputed"
)

// Booking represents a booking owned by the booking service.
// This service only reads bookings to detect conflicts; it never creates them.
type Booking struct {
	ID              int64
	ProviderID      int64
	ClientID        int64
	RequestedDate   time.Time  // Момент, запрошенный клиентом
	ScheduledDate   *time.Time // Момент, подтверждённый провайдером (может отсутствовать)
	DurationMinutes int
	Status          BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies capacity
// (only requested, accepted and in-progress bookings block slots)
func (b *Booking) IsActive() bool {
	for _, s := range ActiveStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// EffectiveStart returns the instant the booking actually occupies.
// A confirmed scheduled time overrides the originally requested one,
// so a rescheduled booking stops blocking its old slot.
func (b *Booking) EffectiveStart() time.Time {
	if b.ScheduledDate != nil {
		return *b.ScheduledDate
	}
	return b.RequestedDate
}

// EffectiveEnd returns the end instant of the occupied interval
func (b *Booking) EffectiveEnd() time.Time {
	return b.EffectiveStart().Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// StartTimeOfDay возвращает время начала бронирования как TimeString ("HH:MM")
func (b *Booking) StartTimeOfDay() types.TimeString {
	return types.NewTimeString(b.EffectiveStart())
}

// IsOnDate проверяет, что бронирование занимает слот в указанную календарную дату
func (b *Booking) IsOnDate(date time.Time) bool {
	y1, m1, d1 := b.EffectiveStart().Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
