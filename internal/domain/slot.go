package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AvailableSlot represents a bookable time slot computed for a single date.
// Ephemeral: produced fresh on each query, never persisted.
type AvailableSlot struct {
	Date                time.Time
	StartTime           types.TimeString
	DurationMinutes     int
	IsAvailable         bool
	ConflictingBookings []int64 // ID активных бронирований, пересекающих слот
}

// HasConflicts returns true if at least one active booking overlaps the slot
func (s *AvailableSlot) HasConflicts() bool {
	return len(s.ConflictingBookings) > 0
}

// EndTime возвращает время окончания слота
func (s *AvailableSlot) EndTime() types.TimeString {
	end, err := s.StartTime.AddMinutes(s.DurationMinutes)
	if err != nil {
		return types.TimeString("24:00")
	}
	return end
}
