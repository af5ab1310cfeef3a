package domain

import "time"

// ProviderAvailabilitySettings holds everything that determines when a
// provider can be booked: the recurring weekly template, vacation exclusions
// and booking rules. One record per provider, mutated only by its owner.
type ProviderAvailabilitySettings struct {
	ProviderID            int64
	WeeklySchedule        WeeklySchedule
	Vacations             []VacationPeriod
	IsActive              bool
	InstantBookingEnabled bool
	MaxBookingsPerDay     int
	BookingNoticeHours    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOnVacation проверяет, закрыта ли дата каким-либо периодом отпуска
// Пересекающиеся периоды допустимы: дата закрыта, если попадает хотя бы в один
func (s *ProviderAvailabilitySettings) IsOnVacation(date time.Time) bool {
	for i := range s.Vacations {
		if s.Vacations[i].Covers(date) {
			return true
		}
	}
	return false
}

// EarliestBookableAt возвращает самый ранний момент, на который можно бронировать
// с учётом bookingNoticeHours
func (s *ProviderAvailabilitySettings) EarliestBookableAt(now time.Time) time.Time {
	return now.Add(time.Duration(s.BookingNoticeHours) * time.Hour)
}

// BookingRulesUpdate частичное обновление правил бронирования
// Обновляются только непустые (not nil) поля
type BookingRulesUpdate struct {
	IsActive              *bool
	InstantBookingEnabled *bool
	MaxBookingsPerDay     *int
	BookingNoticeHours    *int
}

// IsEmpty возвращает true, если ни одно поле не задано
func (u *BookingRulesUpdate) IsEmpty() bool {
	return u.IsActive == nil && u.InstantBookingEnabled == nil &&
		u.MaxBookingsPerDay == nil && u.BookingNoticeHours == nil
}

// ApplyTo применяет обновление к настройкам
func (u *BookingRulesUpdate) ApplyTo(s *ProviderAvailabilitySettings) {
	if u.IsActive != nil {
		s.IsActive = *u.IsActive
	}
	if u.InstantBookingEnabled != nil {
		s.InstantBookingEnabled = *u.InstantBookingEnabled
	}
	if u.MaxBookingsPerDay != nil {
		s.MaxBookingsPerDay = *u.MaxBookingsPerDay
	}
	if u.BookingNoticeHours != nil {
		s.BookingNoticeHours = *u.BookingNoticeHours
	}
}

// DefaultSettings возвращает настройки по умолчанию для провайдера,
// ещё не настраивавшего доступность (все дни закрыты)
func DefaultSettings(providerID int64) *ProviderAvailabilitySettings {
	return &ProviderAvailabilitySettings{
		ProviderID:         providerID,
		IsActive:           true,
		MaxBookingsPerDay:  DefaultMaxBookingsPerDay,
		BookingNoticeHours: DefaultBookingNoticeHours,
	}
}
