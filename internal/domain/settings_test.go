package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func TestVacationPeriod_Validate(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	valid := VacationPeriod{StartDate: start, EndDate: start.AddDate(0, 0, 13)}
	assert.NoError(t, valid.Validate())

	// Однодневный отпуск допустим
	oneDay := VacationPeriod{StartDate: start, EndDate: start}
	assert.NoError(t, oneDay.Validate())

	inverted := VacationPeriod{StartDate: start, EndDate: start.AddDate(0, 0, -1)}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidVacationRange)
}

func TestVacationPeriod_Covers(t *testing.T) {
	vacation := VacationPeriod{
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
	}

	// Границы включительно
	assert.True(t, vacation.Covers(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, vacation.Covers(time.Date(2026, 7, 14, 23, 0, 0, 0, time.UTC)))
	assert.True(t, vacation.Covers(time.Date(2026, 7, 7, 12, 0, 0, 0, time.UTC)))

	assert.False(t, vacation.Covers(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, vacation.Covers(time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)))
}

func TestSettings_IsOnVacation_OverlappingPeriods(t *testing.T) {
	settings := &ProviderAvailabilitySettings{
		Vacations: []VacationPeriod{
			{StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 10)},
			{StartDate: date(2026, 7, 8), EndDate: date(2026, 7, 20)},
		},
	}

	assert.True(t, settings.IsOnVacation(date(2026, 7, 9)))
	assert.True(t, settings.IsOnVacation(date(2026, 7, 15)))
	assert.False(t, settings.IsOnVacation(date(2026, 7, 21)))
}

func TestSettings_EarliestBookableAt(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	settings := &ProviderAvailabilitySettings{BookingNoticeHours: 24}
	assert.Equal(t, now.Add(24*time.Hour), settings.EarliestBookableAt(now))

	noNotice := &ProviderAvailabilitySettings{BookingNoticeHours: 0}
	assert.Equal(t, now, noNotice.EarliestBookableAt(now))
}

func TestBookingRulesUpdate_ApplyTo(t *testing.T) {
	settings := &ProviderAvailabilitySettings{
		IsActive:              true,
		InstantBookingEnabled: false,
		MaxBookingsPerDay:     10,
		BookingNoticeHours:    0,
	}

	update := BookingRulesUpdate{
		IsActive:           ptr.Ptr(false),
		BookingNoticeHours: ptr.Ptr(48),
	}
	update.ApplyTo(settings)

	assert.False(t, settings.IsActive)
	assert.Equal(t, 48, settings.BookingNoticeHours)
	// Незаданные поля не меняются
	assert.False(t, settings.InstantBookingEnabled)
	assert.Equal(t, 10, settings.MaxBookingsPerDay)
}

func TestBookingRulesUpdate_IsEmpty(t *testing.T) {
	assert.True(t, (&BookingRulesUpdate{}).IsEmpty())
	assert.False(t, (&BookingRulesUpdate{MaxBookingsPerDay: ptr.Ptr(5)}).IsEmpty())
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
