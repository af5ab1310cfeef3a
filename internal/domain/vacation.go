package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidVacationRange возвращается, когда конец отпуска раньше начала
var ErrInvalidVacationRange = errors.New("domain: vacation end date is before start date")

// VacationPeriod represents a provider's vacation exclusion range.
// Dates are inclusive on both ends; ranges are allowed to overlap each other.
type VacationPeriod struct {
	ID         uuid.UUID
	ProviderID int64
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string

	CreatedAt time.Time
}

// Validate проверяет инвариант startDate <= endDate
func (v *VacationPeriod) Validate() error {
	if dateOnly(v.EndDate).Before(dateOnly(v.StartDate)) {
		return ErrInvalidVacationRange
	}
	return nil
}

// Covers проверяет, попадает ли календарная дата в период отпуска (включительно)
func (v *VacationPeriod) Covers(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(v.StartDate)) && !d.After(dateOnly(v.EndDate))
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
