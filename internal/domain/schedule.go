package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	// ErrInvalidWindow возвращается для окна с start >= end или некорректным форматом времени
	ErrInvalidWindow = errors.New("domain: invalid time window")

	// ErrOverlappingWindows возвращается, когда окна одного дня пересекаются
	ErrOverlappingWindows = errors.New("domain: overlapping time windows")
)

// Weekday день недели (закрытое перечисление, понедельник - первый)
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// String returns the weekday name used in the JSON schedule representation
func (d Weekday) String() string {
	switch d {
	case Monday:
		return "monday"
	case Tuesday:
		return "tuesday"
	case Wednesday:
		return "wednesday"
	case Thursday:
		return "thursday"
	case Friday:
		return "friday"
	case Saturday:
		return "saturday"
	case Sunday:
		return "sunday"
	default:
		return "unknown"
	}
}

// Weekdays все дни недели в порядке следования
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf конвертирует time.Weekday в доменный Weekday
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// TimeWindow represents a continuous availability window within a single day.
// Invariant: Start < End.
type TimeWindow struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Validate проверяет формат времени и инвариант start < end
func (w TimeWindow) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidWindow, err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidWindow, err)
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidWindow, w.Start, w.End)
	}
	return nil
}

// Overlaps проверяет пересечение двух окон
// Полуоткрытые интервалы [start, end): окна, граничащие ровно по краю, НЕ пересекаются
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.IsBefore(other.End) && other.Start.IsBefore(w.End)
}

// Contains проверяет, что интервал [start, end) целиком лежит внутри окна
func (w TimeWindow) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.Start) && !end.IsAfter(w.End)
}

// String returns the "HH:MM-HH:MM" representation.
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s-%s", w.Start, w.End)
}

// DayAvailability расписание одного дня недели
type DayAvailability struct {
	IsAvailable bool         `json:"isAvailable"`
	Slots       []TimeWindow `json:"slots"`
}

// Validate проверяет все окна дня: формат, start < end, попарное непересечение
// Ошибка называет конкретную пару пересекающихся окон
func (d DayAvailability) Validate() error {
	for _, w := range d.Slots {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	for i := 0; i < len(d.Slots); i++ {
		for j := i + 1; j < len(d.Slots); j++ {
			if d.Slots[i].Overlaps(d.Slots[j]) {
				return fmt.Errorf("%w: %s and %s", ErrOverlappingWindows, d.Slots[i], d.Slots[j])
			}
		}
	}

	return nil
}

// SortedSlots возвращает окна дня, отсортированные по времени начала
func (d DayAvailability) SortedSlots() []TimeWindow {
	sorted := make([]TimeWindow, len(d.Slots))
	copy(sorted, d.Slots)

	// Окон в дне единицы, сортировка вставками достаточна
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Start.IsBefore(sorted[j-1].Start); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	return sorted
}

// WeeklySchedule недельный шаблон доступности провайдера
type WeeklySchedule struct {
	Monday    DayAvailability `json:"monday"`
	Tuesday   DayAvailability `json:"tuesday"`
	Wednesday DayAvailability `json:"wednesday"`
	Thursday  DayAvailability `json:"thursday"`
	Friday    DayAvailability `json:"friday"`
	Saturday  DayAvailability `json:"saturday"`
	Sunday    DayAvailability `json:"sunday"`
}

// Day возвращает расписание на указанный день недели
func (s *WeeklySchedule) Day(d Weekday) DayAvailability {
	switch d {
	case Monday:
		return s.Monday
	case Tuesday:
		return s.Tuesday
	case Wednesday:
		return s.Wednesday
	case Thursday:
		return s.Thursday
	case Friday:
		return s.Friday
	case Saturday:
		return s.Saturday
	default:
		return s.Sunday
	}
}

// DayFor возвращает расписание на день недели указанной даты
func (s *WeeklySchedule) DayFor(date time.Time) DayAvailability {
	return s.Day(WeekdayOf(date))
}

// Validate проверяет все дни недели
// Ошибка называет день и пару пересекающихся окон
func (s *WeeklySchedule) Validate() error {
	for _, d := range Weekdays {
		if err := s.Day(d).Validate(); err != nil {
			return fmt.Errorf("%s: %w", d, err)
		}
	}
	return nil
}
