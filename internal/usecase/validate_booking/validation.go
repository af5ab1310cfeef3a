package validate_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	return nil
}

// bookingWindow конвертирует абсолютный интервал в пару TimeString одного дня
// Интервал должен лежать в пределах одних календарных суток; конец ровно в
// полночь следующего дня трактуется как конец суток ("24:00")
func bookingWindow(start, end time.Time) (types.TimeString, types.TimeString, error) {
	if !start.Before(end) {
		return "", "", fmt.Errorf("%w: start must be before end", ErrInvalidWindow)
	}

	startTS := types.NewTimeString(start)

	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return startTS, types.NewTimeString(end), nil
	}

	// Конец суток: полночь следующего дня
	nextMidnight := time.Date(y1, m1, d1, 0, 0, 0, 0, start.Location()).AddDate(0, 0, 1)
	if end.Equal(nextMidnight) {
		return startTS, types.TimeString("24:00"), nil
	}

	return "", "", fmt.Errorf("%w: booking must not span multiple days", ErrInvalidWindow)
}

// validateWithinSchedule проверяет, что интервал целиком помещается
// в одно окно расписания на этот день недели
func validateWithinSchedule(day domain.DayAvailability, start, end types.TimeString) error {
	if !day.IsAvailable {
		return ErrOutsideSchedule
	}

	for _, window := range day.Slots {
		if window.Contains(start, end) {
			return nil
		}
	}

	return ErrOutsideSchedule
}
