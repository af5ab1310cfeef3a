package remove_vacation

import (
	"context"

	"github.com/google/uuid"
)

type AvailabilityService interface {
	RemoveVacationPeriod(ctx context.Context, providerID, userID int64, vacationID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
