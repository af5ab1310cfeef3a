package validate_booking

import (
	"fmt"
	"time"

	validateBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/validate_booking"
)

// Машиночитаемые коды нарушенных правил
const (
	ReasonProviderUnavailable   = "PROVIDER_UNAVAILABLE"
	ReasonInvalidWindow         = "INVALID_WINDOW"
	ReasonInsufficientNotice    = "INSUFFICIENT_NOTICE"
	ReasonProviderOnVacation    = "PROVIDER_ON_VACATION"
	ReasonOutsideSchedule       = "OUTSIDE_SCHEDULE"
	ReasonSlotConflict          = "SLOT_CONFLICT"
	ReasonDailyCapacityExceeded = "DAILY_CAPACITY_EXCEEDED"
)

// ValidateBookingRequest HTTP request model
type ValidateBookingRequest struct {
	ProviderID int64  `json:"providerId"`
	ClientID   int64  `json:"clientId"`
	StartTime  string `json:"startTime"` // RFC3339
	EndTime    string `json:"endTime"`   // RFC3339
}

// ValidateBookingResponse HTTP response model
// Valid=false сопровождается кодом первого нарушенного правила
type ValidateBookingResponse struct {
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func (r *ValidateBookingRequest) ToUseCaseRequest() (*validateBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %v", err)
	}

	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %v", err)
	}

	return &validateBooking.Request{
		ProviderID: r.ProviderID,
		ClientID:   r.ClientID,
		StartTime:  start,
		EndTime:    end,
	}, nil
}
