package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProviderID         int64           `json:"providerId"`
	Date               string          `json:"date"`
	GranularityMinutes int             `json:"granularityMinutes"`
	Slots              []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime           string  `json:"startTime"`
	EndTime             string  `json:"endTime"`
	DurationMinutes     int     `json:"durationMinutes"`
	IsAvailable         bool    `json:"isAvailable"`
	ConflictingBookings []int64 `json:"conflictingBookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:           slot.StartTime.String(),
			EndTime:             slot.EndTime.String(),
			DurationMinutes:     slot.DurationMinutes,
			IsAvailable:         slot.IsAvailable,
			ConflictingBookings: slot.ConflictingBookings,
		}
	}

	return &AvailableSlotsResponse{
		ProviderID:         resp.ProviderID,
		Date:               resp.Date.Format(domain.DateFormat),
		GranularityMinutes: resp.GranularityMinutes,
		Slots:              slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(providerID int64, dateStr string, granularity int) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProviderID:         providerID,
		Date:               date,
		GranularityMinutes: granularity,
	}, nil
}
