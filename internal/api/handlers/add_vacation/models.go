package add_vacation

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// AddVacationRequest HTTP request model
type AddVacationRequest struct {
	StartDate string  `json:"startDate"` // "2025-07-01"
	EndDate   string  `json:"endDate"`   // "2025-07-14"
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом дат)
func (r *AddVacationRequest) ToServiceRequest(providerID, userID int64) (*models.AddVacationRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.AddVacationRequest{
		UserID:     userID,
		ProviderID: providerID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     r.Reason,
	}, nil
}
