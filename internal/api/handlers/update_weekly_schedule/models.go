package update_weekly_schedule

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	WeeklySchedule domain.WeeklySchedule `json:"weeklySchedule"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(providerID, userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:     userID,
		ProviderID: providerID,
		Schedule:   r.WeeklySchedule,
	}
}
