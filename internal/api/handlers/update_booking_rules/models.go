package update_booking_rules

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// UpdateBookingRulesRequest HTTP request model
// Все поля опциональны - обновляются только переданные
type UpdateBookingRulesRequest struct {
	IsActive              *bool `json:"isActive,omitempty"`
	InstantBookingEnabled *bool `json:"instantBookingEnabled,omitempty"`
	MaxBookingsPerDay     *int  `json:"maxBookingsPerDay,omitempty"`
	BookingNoticeHours    *int  `json:"bookingNoticeHours,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRulesRequest) ToServiceRequest(providerID, userID int64) *models.UpdateBookingRulesRequest {
	return &models.UpdateBookingRulesRequest{
		UserID:                userID,
		ProviderID:            providerID,
		IsActive:              r.IsActive,
		InstantBookingEnabled: r.InstantBookingEnabled,
		MaxBookingsPerDay:     r.MaxBookingsPerDay,
		BookingNoticeHours:    r.BookingNoticeHours,
	}
}
