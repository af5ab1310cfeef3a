package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// UpdateScheduleRequest запрос на полную замену недельного расписания
type UpdateScheduleRequest struct {
	UserID     int64
	ProviderID int64
	Schedule   domain.WeeklySchedule
}

// AddVacationRequest запрос на добавление периода отпуска
type AddVacationRequest struct {
	UserID     int64
	ProviderID int64
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
}

// ToDomainVacation конвертирует запрос в domain модель
func (r *AddVacationRequest) ToDomainVacation() *domain.VacationPeriod {
	return &domain.VacationPeriod{
		ProviderID: r.ProviderID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Reason:     r.Reason,
	}
}

// UpdateBookingRulesRequest запрос на частичное обновление правил бронирования
// Все поля опциональны - обновляются только переданные значения
type UpdateBookingRulesRequest struct {
	UserID                int64
	ProviderID            int64
	IsActive              *bool
	InstantBookingEnabled *bool
	MaxBookingsPerDay     *int
	BookingNoticeHours    *int
}

// ToDomainUpdate конвертирует запрос в domain модель частичного обновления
func (r *UpdateBookingRulesRequest) ToDomainUpdate() domain.BookingRulesUpdate {
	return domain.BookingRulesUpdate{
		IsActive:              r.IsActive,
		InstantBookingEnabled: r.InstantBookingEnabled,
		MaxBookingsPerDay:     r.MaxBookingsPerDay,
		BookingNoticeHours:    r.BookingNoticeHours,
	}
}

// Response модели

// SettingsResponse ответ с настройками доступности провайдера
type SettingsResponse struct {
	ProviderID            int64                 `json:"providerId"`
	WeeklySchedule        domain.WeeklySchedule `json:"weeklySchedule"`
	Vacations             []VacationResponse    `json:"vacations"`
	IsActive              bool                  `json:"isActive"`
	InstantBookingEnabled bool                  `json:"instantBookingEnabled"`
	MaxBookingsPerDay     int                   `json:"maxBookingsPerDay"`
	BookingNoticeHours    int                   `json:"bookingNoticeHours"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
}

// VacationResponse ответ с данными периода отпуска
type VacationResponse struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"startDate"` // "2025-07-01"
	EndDate   string    `json:"endDate"`   // "2025-07-14"
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ProviderAvailabilitySettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	vacations := make([]VacationResponse, len(s.Vacations))
	for i := range s.Vacations {
		vacations[i] = *FromDomainVacation(&s.Vacations[i])
	}

	return &SettingsResponse{
		ProviderID:            s.ProviderID,
		WeeklySchedule:        s.WeeklySchedule,
		Vacations:             vacations,
		IsActive:              s.IsActive,
		InstantBookingEnabled: s.InstantBookingEnabled,
		MaxBookingsPerDay:     s.MaxBookingsPerDay,
		BookingNoticeHours:    s.BookingNoticeHours,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

// FromDomainVacation конвертирует domain модель в DTO
func FromDomainVacation(v *domain.VacationPeriod) *VacationResponse {
	if v == nil {
		return nil
	}

	return &VacationResponse{
		ID:        v.ID,
		StartDate: v.StartDate.Format(domain.DateFormat),
		EndDate:   v.EndDate.Format(domain.DateFormat),
		Reason:    v.Reason,
		CreatedAt: v.CreatedAt,
	}
}
