package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/providerservice"
)

// SettingsRepository интерфейс репозитория настроек доступности
type SettingsRepository interface {
	GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderAvailabilitySettings, error)
	UpsertWeeklySchedule(ctx context.Context, providerID int64, schedule domain.WeeklySchedule) (*domain.ProviderAvailabilitySettings, error)
	UpdateBookingRules(ctx context.Context, providerID int64, update domain.BookingRulesUpdate) (*domain.ProviderAvailabilitySettings, error)
	AddVacation(ctx context.Context, vacation *domain.VacationPeriod) (*domain.VacationPeriod, error)
	RemoveVacation(ctx context.Context, providerID int64, vacationID uuid.UUID) error
	ListVacations(ctx context.Context, providerID int64) ([]domain.VacationPeriod, error)
}

// ProviderServiceClient интерфейс клиента для ProviderService
type ProviderServiceClient interface {
	GetProvider(ctx context.Context, providerID int64) (*providerservice.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
