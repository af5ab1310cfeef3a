package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	providerClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/providerservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
)

// Service сервис для работы с настройками доступности провайдеров
type Service struct {
	settingsRepo   SettingsRepository
	providerClient ProviderServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса настроек доступности
func NewService(
	settingsRepo SettingsRepository,
	providerClient ProviderServiceClient,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:   settingsRepo,
		providerClient: providerClient,
		logger:         logger,
	}
}

// GetSettings возвращает настройки доступности провайдера
// Публичный метод - доступен всем
// Если провайдер существует, но настройки ещё не создавались, возвращаются настройки по умолчанию
func (s *Service) GetSettings(ctx context.Context, providerID int64) (*models.SettingsResponse, error) {
	s.logger.Info("GetSettings: fetching settings for provider=%d", providerID)

	settings, err := s.settingsRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrSettingsNotFound) {
			// Провайдер мог ещё не настраивать доступность - проверяем его существование
			if _, perr := s.providerClient.GetProvider(ctx, providerID); perr != nil {
				if errors.Is(perr, providerClient.ErrProviderNotFound) {
					s.logger.Warn("GetSettings: provider id=%d not found", providerID)
					return nil, ErrProviderNotFound
				}
				s.logger.Error("GetSettings: failed to get provider id=%d: %v", providerID, perr)
				return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, perr)
			}
			s.logger.Info("GetSettings: no settings for provider=%d, returning defaults", providerID)
			return models.FromDomainSettings(domain.DefaultSettings(providerID)), nil
		}
		s.logger.Error("GetSettings: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSettings: successfully fetched settings for provider=%d", providerID)
	return models.FromDomainSettings(settings), nil
}

// UpdateWeeklySchedule полностью заменяет недельное расписание провайдера
// Доступно только самому провайдеру
func (s *Service) UpdateWeeklySchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateWeeklySchedule: updating schedule for provider=%d by user=%d", req.ProviderID, req.UserID)

	// 1. Проверяем права доступа (только сам провайдер)
	if err := s.checkOwner(ctx, req.ProviderID, req.UserID, "UpdateWeeklySchedule"); err != nil {
		return nil, err
	}

	// 2. Валидируем расписание: окна каждого дня корректны и не пересекаются
	if err := req.Schedule.Validate(); err != nil {
		s.logger.Warn("UpdateWeeklySchedule: invalid schedule for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// 3. Сохраняем расписание (создаём настройки при первом обращении)
	settings, err := s.settingsRepo.UpsertWeeklySchedule(ctx, req.ProviderID, req.Schedule)
	if err != nil {
		s.logger.Error("UpdateWeeklySchedule: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: UpdateWeeklySchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeeklySchedule: successfully updated schedule for provider=%d", req.ProviderID)
	return models.FromDomainSettings(settings), nil
}

// AddVacationPeriod добавляет период отпуска провайдера
// Доступно только самому провайдеру
func (s *Service) AddVacationPeriod(ctx context.Context, req *models.AddVacationRequest) (*models.VacationResponse, error) {
	s.logger.Info("AddVacationPeriod: adding vacation for provider=%d by user=%d", req.ProviderID, req.UserID)

	// 1. Проверяем права доступа (только сам провайдер)
	if err := s.checkOwner(ctx, req.ProviderID, req.UserID, "AddVacationPeriod"); err != nil {
		return nil, err
	}

	// 2. Валидируем период отпуска
	vacation := req.ToDomainVacation()
	if err := vacation.Validate(); err != nil {
		s.logger.Warn("AddVacationPeriod: invalid range for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxVacationReasonLength {
		s.logger.Warn("AddVacationPeriod: reason too long for provider=%d", req.ProviderID)
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxVacationReasonLength)
	}

	// 3. Гарантируем наличие строки настроек, к которой привязывается отпуск
	if err := s.ensureSettingsExist(ctx, req.ProviderID); err != nil {
		return nil, err
	}

	// 4. Сохраняем период отпуска
	created, err := s.settingsRepo.AddVacation(ctx, vacation)
	if err != nil {
		s.logger.Error("AddVacationPeriod: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: AddVacationPeriod - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddVacationPeriod: successfully added vacation id=%s for provider=%d", created.ID, req.ProviderID)
	return models.FromDomainVacation(created), nil
}

// RemoveVacationPeriod удаляет период отпуска провайдера
// Доступно только самому провайдеру
func (s *Service) RemoveVacationPeriod(ctx context.Context, providerID, userID int64, vacationID uuid.UUID) error {
	s.logger.Info("RemoveVacationPeriod: removing vacation id=%s for provider=%d by user=%d", vacationID, providerID, userID)

	// 1. Проверяем права доступа (только сам провайдер)
	if err := s.checkOwner(ctx, providerID, userID, "RemoveVacationPeriod"); err != nil {
		return err
	}

	// 2. Удаляем период отпуска
	if err := s.settingsRepo.RemoveVacation(ctx, providerID, vacationID); err != nil {
		if errors.Is(err, availabilityRepo.ErrVacationNotFound) {
			s.logger.Warn("RemoveVacationPeriod: vacation id=%s not found for provider=%d", vacationID, providerID)
			return ErrVacationNotFound
		}
		s.logger.Error("RemoveVacationPeriod: repository error for provider=%d: %v", providerID, err)
		return fmt.Errorf("%w: RemoveVacationPeriod - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveVacationPeriod: successfully removed vacation id=%s for provider=%d", vacationID, providerID)
	return nil
}

// UpdateBookingRules частично обновляет правила бронирования провайдера
// Доступно только самому провайдеру
// Обновляются только переданные поля
func (s *Service) UpdateBookingRules(ctx context.Context, req *models.UpdateBookingRulesRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateBookingRules: updating rules for provider=%d by user=%d", req.ProviderID, req.UserID)

	// 1. Проверяем права доступа (только сам провайдер)
	if err := s.checkOwner(ctx, req.ProviderID, req.UserID, "UpdateBookingRules"); err != nil {
		return nil, err
	}

	// 2. Валидируем переданные значения
	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		s.logger.Warn("UpdateBookingRules: empty update for provider=%d", req.ProviderID)
		return nil, fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}
	if err := s.validateBookingRules(update); err != nil {
		s.logger.Warn("UpdateBookingRules: validation failed for provider=%d: %v", req.ProviderID, err)
		return nil, err
	}

	// 3. Гарантируем наличие строки настроек
	if err := s.ensureSettingsExist(ctx, req.ProviderID); err != nil {
		return nil, err
	}

	// 4. Обновляем правила бронирования
	settings, err := s.settingsRepo.UpdateBookingRules(ctx, req.ProviderID, update)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrSettingsNotFound) {
			s.logger.Warn("UpdateBookingRules: settings not found for provider=%d", req.ProviderID)
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("UpdateBookingRules: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: UpdateBookingRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBookingRules: successfully updated rules for provider=%d", req.ProviderID)
	return models.FromDomainSettings(settings), nil
}

// Вспомогательные методы

// checkOwner проверяет, что пользователь является владельцем настроек
// и что провайдер существует
func (s *Service) checkOwner(ctx context.Context, providerID, userID int64, op string) error {
	if userID != providerID {
		s.logger.Warn("%s: user=%d is not the owner of provider=%d settings", op, userID, providerID)
		return ErrAccessDenied
	}

	if _, err := s.providerClient.GetProvider(ctx, providerID); err != nil {
		if errors.Is(err, providerClient.ErrProviderNotFound) {
			s.logger.Warn("%s: provider id=%d not found", op, providerID)
			return ErrProviderNotFound
		}
		s.logger.Error("%s: failed to get provider id=%d: %v", op, providerID, err)
		return fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	return nil
}

// ensureSettingsExist создаёт строку настроек по умолчанию при первом обращении провайдера
func (s *Service) ensureSettingsExist(ctx context.Context, providerID int64) error {
	_, err := s.settingsRepo.GetByProviderID(ctx, providerID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, availabilityRepo.ErrSettingsNotFound) {
		s.logger.Error("ensureSettingsExist: repository error for provider=%d: %v", providerID, err)
		return fmt.Errorf("%w: failed to check settings: %v", ErrInternal, err)
	}

	defaults := domain.DefaultSettings(providerID)
	if _, err := s.settingsRepo.UpsertWeeklySchedule(ctx, providerID, defaults.WeeklySchedule); err != nil {
		s.logger.Error("ensureSettingsExist: failed to create defaults for provider=%d: %v", providerID, err)
		return fmt.Errorf("%w: failed to create default settings: %v", ErrInternal, err)
	}

	s.logger.Info("ensureSettingsExist: created default settings for provider=%d", providerID)
	return nil
}

// validateBookingRules валидирует значения правил бронирования
func (s *Service) validateBookingRules(update domain.BookingRulesUpdate) error {
	// Проверяем maxBookingsPerDay
	if update.MaxBookingsPerDay != nil {
		if *update.MaxBookingsPerDay <= 0 || *update.MaxBookingsPerDay > domain.MaxBookingsPerDayLimit {
			return fmt.Errorf("%w: maxBookingsPerDay must be between 1 and %d", ErrInvalidInput, domain.MaxBookingsPerDayLimit)
		}
	}

	// Проверяем bookingNoticeHours
	if update.BookingNoticeHours != nil {
		if *update.BookingNoticeHours < 0 || *update.BookingNoticeHours > domain.MaxBookingNoticeHours {
			return fmt.Errorf("%w: bookingNoticeHours must be between 0 and %d", ErrInvalidInput, domain.MaxBookingNoticeHours)
		}
	}

	return nil
}
