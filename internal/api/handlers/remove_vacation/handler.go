package remove_vacation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
	msgInvalidVacationID = "некорректный ID периода отпуска"
	msgVacationNotFound  = "период отпуска не найден"
	msgProviderNotFound  = "провайдер не найден"
	msgForbidden         = "доступ запрещен"
	msgUnauthorized      = "требуется аутентификация"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/providers/{providerId}/vacations/{vacationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем providerId из URL
	providerIDStr := vars["providerId"]
	providerID, err := strconv.ParseInt(providerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /providers/{id}/vacations/{id} - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Извлекаем vacationId из URL
	vacationIDStr := vars["vacationId"]
	vacationID, err := uuid.Parse(vacationIDStr)
	if err != nil {
		h.logger.Warn("DELETE /providers/{id}/vacations/{id} - Invalid vacation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVacationID)
		return
	}

	// Извлекаем ID пользователя из контекста (положен Auth middleware)
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /providers/{id}/vacations/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Удаляем период отпуска (сервис сам проверит права владельца)
	if err := h.service.RemoveVacationPeriod(r.Context(), providerID, userID, vacationID); err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("DELETE /providers/{id}/vacations/{id} - Access denied: provider_id=%d, user_id=%d",
				providerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrProviderNotFound):
			h.logger.Warn("DELETE /providers/{id}/vacations/{id} - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, availability.ErrVacationNotFound):
			h.logger.Warn("DELETE /providers/{id}/vacations/{id} - Vacation not found: provider_id=%d, vacation_id=%s",
				providerID, vacationID)
			handlers.RespondNotFound(w, msgVacationNotFound)

		default:
			h.logger.Error("DELETE /providers/{id}/vacations/{id} - Failed to remove vacation: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /providers/{id}/vacations/{id} - Vacation removed successfully: provider_id=%d, vacation_id=%s",
		providerID, vacationID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
