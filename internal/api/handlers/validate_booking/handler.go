package validate_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	validateBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/validate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается RFC3339"
)

type Handler struct {
	useCase ValidateBookingUseCase
	logger  Logger
}

func NewHandler(useCase ValidateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
// Вердикт по нарушенному правилу - это не ошибка запроса:
// нарушение отдается как 200 OK с valid=false и кодом правила
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req ValidateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Формируем запрос к use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Нарушенное правило - штатный вердикт
		if reason, ok := ruleReason(err); ok {
			h.logger.Info("POST /bookings/validate - Booking rejected: provider_id=%d, reason=%s",
				req.ProviderID, reason)
			handlers.RespondJSON(w, http.StatusOK, &ValidateBookingResponse{
				Valid:   false,
				Reason:  reason,
				Message: err.Error(),
			})
			return
		}

		switch {
		case errors.Is(err, validateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/validate - Invalid input: provider_id=%d, error=%v",
				req.ProviderID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/validate - Failed to validate booking: provider_id=%d, error=%v",
				req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/validate - Booking is valid: provider_id=%d, client_id=%d",
		result.ProviderID, result.ClientID)
	handlers.RespondJSON(w, http.StatusOK, &ValidateBookingResponse{Valid: true})
}

// ruleReason сопоставляет ошибке правила его машиночитаемый код
func ruleReason(err error) (string, bool) {
	switch {
	case errors.Is(err, validateBooking.ErrProviderUnavailable):
		return ReasonProviderUnavailable, true
	case errors.Is(err, validateBooking.ErrInvalidWindow):
		return ReasonInvalidWindow, true
	case errors.Is(err, validateBooking.ErrInsufficientNotice):
		return ReasonInsufficientNotice, true
	case errors.Is(err, validateBooking.ErrProviderOnVacation):
		return ReasonProviderOnVacation, true
	case errors.Is(err, validateBooking.ErrOutsideSchedule):
		return ReasonOutsideSchedule, true
	case errors.Is(err, validateBooking.ErrSlotConflict):
		return ReasonSlotConflict, true
	case errors.Is(err, validateBooking.ErrDailyCapacityExceeded):
		return ReasonDailyCapacityExceeded, true
	default:
		return "", false
	}
}
