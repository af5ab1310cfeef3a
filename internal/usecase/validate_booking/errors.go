package validate_booking

import "errors"

// Ошибки правил перечислены в порядке их проверки: возвращается первая
// сработавшая, последующие правила не проверяются
var (
	// ErrProviderUnavailable провайдер не принимает бронирования
	ErrProviderUnavailable = errors.New("provider is unavailable")

	// ErrInvalidWindow некорректный интервал бронирования
	ErrInvalidWindow = errors.New("invalid booking window")

	// ErrInsufficientNotice бронирование слишком близко к текущему моменту
	ErrInsufficientNotice = errors.New("insufficient booking notice")

	// ErrProviderOnVacation дата закрыта периодом отпуска
	ErrProviderOnVacation = errors.New("provider is on vacation")

	// ErrOutsideSchedule интервал не помещается ни в одно окно расписания
	ErrOutsideSchedule = errors.New("booking is outside working schedule")

	// ErrSlotConflict интервал пересекается с активным бронированием
	ErrSlotConflict = errors.New("slot conflicts with existing booking")

	// ErrDailyCapacityExceeded достигнут дневной лимит бронирований
	ErrDailyCapacityExceeded = errors.New("daily booking capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
