package validate_booking

import "time"

// Request модель запроса на валидацию бронирования
type Request struct {
	ProviderID int64     // ID провайдера
	ClientID   int64     // ID клиента (для логирования, не влияет на результат)
	StartTime  time.Time // Начало запрашиваемого интервала
	EndTime    time.Time // Конец запрашиваемого интервала
}

// Response модель ответа валидации
// Возвращается только для допустимого бронирования:
// нарушенное правило приходит ошибкой
type Response struct {
	ProviderID      int64
	ClientID        int64
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Valid           bool
}
