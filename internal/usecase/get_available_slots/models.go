package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProviderID         int64     // ID провайдера
	Date               time.Time // Дата для получения слотов (без времени)
	GranularityMinutes int       // Шаг нарезки слотов в минутах
}

// Response модель ответа со списком слотов
type Response struct {
	ProviderID         int64     // ID провайдера
	Date               time.Time // Дата, на которую запрашивались слоты
	GranularityMinutes int       // Шаг нарезки слотов
	Slots              []Slot    // Слоты в порядке возрастания времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime           types.TimeString // Время начала слота (например, "10:00")
	EndTime             types.TimeString // Время окончания слота
	DurationMinutes     int              // Длительность слота в минутах
	IsAvailable         bool             // Доступен ли слот для бронирования
	ConflictingBookings []int64          // ID активных бронирований, пересекающих слот
}
