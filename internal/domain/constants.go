package domain

// Default availability settings for a freshly configured provider
const (
	DefaultMaxBookingsPerDay  = 10
	DefaultBookingNoticeHours = 0
	DefaultGranularityMinutes = 60
)

// Business validation constants
const (
	MinGranularityMinutes   = 1
	MaxGranularityMinutes   = 480 // 8 hours
	MaxBookingsPerDayLimit  = 100
	MaxBookingNoticeHours   = 720 // 30 days
	MaxVacationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих слот
// Используется при подсчёте конфликтов и дневного лимита
var ActiveStatuses = []BookingStatus{
	StatusRequested,
	StatusAccepted,
	StatusInProgress,
}

// InactiveStatuses статусы бронирований, не блокирующих новые слоты
var InactiveStatuses = []BookingStatus{
	StatusDeclined,
	StatusCompleted,
	StatusCancelled,
	StatusDisputed,
}
