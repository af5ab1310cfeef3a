package availability

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки провайдера не найдены
	ErrSettingsNotFound = errors.New("availability.repository: settings not found")

	// ErrVacationNotFound возвращается, когда период отпуска не найден
	ErrVacationNotFound = errors.New("availability.repository: vacation period not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrEncodeSchedule возвращается при ошибке сериализации недельного расписания
	ErrEncodeSchedule = errors.New("availability.repository: failed to encode weekly schedule")

	// ErrDecodeSchedule возвращается при ошибке десериализации недельного расписания
	ErrDecodeSchedule = errors.New("availability.repository: failed to decode weekly schedule")
)
