package availability

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда провайдер ещё не настраивал доступность
	ErrSettingsNotFound = errors.New("availability settings not found")

	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrVacationNotFound возвращается, когда период отпуска не найден
	ErrVacationNotFound = errors.New("vacation period not found")

	// ErrAccessDenied возвращается, когда настройки пытается изменить не их владелец
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidSchedule возвращается при некорректном недельном расписании
	// (окно со start >= end или пересекающиеся окна одного дня)
	ErrInvalidSchedule = errors.New("invalid weekly schedule")

	// ErrInvalidRange возвращается, когда конец периода отпуска раньше начала
	ErrInvalidRange = errors.New("invalid vacation range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
