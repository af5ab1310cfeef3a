package get_available_slots

import "errors"

var (
	// ErrInvalidGranularity возвращается при неположительной или слишком крупной гранулярности
	ErrInvalidGranularity = errors.New("invalid granularity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
