package get_quote

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDates возвращается при некорректном периоде проживания
	ErrInvalidDates = errors.New("invalid stay dates")

	// ErrUnknownExtra возвращается при неизвестной дополнительной услуге
	ErrUnknownExtra = errors.New("unknown extra")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
