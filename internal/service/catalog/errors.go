package catalog

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidRoomID возвращается при пустом идентификаторе комнаты
	ErrInvalidRoomID = errors.New("invalid room id")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
