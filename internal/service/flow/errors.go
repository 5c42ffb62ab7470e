package flow

import "errors"

// Ошибки валидации действий мастера возвращаются как есть (domain.ErrValidation и производные)
var (
	// ErrSessionRequired возвращается, когда запрос пришел без идентификатора сессии
	ErrSessionRequired = errors.New("session id is required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
