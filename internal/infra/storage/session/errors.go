package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда для сессии нет сохраненного состояния
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrMarshal возвращается при ошибке сериализации состояния
	ErrMarshal = errors.New("session.repository: failed to marshal state")

	// ErrUnmarshal возвращается при ошибке десериализации состояния
	ErrUnmarshal = errors.New("session.repository: failed to unmarshal state")

	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("session.repository: store error")
)
