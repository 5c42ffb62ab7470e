package notification

import "errors"

var (
	// ErrMarshal возвращается при ошибке сериализации уведомления
	ErrMarshal = errors.New("notification.repository: failed to marshal notification")

	// ErrUnmarshal возвращается при ошибке десериализации уведомления
	ErrUnmarshal = errors.New("notification.repository: failed to unmarshal notification")

	// ErrStore возвращается при ошибке обращения к хранилищу
	ErrStore = errors.New("notification.repository: store error")
)
