package whatsapp

import "errors"

var (
	// ErrInvalidPhone возвращается, когда номер получателя пустой или содержит не только цифры
	ErrInvalidPhone = errors.New("whatsapp: invalid phone number")

	// ErrInvalidBaseURL возвращается при некорректном базовом адресе
	ErrInvalidBaseURL = errors.New("whatsapp: invalid base url")
)
