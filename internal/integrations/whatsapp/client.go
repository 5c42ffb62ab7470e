package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// Сообщения по умолчанию для ссылок на чат
const (
	DefaultGreeting   = "Hola, me interesa hacer una reserva en Hotel Principal. ¿Podrían ayudarme?"
	roomInquiryFormat = "Hola, me interesa la %s del Hotel Principal. ¿Podrían darme más información?"
)

// LinkBuilder строит ссылки на чат с отелем с предзаполненным сообщением
type LinkBuilder struct {
	baseURL string
	phone   string
}

// NewLinkBuilder создает построитель ссылок
// phone - номер в международном формате без "+" (например 525512345678)
func NewLinkBuilder(baseURL, phone string) (*LinkBuilder, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	if phone == "" || strings.IndexFunc(phone, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}

	return &LinkBuilder{
		baseURL: strings.TrimRight(baseURL, "/"),
		phone:   phone,
	}, nil
}

// Link возвращает ссылку вида https://wa.me/<phone>?text=<message>
// Пустое сообщение заменяется приветствием по умолчанию
func (b *LinkBuilder) Link(message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultGreeting
	}
	return fmt.Sprintf("%s/%s?text=%s", b.baseURL, b.phone, encodeText(message))
}

// RoomInquiryLink ссылка с вопросом о конкретной комнате
func (b *LinkBuilder) RoomInquiryLink(roomName string) string {
	return b.Link(fmt.Sprintf(roomInquiryFormat, roomName))
}

// encodeText кодирует текст как encodeURIComponent: пробел -> %20
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
