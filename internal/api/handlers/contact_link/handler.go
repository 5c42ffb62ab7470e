package contact_link

import (
	"net/http"
	"unicode/utf8"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/handlers"
)

const (
	// maxMessageLength ограничение длины предзаполненного сообщения
	maxMessageLength = 500

	msgMessageTooLong = "el mensaje es demasiado largo"
)

type Handler struct {
	links  LinkBuilder
	logger Logger
}

func NewHandler(links LinkBuilder, logger Logger) *Handler {
	return &Handler{
		links:  links,
		logger: logger,
	}
}

// Handle GET /api/v1/contact-link?message=...
// Пустое сообщение заменяется приветствием по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")
	if utf8.RuneCountInString(message) > maxMessageLength {
		h.logger.Warn("GET /contact-link - Message too long: length=%d", utf8.RuneCountInString(message))
		handlers.RespondBadRequest(w, msgMessageTooLong)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ContactLinkResponse{URL: h.links.Link(message)})
}
