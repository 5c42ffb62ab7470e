package close_booking

import (
	"net/http"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/handlers"
	"github.com/m04kA/HotelPrincipal-Site/internal/api/middleware"
)

const msgMissingSession = "sesión no encontrada"

type Handler struct {
	service FlowService
	logger  Logger
}

func NewHandler(service FlowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/close
// Закрытие удаляет все введенные данные, повторный вызов безопасен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking/close - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	if err := h.service.Close(r.Context(), sessionID); err != nil {
		h.logger.Error("POST /booking/close - Failed to close booking flow: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /booking/close - Booking flow closed: session=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
