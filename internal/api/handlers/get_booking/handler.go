package get_booking

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

// Handle GET /api/v1/booking
// Возвращает состояние мастера, расчет стоимости и непрочитанные уведомления
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /booking - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	view, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /booking - Failed to get booking flow: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
