package open_booking

import (
	"net/http"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/handlers"
	"github.com/m04kA/HotelPrincipal-Site/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingSession     = "sesión no encontrada"
)

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

// Handle POST /api/v1/booking/open
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking/open - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req OpenBookingRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/open - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.Open(r.Context(), sessionID, req.RoomID)
	if err != nil {
		h.logger.Error("POST /booking/open - Failed to open booking flow: session=%s, room_id=%q, error=%v",
			sessionID, req.RoomID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /booking/open - Booking flow opened: session=%s, flow=%s", sessionID, view.ID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
