package list_rooms

import (
	"net/http"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(rooms))
	handlers.RespondJSON(w, http.StatusOK, rooms)
}
