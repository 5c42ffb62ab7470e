package list_extras

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

// Handle GET /api/v1/extras
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	extras := h.service.ListExtras(r.Context())
	handlers.RespondJSON(w, http.StatusOK, extras)
}
