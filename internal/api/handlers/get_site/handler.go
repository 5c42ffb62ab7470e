package get_site

import (
	"net/http"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/handlers"
)

type Handler struct {
	service SiteService
	logger  Logger
}

func NewHandler(service SiteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/site
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Page(r.Context())
	if err != nil {
		h.logger.Error("GET /site - Failed to build page: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, page)
}
