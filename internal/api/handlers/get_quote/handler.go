package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/handlers"
	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	getQuote "github.com/m04kA/HotelPrincipal-Site/internal/usecase/get_quote"
)

const (
	msgMissingDates = "las fechas de llegada y salida son obligatorias"
	msgInvalidDate  = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgInvalidRooms = "número de habitaciones inválido"
	msgInvalidInput = "datos de la solicitud inválidos"
	msgInvalidDates = "la estancia no es válida: la llegada no puede ser pasada y la salida debe ser posterior"
	msgUnknownExtra = "servicio adicional desconocido"
	msgRoomNotFound = "habitación no encontrada"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/quote
// Query params: checkIn, checkOut (required, YYYY-MM-DD), roomId, rooms, extras (через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	checkIn, checkOut := query.Get("checkIn"), query.Get("checkOut")
	if checkIn == "" || checkOut == "" {
		h.logger.Warn("GET /quote - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	rooms := 0
	if roomsStr := query.Get("rooms"); roomsStr != "" {
		parsed, err := strconv.Atoi(roomsStr)
		if err != nil || parsed < 1 || parsed > domain.MaxRooms {
			h.logger.Warn("GET /quote - Invalid rooms: %q", roomsStr)
			handlers.RespondBadRequest(w, msgInvalidRooms)
			return
		}
		rooms = parsed
	}

	req, err := ToUseCaseRequest(query.Get("roomId"), checkIn, checkOut, rooms, query.Get("extras"))
	if err != nil {
		h.logger.Warn("GET /quote - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrRoomNotFound):
			h.logger.Warn("GET /quote - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getQuote.ErrUnknownExtra):
			h.logger.Warn("GET /quote - Unknown extra: %v", err)
			handlers.RespondUnprocessable(w, msgUnknownExtra)

		case errors.Is(err, getQuote.ErrInvalidDates):
			h.logger.Warn("GET /quote - Invalid dates: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidDates)

		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("GET /quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /quote - Failed to compute quote: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /quote - Quote computed: room=%q, nights=%d, total=%d",
		result.Room.Name, result.Quote.Nights, result.Quote.GrandTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
