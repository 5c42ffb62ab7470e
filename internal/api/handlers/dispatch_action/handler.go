package dispatch_action

import (
	"errors"
	"net/http"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/handlers"
	"github.com/m04kA/HotelPrincipal-Site/internal/api/middleware"
	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	"github.com/m04kA/HotelPrincipal-Site/internal/service/flow/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingType        = "el tipo de acción es obligatorio"
	msgInvalidDate        = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgMissingSession     = "sesión no encontrada"
	msgFlowClosed         = "la reserva no está abierta"
	msgSubmissionPending  = "la reserva ya fue enviada"
	msgDatesRequired      = "selecciona las fechas de llegada y salida"
	msgDateInPast         = "la fecha de llegada no puede ser anterior a hoy"
	msgInvalidCheckOut    = "la fecha de salida debe ser posterior a la de llegada"
	msgActionNotAvailable = "acción no disponible en este paso"
	msgUnknownExtra       = "servicio adicional desconocido"
	msgUnknownGuestField  = "campo desconocido"
	msgUnknownCountry     = "país desconocido"
	msgUnknownAction      = "acción desconocida"
	msgValidationFailed   = "acción rechazada"
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

// Handle POST /api/v1/booking/actions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking/actions - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req ActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	action, err := req.ToDomainAction()
	if err != nil {
		h.logger.Warn("POST /booking/actions - Failed to parse action: %v", err)
		if errors.Is(err, errMissingType) {
			handlers.RespondBadRequest(w, msgMissingType)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	view, err := h.service.Dispatch(r.Context(), sessionID, action)
	if err != nil {
		if !domain.IsValidationError(err) {
			h.logger.Error("POST /booking/actions - Failed to apply action: session=%s, type=%s, error=%v",
				sessionID, action.Type, err)
			handlers.RespondInternalError(w)
			return
		}

		status, msg := validationResponse(err)
		h.logger.Warn("POST /booking/actions - Action rejected: session=%s, type=%s, reason=%v",
			sessionID, action.Type, err)
		respondRejected(w, status, msg, view)
		return
	}

	h.logger.Info("POST /booking/actions - Action applied: session=%s, type=%s, step=%s",
		sessionID, action.Type, view.StepName)
	handlers.RespondJSON(w, http.StatusOK, view)
}

// validationResponse сопоставляет отклоненное действие с HTTP статусом и сообщением
// Закрытый или уже отправленный мастер - конфликт состояния (409), остальное - 422
func validationResponse(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrFlowClosed):
		return http.StatusConflict, msgFlowClosed
	case errors.Is(err, domain.ErrSubmissionPending):
		return http.StatusConflict, msgSubmissionPending
	case errors.Is(err, domain.ErrDatesRequired):
		return http.StatusUnprocessableEntity, msgDatesRequired
	case errors.Is(err, domain.ErrGuestInfoRequired):
		return http.StatusUnprocessableEntity, domain.MsgSubmitFailedBody
	case errors.Is(err, domain.ErrDateInPast):
		return http.StatusUnprocessableEntity, msgDateInPast
	case errors.Is(err, domain.ErrInvalidCheckOut):
		return http.StatusUnprocessableEntity, msgInvalidCheckOut
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrActionNotAvailable):
		return http.StatusUnprocessableEntity, msgActionNotAvailable
	case errors.Is(err, domain.ErrUnknownExtra):
		return http.StatusUnprocessableEntity, msgUnknownExtra
	case errors.Is(err, domain.ErrUnknownGuestField):
		return http.StatusUnprocessableEntity, msgUnknownGuestField
	case errors.Is(err, domain.ErrUnknownCountry):
		return http.StatusUnprocessableEntity, msgUnknownCountry
	case errors.Is(err, domain.ErrUnknownAction):
		return http.StatusUnprocessableEntity, msgUnknownAction
	default:
		return http.StatusUnprocessableEntity, msgValidationFailed
	}
}

func respondRejected(w http.ResponseWriter, status int, msg string, view *models.FlowView) {
	handlers.RespondJSON(w, status, ActionErrorResponse{
		Code:    status,
		Message: msg,
		Booking: view,
	})
}
