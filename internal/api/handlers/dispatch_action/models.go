package dispatch_action

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	"github.com/m04kA/HotelPrincipal-Site/internal/service/flow/models"
)

var (
	errMissingType = errors.New("action type is required")
	errInvalidDate = errors.New("invalid date")
)

// ActionRequest HTTP request model
// Используются только поля, нужные для указанного типа действия
type ActionRequest struct {
	Type  string  `json:"type"`
	Date  *string `json:"date,omitempty"`  // "2025-10-15" для set_check_in / set_check_out
	Extra string  `json:"extra,omitempty"` // для toggle_extra
	Field string  `json:"field,omitempty"` // для set_guest_field
	Value string  `json:"value,omitempty"` // для set_guest_field
}

// ActionErrorResponse ответ на отклоненное действие
// Содержит неизмененное состояние мастера вместе с уведомлениями
type ActionErrorResponse struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Booking *models.FlowView `json:"booking,omitempty"`
}

// ToDomainAction конвертирует HTTP запрос в действие мастера (с парсингом даты)
// Неизвестные типы действий не отклоняются здесь: их отклоняет мастер
func (r *ActionRequest) ToDomainAction() (domain.Action, error) {
	if r.Type == "" {
		return domain.Action{}, errMissingType
	}

	action := domain.Action{
		Type:  domain.ActionType(r.Type),
		Extra: domain.ExtraID(r.Extra),
		Field: domain.GuestField(r.Field),
		Value: r.Value,
	}

	switch action.Type {
	case domain.ActionSetCheckIn, domain.ActionSetCheckOut:
		if r.Date == nil {
			return domain.Action{}, fmt.Errorf("%w: date is required for %s", errInvalidDate, r.Type)
		}
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return domain.Action{}, fmt.Errorf("%w: %v", errInvalidDate, err)
		}
		action.Date = date
	}

	return action, nil
}
