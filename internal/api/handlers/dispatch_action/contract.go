package dispatch_action

import (
	"context"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
	"github.com/m04kA/HotelPrincipal-Site/internal/service/flow/models"
)

type FlowService interface {
	Dispatch(ctx context.Context, sessionID string, action domain.Action) (*models.FlowView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
