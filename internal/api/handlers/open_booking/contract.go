package open_booking

import (
	"context"

	"github.com/m04kA/HotelPrincipal-Site/internal/service/flow/models"
)

type FlowService interface {
	Open(ctx context.Context, sessionID, roomID string) (*models.FlowView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
