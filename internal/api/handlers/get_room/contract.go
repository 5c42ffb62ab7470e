package get_room

import (
	"context"

	"github.com/m04kA/HotelPrincipal-Site/internal/service/catalog/models"
)

type CatalogService interface {
	GetRoomDetails(ctx context.Context, id string) (*models.RoomDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
