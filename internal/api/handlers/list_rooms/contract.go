package list_rooms

import (
	"context"

	"github.com/m04kA/HotelPrincipal-Site/internal/service/catalog/models"
)

type CatalogService interface {
	ListRooms(ctx context.Context) ([]*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
