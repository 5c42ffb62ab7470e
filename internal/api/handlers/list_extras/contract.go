package list_extras

import (
	"context"

	"github.com/m04kA/HotelPrincipal-Site/internal/service/catalog/models"
)

type CatalogService interface {
	ListExtras(ctx context.Context) []models.ExtraResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
