package get_site

import (
	"context"

	"github.com/m04kA/HotelPrincipal-Site/internal/service/site/models"
)

type SiteService interface {
	Page(ctx context.Context) (*models.Page, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
