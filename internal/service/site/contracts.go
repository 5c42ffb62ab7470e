package site

import (
	"context"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
)

// RoomRepository интерфейс каталога комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// ContactLinks интерфейс построителя ссылок на чат с отелем
type ContactLinks interface {
	Link(message string) string
}

// PriceFormatter интерфейс форматирования цен для отображения
type PriceFormatter interface {
	Format(amount int64) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
