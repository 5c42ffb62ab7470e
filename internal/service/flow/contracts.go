package flow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
)

// SessionRepository интерфейс хранилища состояния мастера бронирования
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.FlowState, error)
	Save(ctx context.Context, sessionID string, state domain.FlowState) error
	Delete(ctx context.Context, sessionID string) error
}

// RoomRepository интерфейс каталога комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// NotificationInbox интерфейс очереди flash-уведомлений посетителя
type NotificationInbox interface {
	Notify(ctx context.Context, sessionID string, n domain.Notification) error
	Drain(ctx context.Context, sessionID string) ([]domain.Notification, error)
}

// ResetScheduler интерфейс планировщика отложенного сброса мастера
type ResetScheduler interface {
	Schedule(key string, delay time.Duration, fn func())
	Cancel(key string) bool
}

// FlowMetrics интерфейс метрик мастера бронирования
type FlowMetrics interface {
	FlowOpened(roomID string)
	FlowTransition(from, to string)
	FlowValidationFailed(action string)
	FlowSubmitted(grandTotal int64)
	FlowReset(reason string)
}

// IDGenerator интерфейс генерации идентификаторов открытого мастера
type IDGenerator interface {
	NewID() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator генерирует идентификаторы UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NoopMetrics используется, когда метрики выключены
type NoopMetrics struct{}

func (NoopMetrics) FlowOpened(string)             {}
func (NoopMetrics) FlowTransition(string, string) {}
func (NoopMetrics) FlowValidationFailed(string)   {}
func (NoopMetrics) FlowSubmitted(int64)           {}
func (NoopMetrics) FlowReset(string)              {}
