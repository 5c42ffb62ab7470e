package notification

import (
	"context"
	"sync"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
)

// maxPending ограничивает очередь одной сессии: старые уведомления вытесняются
const maxPending = 10

// MemoryInbox очередь flash-уведомлений в памяти процесса
// Каждое уведомление отдается ровно один раз
type MemoryInbox struct {
	mu      sync.Mutex
	pending map[string][]domain.Notification
}

// NewMemoryInbox создает очередь уведомлений в памяти
func NewMemoryInbox() *MemoryInbox {
	return &MemoryInbox{pending: make(map[string][]domain.Notification)}
}

// Notify добавляет уведомление для сессии
func (i *MemoryInbox) Notify(_ context.Context, sessionID string, n domain.Notification) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	queue := append(i.pending[sessionID], n)
	if len(queue) > maxPending {
		queue = queue[len(queue)-maxPending:]
	}
	i.pending[sessionID] = queue
	return nil
}

// Drain возвращает и удаляет все уведомления сессии в порядке добавления
func (i *MemoryInbox) Drain(_ context.Context, sessionID string) ([]domain.Notification, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	queue := i.pending[sessionID]
	delete(i.pending, sessionID)
	return queue, nil
}
