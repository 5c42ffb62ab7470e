package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/HotelPrincipal-Site/internal/domain"
)

type memoryEntry struct {
	state     domain.FlowState
	expiresAt time.Time
}

// MemoryRepository хранит состояние мастера бронирования в памяти процесса
// Подходит для одного инстанса сервиса; записи истекают через ttl после последнего сохранения
type MemoryRepository struct {
	mu           sync.RWMutex
	entries      map[string]memoryEntry
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewMemoryRepository создает репозиторий в памяти
// ttl <= 0 означает хранение без ограничения по времени
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		entries:      make(map[string]memoryEntry),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
	}
}

// Get возвращает состояние сессии
func (r *MemoryRepository) Get(_ context.Context, sessionID string) (*domain.FlowState, error) {
	r.mu.RLock()
	entry, ok := r.entries[sessionID]
	r.mu.RUnlock()

	if !ok || r.expired(entry) {
		return nil, ErrSessionNotFound
	}

	state := entry.state
	state.Extras = entry.state.Extras.Clone()
	return &state, nil
}

// Save сохраняет состояние сессии и продлевает срок его жизни
func (r *MemoryRepository) Save(_ context.Context, sessionID string, state domain.FlowState) error {
	entry := memoryEntry{state: state}
	entry.state.Extras = state.Extras.Clone()
	if r.ttl > 0 {
		entry.expiresAt = r.timeProvider.Now().Add(r.ttl)
	}

	r.mu.Lock()
	r.entries[sessionID] = entry
	r.mu.Unlock()
	return nil
}

// Delete удаляет состояние сессии
func (r *MemoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
	return nil
}

// Cleanup удаляет истекшие записи, возвращает количество удаленных
func (r *MemoryRepository) Cleanup() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.entries {
		if r.expired(entry) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// RunCleanup периодически удаляет истекшие записи, пока не закрыт stopCh
func (r *MemoryRepository) RunCleanup(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Cleanup()
		case <-stopCh:
			return
		}
	}
}

func (r *MemoryRepository) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !r.timeProvider.Now().Before(entry.expiresAt)
}
