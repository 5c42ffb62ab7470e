package deferred

import (
	"sync"
	"time"
)

// Scheduler откладывает выполнение функций по ключу
// На один ключ может быть запланирована только одна задача: повторный Schedule заменяет предыдущую
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewScheduler создает планировщик отложенных задач
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[string]*time.Timer)}
}

// Schedule планирует выполнение fn через delay
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.timers[key]; ok {
		prev.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.mu.Lock()
		current, ok := s.timers[key]
		if !ok || current != t {
			// задача отменена или заменена, пока таймер ждал блокировку
			s.mu.Unlock()
			return
		}
		delete(s.timers, key)
		s.mu.Unlock()

		fn()
	})
	s.timers[key] = t
}

// Cancel отменяет задачу по ключу
// Возвращает true, если задача была запланирована и еще не началась
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[key]
	if !ok {
		return false
	}
	delete(s.timers, key)
	t.Stop()
	return true
}

// Pending возвращает количество запланированных задач
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop отменяет все задачи (используется при остановке сервиса)
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}
