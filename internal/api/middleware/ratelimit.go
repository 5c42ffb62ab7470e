package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/HotelPrincipal-Site/internal/api/handlers"
)

const msgRateLimited = "demasiadas solicitudes, intenta de nuevo en unos segundos"

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов одной сессии
// Должен стоять после SessionManager.Session; без сессии ключом служит адрес клиента
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	logger   Logger
}

// NewRateLimiter создает ограничитель: perMinute запросов в минуту с запасом burst
// perMinute <= 0 отключает ограничение
func NewRateLimiter(perMinute, burst int, logger Logger) *RateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    limit,
		burst:    burst,
		logger:   logger,
	}
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, exists := l.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// Limit middleware ограничения частоты запросов
func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := GetSessionID(r.Context())
		if !ok {
			key = r.RemoteAddr
		}

		if !l.getLimiter(key).Allow() {
			l.logger.Warn("%s %s - Rate limit exceeded: key=%s", r.Method, r.URL.Path, key)
			handlers.RespondTooManyRequests(w, msgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Cleanup удаляет ограничители, не использовавшиеся дольше idle
func (l *RateLimiter) Cleanup(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	threshold := time.Now().Add(-idle)
	for key, entry := range l.limiters {
		if entry.lastSeen.Before(threshold) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// RunCleanup периодически удаляет неиспользуемые ограничители до закрытия stopCh
func (l *RateLimiter) RunCleanup(interval, idle time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := l.Cleanup(idle); removed > 0 {
				l.logger.Info("RateLimiter: removed %d idle limiters", removed)
			}
		case <-stopCh:
			return
		}
	}
}
