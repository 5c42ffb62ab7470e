package middleware

import (
	"net/http"
	"time"
)

// MetricsMiddleware собирает метрики HTTP запросов
func MetricsMiddleware(m HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.HTTPRequestStarted()
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.HTTPRequestFinished(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}
