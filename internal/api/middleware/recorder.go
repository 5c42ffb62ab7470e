package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// statusRecorder запоминает код ответа для метрик и логов
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// routeTemplate возвращает шаблон маршрута mux ("/api/v1/rooms/{roomId}"),
// чтобы метки метрик не зависели от значений параметров
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
