package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hotelsite"

// Metrics коллектор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPInFlight        prometheus.Gauge

	FlowOpenedTotal       *prometheus.CounterVec
	FlowTransitionsTotal  *prometheus.CounterVec
	FlowValidationsFailed *prometheus.CounterVec
	FlowSubmissionsTotal  prometheus.Counter
	FlowResetsTotal       *prometheus.CounterVec
	QuoteGrandTotal       prometheus.Histogram
}

// New создает коллектор и регистрирует его в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает коллектор и регистрирует его в указанном registerer
// (отдельный registry нужен в тестах, чтобы избежать повторной регистрации)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: constLabels,
		}),
		FlowOpenedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "booking_flow_opened_total",
			Help:        "Booking flows opened, by room",
			ConstLabels: constLabels,
		}, []string{"room"}),
		FlowTransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "booking_flow_transitions_total",
			Help:        "Booking flow step transitions",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		FlowValidationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "booking_flow_validation_failures_total",
			Help:        "Rejected booking flow actions",
			ConstLabels: constLabels,
		}, []string{"action"}),
		FlowSubmissionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "booking_flow_submissions_total",
			Help:        "Successfully submitted booking requests",
			ConstLabels: constLabels,
		}),
		FlowResetsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "booking_flow_resets_total",
			Help:        "Booking flow resets",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		QuoteGrandTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "booking_quote_grand_total",
			Help:        "Grand total of submitted quotes",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(1000, 2, 8),
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPInFlight,
		m.FlowOpenedTotal,
		m.FlowTransitionsTotal,
		m.FlowValidationsFailed,
		m.FlowSubmissionsTotal,
		m.FlowResetsTotal,
		m.QuoteGrandTotal,
	)

	return m
}

// FlowOpened учитывает открытие мастера бронирования
func (m *Metrics) FlowOpened(roomID string) {
	if roomID == "" {
		roomID = "default"
	}
	m.FlowOpenedTotal.WithLabelValues(roomID).Inc()
}

// FlowTransition учитывает переход между шагами мастера
func (m *Metrics) FlowTransition(from, to string) {
	m.FlowTransitionsTotal.WithLabelValues(from, to).Inc()
}

// FlowValidationFailed учитывает отклоненное действие
func (m *Metrics) FlowValidationFailed(action string) {
	m.FlowValidationsFailed.WithLabelValues(action).Inc()
}

// FlowSubmitted учитывает успешную отправку заявки
func (m *Metrics) FlowSubmitted(grandTotal int64) {
	m.FlowSubmissionsTotal.Inc()
	m.QuoteGrandTotal.Observe(float64(grandTotal))
}

// FlowReset учитывает сброс состояния мастера
func (m *Metrics) FlowReset(reason string) {
	m.FlowResetsTotal.WithLabelValues(reason).Inc()
}

// HTTPRequestStarted учитывает начало обработки запроса
func (m *Metrics) HTTPRequestStarted() {
	m.HTTPInFlight.Inc()
}

// HTTPRequestFinished учитывает завершенный запрос
func (m *Metrics) HTTPRequestFinished(method, path string, status int, duration time.Duration) {
	m.HTTPInFlight.Dec()
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
