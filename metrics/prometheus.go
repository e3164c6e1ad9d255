package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	marketplaceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ozon_requests_total",
			Help: "Total number of Ozon Seller API requests.",
		},
		[]string{"endpoint", "status"},
	)
	marketplaceRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ozon_request_duration_seconds",
			Help:    "Histogram of Ozon Seller API request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"endpoint", "status"},
	)
	batchesDispatched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_batches_total",
			Help: "Update batches dispatched, by outcome.",
		},
		[]string{"outcome"},
	)
	rowsUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sync_rows_updated_total",
			Help: "Rows confirmed updated across all syncs.",
		},
	)
)

func init() {
	prometheus.MustRegister(marketplaceRequestsTotal)
	prometheus.MustRegister(marketplaceRequestDuration)
	prometheus.MustRegister(batchesDispatched)
	prometheus.MustRegister(rowsUpdated)
}

// RecordRequest записывает метрики для запроса к Ozon API.
func RecordRequest(endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	marketplaceRequestsTotal.WithLabelValues(endpoint, status).Inc()
	marketplaceRequestDuration.WithLabelValues(endpoint, status).Observe(duration.Seconds())
}

// RecordBatch записывает исход отправки одного батча.
func RecordBatch(ok bool, rows int) {
	if ok {
		batchesDispatched.WithLabelValues("ok").Inc()
		rowsUpdated.Add(float64(rows))
		return
	}
	batchesDispatched.WithLabelValues("failed").Inc()
}

func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler возвращает HTTP-обработчик для экспорта метрик Prometheus.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
