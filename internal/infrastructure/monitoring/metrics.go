package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// APIMetrics collects counters for outbound API calls. A nil *APIMetrics is
// a no-op so tests and library consumers need not wire Prometheus.
type APIMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestFailures *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	uploadsTotal    prometheus.Counter
	uploadBytes     prometheus.Counter
}

func NewAPIMetrics() *APIMetrics {
	return &APIMetrics{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vidgram_api_requests_total",
			Help: "Total number of outbound API requests",
		}, []string{"operation", "status"}),

		requestFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vidgram_api_request_failures_total",
			Help: "Total number of failed outbound API requests by error kind",
		}, []string{"operation", "kind"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vidgram_api_request_duration_seconds",
			Help:    "Duration of outbound API requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		}, []string{"operation"}),

		uploadsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vidgram_uploads_total",
			Help: "Total number of video uploads attempted",
		}),

		uploadBytes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vidgram_upload_bytes_total",
			Help: "Total bytes sent in video uploads",
		}),
	}
}

// ObserveRequest records one completed request.
func (m *APIMetrics) ObserveRequest(operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(operation, status).Inc()
	m.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveFailure records one failed request by error kind.
func (m *APIMetrics) ObserveFailure(operation, kind string) {
	if m == nil {
		return
	}
	m.requestFailures.WithLabelValues(operation, kind).Inc()
}

// ObserveUpload records one upload attempt and its payload size.
func (m *APIMetrics) ObserveUpload(bytes int64) {
	if m == nil {
		return
	}
	m.uploadsTotal.Inc()
	if bytes > 0 {
		m.uploadBytes.Add(float64(bytes))
	}
}
