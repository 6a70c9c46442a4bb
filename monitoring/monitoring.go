package monitoring

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	EntitiesCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "entities_created_total",
		Help: "Total records created, by entity type",
	}, []string{"entity"})

	EntitiesDeleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "entities_deleted_total",
		Help: "Total records deleted, by entity type",
	}, []string{"entity"})

	RuleViolations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rule_violations_total",
		Help: "Total rejected mutations, by violation kind",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(EntitiesCreated)
	prometheus.MustRegister(EntitiesDeleted)
	prometheus.MustRegister(RuleViolations)
}

// Middleware to track request timing and status code
type statusRecordingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecordingWriter{ResponseWriter: w, statusCode: 200}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		route := r.URL.Path
		method := r.Method
		status := fmt.Sprintf("%d", rw.statusCode)

		RequestDuration.WithLabelValues(method, route, status).Observe(duration)
	})
}
