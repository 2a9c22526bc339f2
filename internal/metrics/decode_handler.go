package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decodeHandlerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txdecoder7000",
		Subsystem: "decode_handler",
		Name:      "requests_total",
		Help:      "Count of HTTP requests per route.",
	}, []string{"route", "code"})
	decodeHandlerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txdecoder7000",
		Subsystem: "decode_handler",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests per route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "code"})
)

// DecodeHandler tracks metrics for the decode API routes.
type DecodeHandler struct{}

// NewDecodeHandler creates a DecodeHandler metrics collector.
func NewDecodeHandler() *DecodeHandler {
	return &DecodeHandler{}
}

// Observe records one served request with its response code.
func (m DecodeHandler) Observe(route string, code int, started time.Time) {
	decodeHandlerRequestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	decodeHandlerRequestDuration.WithLabelValues(route, strconv.Itoa(code)).Observe(time.Since(started).Seconds())
}
