package monitoring

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/mezonai/wavesgo/logx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type clientPromMetrics struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	pendingWaits    prometheus.Gauge
	broadcastCount  prometheus.Counter
	throttledCount  prometheus.Counter
	panicCount      prometheus.Counter
}

func newClientPromMetrics() *clientPromMetrics {
	return &clientPromMetrics{
		requestCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "waves_client_requests_total",
				Help: "The total number of node requests by method and outcome",
			},
			[]string{"method", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "waves_client_request_duration_seconds",
				Help: "Latency of node requests in seconds",
			},
			[]string{"method"},
		),
		pendingWaits: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "waves_client_pending_waits",
				Help: "Number of transactions currently awaited for confirmation",
			},
		),
		broadcastCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "waves_client_broadcast_total",
				Help: "The total number of broadcast transactions",
			},
		),
		throttledCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "waves_client_throttled_total",
				Help: "The total number of requests delayed by the client rate limiter",
			},
		),
		panicCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "waves_client_panics_total",
				Help: "The total number of panics recovered in background goroutines",
			},
		),
	}
}

var (
	clientMetrics *clientPromMetrics
	initOnce      sync.Once
)

// InitMetrics registers the client metrics. Recording is a no-op until it is called.
func InitMetrics() {
	initOnce.Do(func() {
		clientMetrics = newClientPromMetrics()
	})
}

func RegisterMetrics(mux *http.ServeMux) {
	logx.Info("MONITORING", "Registering prometheus metrics")
	mux.Handle("/metrics", promhttp.Handler())
}

// RecordRequest counts a node request; status is the HTTP status code or 0 on transport failure.
func RecordRequest(method string, status int, duration time.Duration) {
	if clientMetrics == nil {
		return
	}
	clientMetrics.requestCount.With(prometheus.Labels{
		"method": method,
		"status": strconv.Itoa(status),
	}).Inc()
	clientMetrics.requestDuration.With(prometheus.Labels{
		"method": method,
	}).Observe(duration.Seconds())
}

func IncreaseBroadcastCount() {
	if clientMetrics == nil {
		return
	}
	clientMetrics.broadcastCount.Inc()
}

func SetPendingWaits(count int64) {
	if clientMetrics == nil {
		return
	}
	clientMetrics.pendingWaits.Set(float64(count))
}

func IncreaseThrottledCount() {
	if clientMetrics == nil {
		return
	}
	clientMetrics.throttledCount.Inc()
}

func IncreasePanicCount() {
	if clientMetrics == nil {
		return
	}
	clientMetrics.panicCount.Inc()
}
