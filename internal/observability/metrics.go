package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "voyago", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "voyago", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CompletionRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "voyago", Name: "completion_requests_total", Help: "Outbound completion API requests."},
		[]string{"provider", "operation", "status"},
	)
	CompletionLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "voyago", Name: "completion_request_duration_seconds",
			Help:    "Outbound completion API request duration seconds.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"provider", "operation"},
	)
	PlanGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "voyago", Name: "plan_generations_total", Help: "Plan generation outcomes."},
		[]string{"outcome"}, // outcome: ok|degraded|error
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "voyago", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, CompletionRequests, CompletionLatency, PlanGenerations, CacheEvents)
}

// Serve starts the metrics endpoint on its own port. Empty addr disables it.
func Serve(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCompletion(provider, operation string, status int, dur time.Duration) {
	CompletionRequests.WithLabelValues(provider, operation, strconv.Itoa(status)).Inc()
	CompletionLatency.WithLabelValues(provider, operation).Observe(dur.Seconds())
}

func ObservePlan(outcome string) { // outcome: ok|degraded|error
	PlanGenerations.WithLabelValues(outcome).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}
