package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nairobell_feed"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Feed metrics
	itemsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_discarded_total",
			Help:      "Candidate items discarded while ranking",
		},
		[]string{"reason"}, // missing_id, duplicate_id
	)

	hintRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hint_requests_total",
			Help:      "Relevance hint lookups by outcome",
		},
		[]string{"outcome"}, // cache_hit, fetched, failed, skipped
	)

	diversityBackfillsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diversity_backfills_total",
			Help:      "Feeds where capped items were re-admitted to reach the minimum size",
		},
	)

	pointsAwardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "Points awarded by activity, level-up bonuses included",
		},
		[]string{"activity"},
	)

	levelUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "level_ups_total",
			Help:      "Total number of level-ups",
		},
	)

	feedsWarmedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feeds_warmed_total",
			Help:      "Feeds precomputed by the warmer by outcome",
		},
		[]string{"outcome"}, // ok, failed
	)
)

const (
	HintCacheHit = "cache_hit"
	HintFetched  = "fetched"
	HintFailed   = "failed"
	HintSkipped  = "skipped"
)

// RecordDiscardedItems counts items dropped for a missing ID and repeated IDs.
func RecordDiscardedItems(missingID, duplicates int) {
	if missingID > 0 {
		itemsDroppedTotal.WithLabelValues("missing_id").Add(float64(missingID))
	}
	if duplicates > 0 {
		itemsDroppedTotal.WithLabelValues("duplicate_id").Add(float64(duplicates))
	}
}

func RecordHint(outcome string) {
	hintRequestsTotal.WithLabelValues(outcome).Inc()
}

func RecordBackfill() {
	diversityBackfillsTotal.Inc()
}

func RecordPoints(activity string, points int64, leveledUp bool) {
	if points > 0 {
		pointsAwardedTotal.WithLabelValues(activity).Add(float64(points))
	}
	if leveledUp {
		levelUpsTotal.Inc()
	}
}

func RecordWarmedFeed(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	feedsWarmedTotal.WithLabelValues(outcome).Inc()
}

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latencies labelled by route template.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}
