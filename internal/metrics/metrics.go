package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MessagesStoredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_stored_total",
			Help: "Total number of stored messages.",
		},
		[]string{"chat_type"},
	)

	MessagesCiphertextBytes = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "messages_ciphertext_bytes",
			Help:    "Ciphertext sizes for stored messages.",
			Buckets: prometheus.ExponentialBuckets(64, 2, 10),
		},
	)

	MessageHistoryFetchedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "messages_history_fetched_total",
			Help: "Total number of history fetch operations.",
		},
	)

	MessagesDecryptionDegradedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "messages_decryption_degraded_total",
			Help: "Stored messages returned undecrypted.",
		},
	)

	LiveSubscriptions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_live_subscriptions",
			Help: "Live connections currently joined to a room.",
		},
	)

	FanoutDeliveredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_fanout_delivered_total",
			Help: "Events queued to live subscribers.",
		},
	)

	FanoutDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_fanout_dropped_total",
			Help: "Slow subscribers evicted because their buffer was full.",
		},
	)

	RankingComputedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_computed_total",
			Help: "Leaderboard rankings served, by window and source.",
		},
		[]string{"window", "source"},
	)
)

var registerOnce sync.Once

// MustRegister registers every collector on reg with a constant service label.
// Subsequent calls are no-ops.
func MustRegister(reg prometheus.Registerer, serviceName string) {
	registerOnce.Do(func() {
		prometheus.WrapRegistererWith(prometheus.Labels{"service": serviceName}, reg).MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			MessagesStoredTotal,
			MessagesCiphertextBytes,
			MessageHistoryFetchedTotal,
			MessagesDecryptionDegradedTotal,
			LiveSubscriptions,
			FanoutDeliveredTotal,
			FanoutDroppedTotal,
			RankingComputedTotal,
		)
	})
}
