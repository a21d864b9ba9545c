package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "showcase", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "showcase", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	// StoreQueries counts catalog store calls by operation (list|brands|categories) and outcome (ok|error).
	StoreQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "showcase", Name: "store_queries_total", Help: "Number of catalog store queries by operation and outcome."},
		[]string{"operation", "outcome"},
	)
	StoreQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "showcase", Name: "store_query_duration_seconds", Help: "Latency of catalog store queries.", Buckets: prometheus.DefBuckets},
		[]string{"operation"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "showcase", Name: "http_requests_total", Help: "HTTP requests by route and status code."},
		[]string{"route", "code"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StoreQueries)
	reg.MustRegister(StoreQueryDuration)
	reg.MustRegister(HTTPRequests)
}
