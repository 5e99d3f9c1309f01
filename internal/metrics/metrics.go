package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "feetier"

var (
	// QueriesTotal counts boundary queries by name and outcome (ok, error).
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of backend queries",
		},
		[]string{"query", "outcome"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Backend query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	// RecordsDropped counts rows rejected before aggregation.
	RecordsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_dropped_total",
			Help:      "Rows dropped because of an unknown fee tier or bad amount",
		},
		[]string{"query", "reason"},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Recommendation decisions by fee tier, or none",
		},
		[]string{"fee"},
	)
)

// Outcome maps an error to the outcome label.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
