package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the sync core's prometheus collectors.
type Metrics struct {
	SyncTotal          *prometheus.CounterVec
	MirrorRepairs      *prometheus.CounterVec
	LedgerAdjustments  *prometheus.CounterVec
	DriftDetected      *prometheus.CounterVec
	IntentsEnqueued    *prometheus.CounterVec
	IntentsProcessed   *prometheus.CounterVec
	TransitionDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SyncTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "status_total",
			Help:      "Mirror status sync attempts by result.",
		}, []string{"result"}),
		MirrorRepairs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "mirror_repairs_total",
			Help:      "Mirror recreations from the master record.",
		}, []string{"result"}),
		LedgerAdjustments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "adjustments_total",
			Help:      "Crew ledger adjustments by direction and result.",
		}, []string{"direction", "result"}),
		DriftDetected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "drift_detected_total",
			Help:      "Validation runs that found master/mirror drift.",
		}, []string{"reason"}),
		IntentsEnqueued: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "intents_enqueued_total",
			Help:      "Sync intents written to the outbox.",
		}, []string{"kind"}),
		IntentsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "intents_processed_total",
			Help:      "Sync intents handled by the reconcile worker.",
		}, []string{"kind", "result"}),
		TransitionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "assignment",
			Name:      "transition_duration_seconds",
			Help:      "Time taken by assignment transitions.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
	}
}
