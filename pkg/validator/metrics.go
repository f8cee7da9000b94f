package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "preflight_check_duration_seconds",
			Help:    "Duration of a single pre-upgrade check in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	checkFindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preflight_check_findings_total",
			Help: "Total number of incompatibilities reported by pre-upgrade checks",
		},
		[]string{"check"},
	)
)
