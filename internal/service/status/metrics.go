package status

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_status_transitions_total",
			Help: "Total number of status transitions by target status and outcome",
		},
		[]string{"status", "outcome"},
	)

	TimestampFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shipment_status_timestamp_fallbacks_total",
			Help: "Transitions whose timestamp could not be parsed and was replaced by server time",
		},
	)
)
