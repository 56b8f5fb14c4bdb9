package ledger_audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DriftedShipments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_audit_drifted_shipments",
			Help: "Shipments whose state disagreed with the latest ledger entry on the last audit",
		},
	)

	ResyncedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_audit_resynced_total",
			Help: "Total number of shipments resynced by the ledger audit",
		},
	)
)
