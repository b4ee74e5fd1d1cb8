// Package metrics defines the studio's custom Prometheus metrics. HTTP
// request metrics come from the echoprometheus middleware; these cover the
// domain events handlers report.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studio"

// LoginAttemptsTotal counts sign-in attempts.
// Labels:
//   - kind: "client" or "admin"
//   - result: "success", "rejected" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by principal kind and result.",
	},
	[]string{"kind", "result"},
)

// GateDecisionsTotal counts access gate outcomes per view.
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of page access decisions, by view and state.",
	},
	[]string{"view", "state"},
)

// MediaUploadedTotal counts gallery items appended to client galleries.
// Label:
//   - type: "image" or "video"
var MediaUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_uploaded_total",
		Help:      "Total number of media items added to client galleries.",
	},
	[]string{"type"},
)

// ClientsCreatedTotal counts clients added through the dashboard.
var ClientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of clients created.",
	},
)

// ConfirmationsTotal counts redeemed deletion tokens.
// Label:
//   - result: "confirmed" or "invalid"
var ConfirmationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "confirmations_total",
		Help:      "Total number of deletion confirmations, by result.",
	},
	[]string{"result"},
)
