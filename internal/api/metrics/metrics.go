// Package metrics defines and registers all custom Prometheus metrics of the
// Rotaract district portal. It is the single source of truth for metric
// names, labels, and help strings.
//
// Collectors are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rotaract"

// ── Upstream API metrics ──────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the district REST API.
// Labels:
//   - method: HTTP method of the call (e.g. "GET")
//   - status: HTTP status code, or "error" when the transport failed
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the district API.",
	},
	[]string{"method", "status"},
)

// UpstreamRequestDuration measures the round-trip time of upstream calls.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests sent to the district API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionTransitionsTotal counts session lifecycle events.
// Label:
//   - event: "bootstrap", "login", "register", "logout", "unauthorized", "expired"
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session state transitions, by event.",
	},
	[]string{"event"},
)

// RoleFallbacksTotal counts role strings that did not resolve to a known role.
// Label:
//   - reason: "missing" or "unrecognized"
var RoleFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_fallbacks_total",
		Help:      "Total number of role strings that fell back to INTERESADO.",
	},
	[]string{"reason"},
)

// GuardRedirectsTotal counts requests a route gate turned away.
// Label:
//   - gate: "auth" or "role"
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of requests redirected by a route gate.",
	},
	[]string{"gate"},
)
