// Package metrics defines and registers all custom Prometheus metrics for the
// blog API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at init time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// ── Authentication metrics ────────────────────────────────────────────────────

// AuthSuccessTotal counts requests for which a bearer token resolved to an
// authenticated principal.
var AuthSuccessTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_success_total",
		Help:      "Total number of requests authenticated from a bearer token.",
	},
)

// AuthFailuresTotal counts tokens that failed to establish identity.
// Label:
//   - reason: failure category ("expired", "malformed", "signature_invalid",
//     "unverifiable", "invalid", "user_missing", "lookup_failed",
//     "subject_mismatch")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of bearer tokens that failed to establish identity, by reason.",
	},
	[]string{"reason"},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDecisionsTotal counts authorization policy evaluations.
// Labels:
//   - policy: "admin" or "owner_or_admin"
//   - decision: "granted" or "denied"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization policy evaluations, by policy and decision.",
	},
	[]string{"policy", "decision"},
)

// ── Localization metrics ──────────────────────────────────────────────────────

// LocalizationCacheTotal counts message cache lookups.
// Label:
//   - result: "hit", "miss", or "error"
var LocalizationCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "localization_cache_total",
		Help:      "Total number of localization cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker
// channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit events discarded because a worker channel
// was full. The trail is best-effort; requests are never blocked on it.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit events dropped due to dispatcher backpressure.",
	},
)
