// Package metrics defines and registers the custom Prometheus metrics of the
// catalog administration service. Metric names, labels and help strings live
// here and nowhere else.
//
// All metrics are registered with the default registry on package init via
// promauto; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsSavedTotal counts save calls that reached the store.
// Label:
//   - outcome: "inserted", "updated" or "noop" (update of a missing id)
var ProductsSavedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_saved_total",
		Help:      "Total number of product saves, by outcome.",
	},
	[]string{"outcome"},
)

// ProductsDeletedTotal counts delete calls.
// Label:
//   - result: "removed" or "absent"
var ProductsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_deleted_total",
		Help:      "Total number of product deletes, by result.",
	},
	[]string{"result"},
)

// ── Gate metrics ──────────────────────────────────────────────────────────────

// AuthorizationDenialsTotal counts Deny decisions.
// Label:
//   - operation: list, view, create, edit or delete
var AuthorizationDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denials_total",
		Help:      "Total number of denied authorization checks, by operation.",
	},
	[]string{"operation"},
)

// AntiForgeryRejectionsTotal counts rejected anti-forgery verifications.
// Label:
//   - reason: safe_method, missing_session, missing_token, no_token, store_error or mismatch
var AntiForgeryRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "antiforgery_rejections_total",
		Help:      "Total number of rejected anti-forgery tokens, by reason.",
	},
	[]string{"reason"},
)

// AntiForgeryBypassedTotal counts mutating requests accepted without
// verification because enforcement is switched off.
var AntiForgeryBypassedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "antiforgery_bypassed_total",
		Help:      "Total number of mutating requests processed with anti-forgery enforcement disabled.",
	},
)

// ── Bootstrap & audit metrics ─────────────────────────────────────────────────

// BootstrapCreatedTotal counts identity records created by the bootstrapper.
// Label:
//   - kind: "role" or "account"
var BootstrapCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bootstrap_created_total",
		Help:      "Total number of identity records created at start-up, by kind.",
	},
	[]string{"kind"},
)

// AuditQueueDepth tracks the entries waiting in each audit worker channel.
// Label:
//   - worker_id: numeric worker index
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditErrorsTotal counts audit entries that could not be persisted.
var AuditErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit entries that failed to persist.",
	},
)
