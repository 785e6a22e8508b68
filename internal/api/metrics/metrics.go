// Package metrics defines and registers all custom Prometheus metrics for
// the Wisensor API. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level request metrics come from the
// echoprometheus middleware, not from here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wisensor"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts signed tokens handed to clients.
// Label:
//   - type: "access" or "refresh"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of JWTs issued, labelled by token type.",
	},
	[]string{"type"},
)

// AuthFailuresTotal counts rejected bearer credentials on protected routes.
// Label:
//   - reason: "missing_header", "bad_header", or "rejected_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// PermissionDeniedTotal counts authenticated requests lacking a permission.
// Label:
//   - permission: the permission name the route required
var PermissionDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denied_total",
		Help:      "Total number of requests denied by the permission check.",
	},
	[]string{"permission"},
)

// EntityWritesTotal counts successful mutating operations per entity.
// Labels:
//   - entity: "user", "role", "permission", "project", "user_project"
//   - op: "create", "update", "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful create/update/delete operations.",
	},
	[]string{"entity", "op"},
)
