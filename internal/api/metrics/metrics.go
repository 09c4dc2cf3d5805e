// Package metrics defines and registers all custom Prometheus metrics for the
// membership portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation and exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "membership"

// Outcome label values shared by the flow counters.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeProviderError   = "provider_error"
	OutcomeStoreError      = "store_error"
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionOperationsTotal counts session commands issued through the API.
// Labels:
//   - operation: "sign_in", "sign_up" or "sign_out"
//   - outcome: one of the Outcome* values
var SessionOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_operations_total",
		Help:      "Total number of session commands, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// UserChangedTotal counts user-changed notifications delivered by the identity gateway.
// Label:
//   - state: "signed_in" or "signed_out"
var UserChangedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_changed_total",
		Help:      "Total number of user-changed notifications observed.",
	},
	[]string{"state"},
)

// ── Flow metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: one of the Outcome* values; store_error marks an orphan account
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// PasswordResetsTotal counts password-reset requests.
// Label:
//   - outcome: one of the Outcome* values
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password-reset requests, by outcome.",
	},
	[]string{"outcome"},
)

// FlowDuration measures how long a flow takes from request to terminal status.
// Label:
//   - flow: "sign_in", "sign_up", "registration" or "password_reset"
var FlowDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "flow_duration_seconds",
		Help:      "Duration of user flows including identity provider round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"flow"},
)

// ── Navigation metrics ────────────────────────────────────────────────────────

// NavigationsTotal counts page changes.
// Label:
//   - destination: the page navigated to (e.g. "profile", "login")
var NavigationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigations_total",
		Help:      "Total number of navigations, by destination page.",
	},
	[]string{"destination"},
)
