// Package metrics defines and registers all custom Prometheus metrics for the
// user service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry through promauto when the
// package is loaded; HTTP request metrics come from the echoprometheus
// middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "users"

// Result label values shared by the counters below.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ── Directory metrics ─────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - user_type: "CLIENT" or "RESTAURANT_OWNER"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registered_total",
		Help:      "Total number of users registered, by user type.",
	},
	[]string{"user_type"},
)

// EmailConflictsTotal counts rejected writes because the email was taken.
// Label:
//   - operation: "register" or "update"
var EmailConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_conflicts_total",
		Help:      "Total number of registrations or updates rejected for a duplicate email.",
	},
	[]string{"operation"},
)

// PasswordChangesTotal counts password change attempts.
// Label:
//   - result: "success" or "failure" (wrong current password)
var PasswordChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of password change attempts, by result.",
	},
	[]string{"result"},
)

// UsersDeletedTotal counts permanent deletions.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of users deleted.",
	},
)

// ── Credential metrics ────────────────────────────────────────────────────────

// LoginValidationsTotal counts credential checks.
// Label:
//   - result: "success" or "failure"; unknown login and wrong password are not distinguished
var LoginValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_validations_total",
		Help:      "Total number of login credential validations, by result.",
	},
	[]string{"result"},
)
