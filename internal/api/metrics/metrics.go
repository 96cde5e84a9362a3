// Package metrics defines and registers all custom Prometheus metrics for the
// spending coach API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coach"

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "created", "duplicate_email"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the auth gate.
// Label:
//   - reason: "missing", "malformed", "expired", "invalid", "unknown_user"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of bearer tokens rejected on protected routes, by reason.",
	},
	[]string{"reason"},
)

// ProfileSubmissionsTotal counts onboarding profile submissions.
// Label:
//   - result: "saved", "already_submitted"
var ProfileSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_submissions_total",
		Help:      "Total number of onboarding profile submissions, by result.",
	},
	[]string{"result"},
)
