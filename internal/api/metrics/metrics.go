// Package metrics defines and registers the custom Prometheus metrics for the
// job board. It is the single source of truth for metric names, labels, and
// help strings. HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// Outcome label values shared by the counters below.
const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeRejected  = "rejected"
	OutcomeNotFound  = "not_found"
	OutcomeForbidden = "forbidden"
	OutcomeError     = "error"
)

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - outcome: "success", "duplicate", "invalid" or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "rejected" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// GuardRedirectsTotal counts anonymous requests bounced to the login page.
var GuardRedirectsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of protected requests redirected to login.",
	},
)

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsCreatedTotal counts job postings.
// Label:
//   - outcome: "success", "invalid" or "error"
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job posting attempts, by outcome.",
	},
	[]string{"outcome"},
)

// JobsDeletedTotal counts delete attempts.
// Label:
//   - outcome: "success", "not_found", "forbidden" or "error"
var JobsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_deleted_total",
		Help:      "Total number of job delete attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ApplicationsSubmittedTotal counts application submissions.
// Label:
//   - outcome: "success", "invalid", "not_found" or "error"
var ApplicationsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of application submissions, by outcome.",
	},
	[]string{"outcome"},
)
