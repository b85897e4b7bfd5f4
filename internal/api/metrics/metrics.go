// Package metrics defines all custom Prometheus metrics for the Trackeo web
// frontend. It is the single source of truth for metric names, labels, and
// help strings; echoprometheus adds the generic HTTP request metrics on top.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trackeo_web"

// PageRendersTotal counts rendered pages.
// Labels:
//   - page: the logical page name (home, events, roster_detail, …)
//   - outcome: "loaded" when backed by live data, "fallback" when sample or
//     cached data was substituted after a failed fetch
var PageRendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_renders_total",
		Help:      "Total number of pages rendered, by page and data outcome.",
	},
	[]string{"page", "outcome"},
)

// BackendRequestsTotal counts calls made to the Trackeo REST backend.
// Labels:
//   - method: HTTP method
//   - status: numeric HTTP status, or "network_error" when no response arrived
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the backend API.",
	},
	[]string{"method", "status"},
)

// FallbackSubstitutionsTotal counts collections replaced with bundled sample
// data after a failed backend fetch.
// Label:
//   - collection: "athletes", "events", "rosters", "event_detail"
var FallbackSubstitutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fallback_substitutions_total",
		Help:      "Total number of sample-data substitutions, by collection.",
	},
	[]string{"collection"},
)

// SearchQueriesTotal counts federated search executions.
// Label:
//   - filter: the active category filter (all/athletes/events/rosters/news)
var SearchQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_queries_total",
		Help:      "Total number of federated search queries, by category filter.",
	},
	[]string{"filter"},
)

// FormSubmissionsTotal counts form submissions handled by the page
// controllers.
// Labels:
//   - form: "register_athlete", "create_event", "login", "signup",
//     "federation_upload", "subscribe"
//   - outcome: "success", "invalid", "blocked", "error"
var FormSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "form_submissions_total",
		Help:      "Total number of form submissions, by form and outcome.",
	},
	[]string{"form", "outcome"},
)
