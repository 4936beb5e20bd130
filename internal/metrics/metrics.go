// Package metrics defines the custom Prometheus metrics for the eMunicipality
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "emunicipality"

// HTTPRequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP verb
//   - path: the matched route template (e.g. "/api/documents/:id")
//   - status: numeric response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by route and status.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration measures request latency per route
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling, by route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// DocumentsCreatedTotal counts document requests accepted by the API
var DocumentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_created_total",
		Help:      "Total number of document requests created.",
	},
)

// DocumentStatusUpdatesTotal counts status changes applied to documents.
// Label:
//   - status: the new status value (e.g. "approved")
var DocumentStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "document_status_updates_total",
		Help:      "Total number of document status updates, by new status.",
	},
	[]string{"status"},
)
