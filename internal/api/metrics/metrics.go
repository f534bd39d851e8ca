// Package metrics defines all custom Prometheus metrics for the TheSarvaNews
// web front-end. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sarvanews"

// BackendRequestsTotal counts round trips to the backend API.
// Labels:
//   - path: the backend endpoint (e.g. "/api/news", "/api/bookmarks")
//   - outcome: "ok", "http_error", or "network_error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the backend API.",
	},
	[]string{"path", "outcome"},
)

// BackendRequestDuration measures backend round-trip latency.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend API round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"path"},
)

// LoginsTotal counts login attempts by result ("success"/"failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// BookmarkActionsTotal counts bookmark mutations.
// Labels:
//   - action: "add", "remove", or "toggle"
//   - result: "success" or "failure"
var BookmarkActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmark_actions_total",
		Help:      "Total number of bookmark add/remove actions, by result.",
	},
	[]string{"action", "result"},
)

// ImageProxyRequestsTotal counts article-image proxy fetches.
// Label:
//   - outcome: "ok", "blocked", "upstream_error", or "too_large"
var ImageProxyRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_proxy_requests_total",
		Help:      "Total number of image proxy requests, by outcome.",
	},
	[]string{"outcome"},
)
