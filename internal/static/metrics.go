package static

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFile     = "file"
	outcomeFallback = "fallback"
	outcomeError    = "error"
)

// serveOutcomes is exposed on /metrics through the default registry.
var serveOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "static_requests_total",
	Help: "Static asset requests by outcome: file served, index fallback, or error.",
}, []string{"outcome"})
