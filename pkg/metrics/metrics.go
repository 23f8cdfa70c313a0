// Package metrics exposes Prometheus instrumentation for the Avalingo server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PermissionChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "avalingo", Name: "permission_checks_total", Help: "Permission checks by outcome",
	}, []string{"allowed"})
	AttemptsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "avalingo", Name: "attempts_started_total", Help: "Placement attempts started",
	})
	AttemptsScored = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "avalingo", Name: "attempts_scored_total", Help: "Placement attempts scored by resulting level",
	}, []string{"level"})
	BankLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "avalingo", Name: "bank_loads_total", Help: "Question bank loads by outcome",
	}, []string{"status"})
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "avalingo", Name: "request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"handler"})
)

func init() {
	prometheus.MustRegister(PermissionChecks, AttemptsStarted, AttemptsScored, BankLoads, RequestDuration)
}

func Handler() http.Handler { return promhttp.Handler() }

// ObserveCheck records one permission check outcome.
func ObserveCheck(allowed bool) {
	if allowed {
		PermissionChecks.WithLabelValues("true").Inc()
	} else {
		PermissionChecks.WithLabelValues("false").Inc()
	}
}
