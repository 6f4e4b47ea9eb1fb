// Package metrics holds the Prometheus instrumentation shared across the
// HTTP layer and the session authority boundary.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts handled HTTP requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_http_requests_total",
		Help: "Handled HTTP requests.",
	}, []string{"method", "route", "status"})

	// Logins counts login attempts by outcome (ok, invalid_credentials, error).
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	// Verifications counts credential verifications by result. Failure kinds
	// are recorded here and in logs only; clients always see a uniform 401.
	Verifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketplace_credential_verifications_total",
		Help: "Credential verifications by result.",
	}, []string{"result"})
)

// Handler exposes the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
