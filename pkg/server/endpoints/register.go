package endpoints

import (
	"net/http"
	"time"

	"github.com/tomasbusse/avalingo/pkg/metrics"
	"github.com/tomasbusse/avalingo/pkg/server"
)

// RegisterAll wires every endpoint group onto the server's router.
func RegisterAll(s *server.Server) {
	RegisterStatusEndpoints(s)
	RegisterRolesEndpoints(s)
	RegisterAssignmentsEndpoints(s)
	RegisterPermissionsEndpoints(s)
	RegisterQuestionsEndpoints(s)
	RegisterAttemptsEndpoints(s)
}

// instrument records request latency under the given handler label.
func instrument(handler string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		metrics.RequestDuration.WithLabelValues(handler).Observe(time.Since(start).Seconds())
	})
}
