package endpoints

import (
	"net/http"

	"github.com/tomasbusse/avalingo/pkg/metrics"
	"github.com/tomasbusse/avalingo/pkg/server"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{
			"service": "avalingo",
			"status":  "ok",
		})
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "unhealthy",
				"database": err.Error(),
			})
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "ok",
		})
	}
}

// RegisterStatusEndpoints wires the unauthenticated status, health and
// metrics endpoints.
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
	s.Router.HandleFunc("/health", handleHealth(s.HealthStore)).Methods("GET")
	s.Router.Handle("/metrics", metrics.Handler()).Methods("GET")
}
